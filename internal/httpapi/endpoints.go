package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/handlers"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/rls"
)

// listTables serves GET /tables: every catalog table name, excluding the
// RLS policy store itself.
func (d *Deps) listTables(w http.ResponseWriter, r *http.Request) {
	names := d.Catalog.Load().TableNames(rls.StoreTableName)
	writeResult(w, handlers.Result{Status: http.StatusOK, Body: names})
}

// reloadPolicies serves POST /api/_policies/reload: re-reads the policy
// store table and republishes the in-memory index. Not part of the
// PostgREST surface; an operational escape hatch for editing
// rest_gateway_policies without restarting the process. Requires a
// verified "role=admin" claim, independent of jwtRequired.
func (d *Deps) reloadPolicies(w http.ResponseWriter, r *http.Request) {
	if claimsFromContext(r.Context())["role"] != "admin" {
		writeError(w, errs.New(errs.ErrKindPermissionDenied, "policy reload requires role=admin"))
		return
	}

	if err := d.RLS.Reload(r.Context()); err != nil {
		d.Log.ErrorWith("policy reload failed", err, nil)
		writeError(w, err)
		return
	}
	writeResult(w, handlers.Result{Status: http.StatusOK, Body: map[string]string{"status": "reloaded"}})
}

func (d *Deps) list(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	prefer := response.ParsePrefer(r.Header.Get("Prefer"))
	res, err := handlers.List(r.Context(), d.handlerContext(r), table, r.URL.Query(), prefer, isSingular(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) read(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")
	res, err := handlers.Read(r.Context(), d.handlerContext(r), table, id, r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) exists(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")
	res, err := handlers.Exists(r.Context(), d.handlerContext(r), table, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) create(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	rows, err := decodeRows(r)
	if err != nil {
		writeError(w, err)
		return
	}
	mode := response.ParseResolution(r.Header.Get("Resolution"))
	prefer := response.ParsePrefer(r.Header.Get("Prefer"))
	res, err := handlers.Create(r.Context(), d.handlerContext(r), table, rows, mode, prefer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) update(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")
	set, err := decodeRow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := handlers.Update(r.Context(), d.handlerContext(r), table, id, set)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) patch(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	set, err := decodeRow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	prefer := response.ParsePrefer(r.Header.Get("Prefer"))
	res, err := handlers.Patch(r.Context(), d.handlerContext(r), table, r.URL.Query(), set, prefer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) deleteByID(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	id := chi.URLParam(r, "id")
	prefer := response.ParsePrefer(r.Header.Get("Prefer"))
	res, err := handlers.Delete(r.Context(), d.handlerContext(r), table, id, r.URL.Query(), prefer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) deleteBulk(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	prefer := response.ParsePrefer(r.Header.Get("Prefer"))
	res, err := handlers.Delete(r.Context(), d.handlerContext(r), table, "", r.URL.Query(), prefer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) count(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	res, err := handlers.Count(r.Context(), d.handlerContext(r), table, r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) describe(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	res, err := handlers.Describe(r.Context(), d.handlerContext(r), table)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) groupBy(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	res, err := handlers.GroupBy(r.Context(), d.handlerContext(r), table, r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) aggregate(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	res, err := handlers.Aggregate(r.Context(), d.handlerContext(r), table, r.URL.Query())
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) relational(w http.ResponseWriter, r *http.Request) {
	parent := chi.URLParam(r, "parent")
	id := chi.URLParam(r, "id")
	child := chi.URLParam(r, "child")
	prefer := response.ParsePrefer(r.Header.Get("Prefer"))
	res, err := handlers.Relational(r.Context(), d.handlerContext(r), parent, id, child, r.URL.Query(), prefer)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}

func (d *Deps) rpc(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	values, err := decodeRow(r)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := handlers.RPC(r.Context(), d.handlerContext(r), name, values)
	if err != nil {
		writeError(w, err)
		return
	}
	writeResult(w, res)
}
