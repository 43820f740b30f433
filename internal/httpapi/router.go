package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/config"
	"github.com/GreicodexJM/MyREST/internal/dbx"
	"github.com/GreicodexJM/MyREST/internal/logger"
	"github.com/GreicodexJM/MyREST/internal/rls"
)

// NewRouter assembles the gateway's full chi.Router: request logging and
// panic recovery, bearer-token verification, and one route per §6
// operation, all mounted under the /api prefix the HTTP surface specifies.
func NewRouter(cat *catalog.Store, db *dbx.Executor, engine *rls.Engine, cfg *config.Config, log *logger.Logger) http.Handler {
	d := &Deps{Catalog: cat, DB: db, RLS: engine, Config: cfg, Log: log}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLog(log))
	r.Use(d.authenticate())

	r.Route("/api", func(r chi.Router) {
		r.Get("/tables", d.listTables)

		r.Post("/_policies/reload", d.reloadPolicies)

		r.Get("/{table}/count", d.count)
		r.Get("/{table}/describe", d.describe)
		r.Get("/{table}/groupby", d.groupBy)
		r.Get("/{table}/aggregate", d.aggregate)
		r.Get("/{table}/{id}/exists", d.exists)
		r.Get("/{parent}/{id}/{child}", d.relational)

		r.Get("/{table}/{id}", d.read)
		r.Put("/{table}/{id}", d.update)
		r.Delete("/{table}/{id}", d.deleteByID)

		r.Get("/{table}", d.list)
		r.Post("/{table}", d.create)
		r.Patch("/{table}", d.patch)
		r.Delete("/{table}", d.deleteBulk)

		r.Post("/rpc/{name}", d.rpc)
	})

	return r
}

// requestLog logs one line per request at info level, mirroring the
// teacher's HTTPEvent helper.
func requestLog(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.HTTPEvent().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}
