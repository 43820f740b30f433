package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/handlers"
	"github.com/GreicodexJM/MyREST/internal/response"
)

// writeResult serializes a handlers.Result onto w: its headers, its status,
// and its body as JSON (skipped entirely for a 204 or a nil body).
func writeResult(w http.ResponseWriter, res handlers.Result) {
	for k, v := range res.Headers {
		w.Header().Set(k, v)
	}
	if res.Body == nil || res.Status == http.StatusNoContent {
		w.WriteHeader(res.Status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	_ = json.NewEncoder(w).Encode(res.Body)
}

// writeError maps err to its HTTP status via errs.HTTPStatus and writes a
// small JSON error envelope. A response.ErrNotSingular maps to 406, the
// one status outside errs.HTTPStatus's table — it is a negotiation failure
// between the Accept header and the result set, not a catalog or policy
// error.
func writeError(w http.ResponseWriter, err error) {
	status := errs.HTTPStatus(err)
	if errors.Is(err, response.ErrNotSingular) {
		status = http.StatusNotAcceptable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
