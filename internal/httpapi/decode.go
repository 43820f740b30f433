package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

// decodeRow reads a single JSON object body.
func decodeRow(r *http.Request) (map[string]any, error) {
	var row map[string]any
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "invalid JSON body", err)
	}
	return row, nil
}

// decodeRows reads either a single JSON object or a JSON array of objects,
// the shape PostgREST accepts for POST /<table> bulk inserts.
func decodeRows(r *http.Request) ([]map[string]any, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "invalid JSON body", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err == nil {
		return rows, nil
	}

	var row map[string]any
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "body must be a JSON object or array of objects", err)
	}
	return []map[string]any{row}, nil
}

// isSingular reports whether the client negotiated PostgREST's
// single-object response contract.
func isSingular(r *http.Request) bool {
	return r.Header.Get("Accept") == "application/vnd.pgrst.object+json"
}
