package response

import "errors"

// ErrNotSingular is returned when the caller sent
// Accept: application/vnd.pgrst.object+json but the result set did not
// contain exactly one row. Handlers map this to HTTP 406.
var ErrNotSingular = errors.New("expected exactly one row for singular response")

// Singular enforces the singular-object contract: exactly one row, or
// ErrNotSingular.
func Singular(rows []map[string]any) (map[string]any, error) {
	if len(rows) != 1 {
		return nil, ErrNotSingular
	}
	return rows[0], nil
}
