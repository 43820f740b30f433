// Package claims models the per-request claim map derived from a verified
// bearer token (spec's Request Context) and the sanitization rules the
// connection executor needs to bind those claims as session variables.
package claims

import (
	"encoding/json"
	"regexp"
)

// Map is the decoded, immutable claim set for one request. Values are
// whatever the token's JSON payload decodes to: string, float64, bool, nil,
// or, for anything structured, a map[string]any or []any. BindValue turns
// structured values into JSON text when they are bound.
type Map map[string]any

var unsafeClaimChar = regexp.MustCompile(`[^A-Za-z0-9_]`)

// SanitizeName replaces every character outside [A-Za-z0-9_] with "_", the
// rule the executor applies before interpolating a claim name into a
// `SET @request_jwt_claim_<name>` statement.
func SanitizeName(name string) string {
	return unsafeClaimChar.ReplaceAllString(name, "_")
}

// BindValue converts one claim value into the form bound as a SET
// parameter: scalars pass through unchanged, everything else is
// JSON-serialized to text.
func BindValue(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, float64, int, int64:
		return v, nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	}
}
