package response

import "github.com/GreicodexJM/MyREST/internal/sqlcompiler"

// ParseResolution maps the Resolution request header to the InsertStatement
// upsert mode it selects: merge-duplicates, ignore-duplicates, or (absent
// or unrecognized) a plain insert.
func ParseResolution(header string) sqlcompiler.UpsertMode {
	switch header {
	case "merge-duplicates":
		return sqlcompiler.InsertMergeDuplicates
	case "ignore-duplicates":
		return sqlcompiler.InsertIgnoreDuplicates
	default:
		return sqlcompiler.InsertPlain
	}
}
