package sqlcompiler

import "github.com/GreicodexJM/MyREST/internal/catalog"

// DeleteStatement builds a DELETE for table constrained by where. An empty
// where deletes every row — the spec's documented bulk-delete-wipes-table
// behavior when no filters are supplied, unchanged rather than guarded.
func DeleteStatement(table *catalog.Table, where Fragment) (string, []any) {
	stmt := "DELETE FROM " + quoteIdent(table.Name)
	if where.SQL != "" {
		stmt += " " + where.SQL
	}
	return stmt, where.Args
}
