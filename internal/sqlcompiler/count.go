package sqlcompiler

import "github.com/GreicodexJM/MyREST/internal/catalog"

// CountStatement builds the exact-count query backing Prefer: count=exact
// and the dedicated /<table>/count resource.
func CountStatement(table *catalog.Table, where Fragment) (string, []any) {
	stmt := "SELECT COUNT(1) AS no_of_rows FROM " + quoteIdent(table.Name)
	if where.SQL != "" {
		stmt += " " + where.SQL
	}
	return stmt, where.Args
}
