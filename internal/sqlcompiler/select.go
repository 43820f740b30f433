package sqlcompiler

// SelectStatement assembles a full SELECT from its already-compiled pieces:
// a column list, a WHERE fragment, and optional ORDER BY / LIMIT-OFFSET
// clauses. This is the one place a handler needs to go from components to
// a single parameterized statement string.
func SelectStatement(tableName, columns string, where Fragment, orderClause, limitClause string, limitArgs []any) (string, []any) {
	stmt := "SELECT " + columns + " FROM " + quoteIdent(tableName)
	args := append([]any{}, where.Args...)

	if where.SQL != "" {
		stmt += " " + where.SQL
	}
	if orderClause != "" {
		stmt += " " + orderClause
	}
	if limitClause != "" {
		stmt += " " + limitClause
		args = append(args, limitArgs...)
	}
	return stmt, args
}
