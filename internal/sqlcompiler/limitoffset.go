package sqlcompiler

// LimitOffsetClause renders "LIMIT ? OFFSET ?" and its bound arguments.
func LimitOffsetClause(limit, offset int) (string, []any) {
	return "LIMIT ? OFFSET ?", []any{limit, offset}
}
