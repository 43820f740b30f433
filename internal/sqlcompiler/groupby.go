package sqlcompiler

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// GroupByStatement builds a GROUP BY over fields with a COUNT(*) AS count
// column, defaulting to ORDER BY `count` DESC when orderClause is empty.
func GroupByStatement(table *catalog.Table, fields []string, where Fragment, orderClause string) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, errs.New(errs.ErrKindInvalidInput, "groupby requires at least one field")
	}

	quoted := make([]string, len(fields))
	for i, f := range fields {
		if table.Column(f) == nil {
			return "", nil, errs.New(errs.ErrKindInvalidInput, "unknown groupby field "+f)
		}
		quoted[i] = quoteIdent(f)
	}

	stmt := "SELECT " + strings.Join(quoted, ", ") + ", COUNT(*) AS " + quoteIdent("count") +
		" FROM " + quoteIdent(table.Name)
	if where.SQL != "" {
		stmt += " " + where.SQL
	}
	stmt += " GROUP BY " + strings.Join(quoted, ", ")

	if orderClause == "" {
		orderClause = DefaultGroupByOrder
	}
	stmt += " " + orderClause

	return stmt, where.Args, nil
}
