package sqlcompiler

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// aggregateFuncs maps the query-facing aggregate name to the SQL function
// it compiles to.
var aggregateFuncs = map[string]string{
	"min":      "MIN",
	"max":      "MAX",
	"avg":      "AVG",
	"sum":      "SUM",
	"stddev":   "STDDEV",
	"variance": "VARIANCE",
}

// AggregateStatement builds one SELECT applying every function in
// aggregateFuncs to every field, aliased "<fn>_of_<field>".
func AggregateStatement(table *catalog.Table, fields []string, where Fragment) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, errs.New(errs.ErrKindInvalidInput, "aggregate requires at least one field")
	}

	var parts []string
	for _, f := range fields {
		if table.Column(f) == nil {
			return "", nil, errs.New(errs.ErrKindInvalidInput, "unknown aggregate field "+f)
		}
		for name, sqlFn := range aggregateFuncs {
			alias := name + "_of_" + f
			parts = append(parts, sqlFn+"("+quoteIdent(f)+") AS "+quoteIdent(alias))
		}
	}

	stmt := "SELECT " + strings.Join(parts, ", ") + " FROM " + quoteIdent(table.Name)
	if where.SQL != "" {
		stmt += " " + where.SQL
	}
	return stmt, where.Args, nil
}
