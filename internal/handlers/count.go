package handlers

import (
	"context"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Count serves GET /<table>/count: SELECT COUNT(1) AS no_of_rows FROM t,
// under the same user filters and SELECT policy a list request would use.
func Count(ctx context.Context, h *Context, table string, values url.Values) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	parsed := queryparam.Parse(values)
	where := rls.Inject(sqlcompiler.WhereFromFilters(parsed.Filters), h.RLS.Predicate(table, rls.OpSelect))

	stmt, args := sqlcompiler.CountStatement(t, where)
	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}

	n, _ := extractCount(rows)
	return Result{Status: 200, Body: map[string]any{"no_of_rows": n}}, nil
}
