package handlers

import (
	"context"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/selectplan"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// List serves GET /<table>: a column list, an optional exact-count query,
// and the main filtered/ordered/paginated query, with the SELECT policy
// injected into both WHEREs.
func List(ctx context.Context, h *Context, table string, values url.Values, prefer response.Preferences, singular bool) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	parsed := queryparam.Parse(values)
	tree, err := selectplan.Parse(table, parsed.Select, cat)
	if err != nil {
		return Result{}, err
	}
	columns, err := sqlcompiler.ColumnList(t, tree)
	if err != nil {
		return Result{}, err
	}

	policy := h.RLS.Predicate(table, rls.OpSelect)
	where := rls.Inject(sqlcompiler.WhereFromFilters(parsed.Filters), policy)

	var total *int
	if prefer.CountExact {
		countSQL, countArgs := sqlcompiler.CountStatement(t, where)
		countRows, err := h.DB.QueryRows(ctx, h.Claims, countSQL, countArgs...)
		if err != nil {
			return Result{}, err
		}
		if n, ok := extractCount(countRows); ok {
			total = &n
		}
	}

	orderClause := sqlcompiler.OrderByClause(parsed.Order)
	limitClause, limitArgs := sqlcompiler.LimitOffsetClause(parsed.Limit, parsed.Offset)
	stmt, args := sqlcompiler.SelectStatement(table, columns, where, orderClause, limitClause, limitArgs)

	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}

	if singular {
		row, err := response.Singular(rows)
		if err != nil {
			return Result{}, err
		}
		return Result{Status: 200, Body: row}, nil
	}

	end := parsed.Offset + len(rows) - 1
	headers := map[string]string{
		"Content-Range": response.ContentRange(parsed.Offset, end, total),
	}
	return Result{Status: 200, Body: rows, Headers: headers}, nil
}

// extractCount reads the no_of_rows column out of a single-row count
// result set.
func extractCount(rows []map[string]any) (int, bool) {
	if len(rows) != 1 {
		return 0, false
	}
	switch v := rows[0]["no_of_rows"].(type) {
	case int64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}
