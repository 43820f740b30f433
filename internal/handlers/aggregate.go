package handlers

import (
	"context"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Aggregate serves GET /<table>/aggregate: requires `_fields`; for each
// field emits min/max/avg/sum/stddev/variance aliased "<fn>_of_<field>".
func Aggregate(ctx context.Context, h *Context, table string, values url.Values) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	fieldsParam := values.Get("_fields")
	if fieldsParam == "" {
		return Result{}, errs.New(errs.ErrKindInvalidInput, "aggregate requires _fields")
	}
	fields := splitFields(fieldsParam)

	parsed := queryparam.Parse(values)
	where := rls.Inject(sqlcompiler.WhereFromFilters(parsed.Filters), h.RLS.Predicate(table, rls.OpSelect))

	stmt, args, err := sqlcompiler.AggregateStatement(t, fields, where)
	if err != nil {
		return Result{}, err
	}

	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: 200, Body: rows}, nil
}
