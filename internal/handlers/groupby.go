package handlers

import (
	"context"
	"net/url"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// GroupBy serves GET /<table>/groupby: requires `_fields`, groups by those
// columns with a COUNT(*) AS count column, defaulting to ORDER BY count
// DESC.
func GroupBy(ctx context.Context, h *Context, table string, values url.Values) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	fieldsParam := values.Get("_fields")
	if fieldsParam == "" {
		return Result{}, errs.New(errs.ErrKindInvalidInput, "groupby requires _fields")
	}
	fields := splitFields(fieldsParam)

	parsed := queryparam.Parse(values)
	where := rls.Inject(sqlcompiler.WhereFromFilters(parsed.Filters), h.RLS.Predicate(table, rls.OpSelect))

	orderClause := sqlcompiler.OrderByClause(parsed.Order)
	stmt, args, err := sqlcompiler.GroupByStatement(t, fields, where, orderClause)
	if err != nil {
		return Result{}, err
	}

	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: 200, Body: rows}, nil
}

func splitFields(raw string) []string {
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
