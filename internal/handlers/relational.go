package handlers

import (
	"context"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Relational serves GET /<parent>/:id/<child>: the FK predicate connecting
// parentID to child, combined with the caller's own filters and the
// SELECT policy on child, with the same ordering/pagination/count-header
// contract as List.
func Relational(ctx context.Context, h *Context, parent, parentID, child string, values url.Values, prefer response.Preferences) (Result, error) {
	cat := h.cat()
	parentTable := cat.Table(parent)
	if parentTable == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+parent)
	}
	childTable := cat.Table(child)
	if childTable == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+child)
	}

	fk := findFK(childTable, parent)
	if fk == nil {
		return Result{}, errs.New(errs.ErrKindInvalidInput, "no foreign key connects "+child+" to "+parent)
	}

	fkFrag, err := sqlcompiler.FKPredicate(fk, parentID)
	if err != nil {
		return Result{}, err
	}

	parsed := queryparam.Parse(values)
	where := fkFrag.And(sqlcompiler.WhereFromFilters(parsed.Filters))
	where = rls.Inject(where, h.RLS.Predicate(child, rls.OpSelect))

	columns, err := sqlcompiler.ColumnList(childTable, nil)
	if err != nil {
		return Result{}, err
	}

	var total *int
	if prefer.CountExact {
		countSQL, countArgs := sqlcompiler.CountStatement(childTable, where)
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
	stmt, args := sqlcompiler.SelectStatement(child, columns, where, orderClause, limitClause, limitArgs)

	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}

	end := parsed.Offset + len(rows) - 1
	headers := map[string]string{"Content-Range": response.ContentRange(parsed.Offset, end, total)}
	return Result{Status: 200, Body: rows, Headers: headers}, nil
}

// findFK returns the foreign key on child pointing at parentTable, or nil.
func findFK(child *catalog.Table, parentTable string) *catalog.ForeignKey {
	for _, fk := range child.ForeignKeys {
		if fk.RefTable == parentTable {
			return fk
		}
	}
	return nil
}
