package handlers

import (
	"context"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Delete serves both DELETE /<table>/:id (single row) and DELETE /<table>
// (bulk, under the user's filter plus the injected DELETE policy). An
// empty filter and an unrestricted table deletes every row — the documented
// PostgREST default, not a guarded edge case.
func Delete(ctx context.Context, h *Context, table, id string, values url.Values, prefer response.Preferences) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	var where sqlcompiler.Fragment
	if id != "" {
		pk, err := sqlcompiler.PKPredicate(t, id)
		if err != nil {
			return Result{}, err
		}
		where = rls.Inject(pk, h.RLS.Predicate(table, rls.OpDelete))
	} else {
		parsed := queryparam.Parse(values)
		where = rls.Inject(sqlcompiler.WhereFromFilters(parsed.Filters), h.RLS.Predicate(table, rls.OpDelete))
	}

	var preDeleteRows []map[string]any
	if prefer.ReturnRepresentation {
		var err error
		preDeleteRows, err = selectAll(ctx, h, t, where)
		if err != nil {
			return Result{}, err
		}
	}

	stmt, args := sqlcompiler.DeleteStatement(t, where)
	res, err := h.DB.ExecWithClaims(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}

	if prefer.ReturnRepresentation {
		return Result{Status: 200, Body: preDeleteRows}, nil
	}
	affected, _ := res.RowsAffected()
	return Result{Status: 200, Body: response.DriverMetadata{AffectedRows: affected}}, nil
}
