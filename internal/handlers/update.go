package handlers

import (
	"context"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Update serves PUT /<table>/:id: UPDATE t SET … WHERE (UPDATE-policy) AND
// <pk-clause>. A PK arity mismatch in id surfaces as CompositeKeyError
// (mapped to 400 by the caller). No representation re-select — the
// response is always the driver's affected-row count, so a row an RLS
// policy denies the update on reports affectedRows == 0 without disclosing
// the row's current state.
func Update(ctx context.Context, h *Context, table, id string, set map[string]any) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	pk, err := sqlcompiler.PKPredicate(t, id)
	if err != nil {
		return Result{}, err
	}
	where := rls.Inject(pk, h.RLS.Predicate(table, rls.OpUpdate))

	stmt, args, err := sqlcompiler.UpdateStatement(t, set, where)
	if err != nil {
		return Result{}, err
	}

	res, err := h.DB.ExecWithClaims(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}

	affected, _ := res.RowsAffected()
	return Result{Status: 200, Body: response.DriverMetadata{AffectedRows: affected}}, nil
}
