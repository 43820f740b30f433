package handlers

import (
	"context"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/selectplan"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Read serves GET /<table>/:id: the SELECT policy AND'd with the
// primary-key clause, LIMIT 1. The response body is an array with 0 or 1
// element, per the contract.
func Read(ctx context.Context, h *Context, table, id string, values url.Values) (Result, error) {
	return readByID(ctx, h, table, id, values, rls.OpSelect)
}

// Exists serves GET /<table>/:id/exists: identical to Read but without the
// SELECT policy's AND-clause — existence is deliberately observable more
// loosely than a full row read.
func Exists(ctx context.Context, h *Context, table, id string) (Result, error) {
	return readByID(ctx, h, table, id, nil, "")
}

func readByID(ctx context.Context, h *Context, table, id string, values url.Values, policyOp rls.Operation) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	var selectExpr string
	if values != nil {
		selectExpr = values.Get("select")
	}
	tree, err := selectplan.Parse(table, selectExpr, cat)
	if err != nil {
		return Result{}, err
	}
	columns, err := sqlcompiler.ColumnList(t, tree)
	if err != nil {
		return Result{}, err
	}

	pk, err := sqlcompiler.PKPredicate(t, id)
	if err != nil {
		return Result{}, err
	}

	where := pk
	if policyOp != "" {
		where = rls.Inject(pk, h.RLS.Predicate(table, policyOp))
	}

	limitClause, limitArgs := sqlcompiler.LimitOffsetClause(1, 0)
	stmt, args := sqlcompiler.SelectStatement(table, columns, where, "", limitClause, limitArgs)

	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: 200, Body: rows}, nil
}
