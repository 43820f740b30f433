package handlers

import (
	"context"

	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// RPC serves POST /rpc/<name>: looks up the routine in the catalog and
// invokes it — CALL for a procedure, SELECT … AS result for a function —
// binding parameters in declared position order and SQL NULL for any
// missing input. When a procedure returns multiple result sets, only the
// first is scanned; the rest are left unread.
func RPC(ctx context.Context, h *Context, name string, values map[string]any) (Result, error) {
	cat := h.cat()
	routine := cat.Routine(name)
	if routine == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown routine "+name)
	}

	stmt, args := sqlcompiler.RPCStatement(routine, values)
	rows, err := h.DB.QueryRows(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: 200, Body: rows}, nil
}
