package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/url"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/dbx"
	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/queryparam"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/rls"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Patch serves PATCH /<table>: a filter-driven partial update. An empty
// patch body is 204, not an error. Under return=representation the pre-
// select-then-update-then-reselect sequence runs inside one transaction,
// the one handler in the operation set that genuinely needs atomicity
// between its read and its write.
func Patch(ctx context.Context, h *Context, table string, values url.Values, set map[string]any, prefer response.Preferences) (Result, error) {
	if len(set) == 0 {
		return Result{Status: http.StatusNoContent}, nil
	}

	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	parsed := queryparam.Parse(values)
	where := rls.Inject(sqlcompiler.WhereFromFilters(parsed.Filters), h.RLS.Predicate(table, rls.OpUpdate))

	if !prefer.ReturnRepresentation {
		stmt, args, err := sqlcompiler.UpdateStatement(t, set, where)
		if err != nil {
			return Result{}, err
		}
		res, err := h.DB.ExecWithClaims(ctx, h.Claims, stmt, args...)
		if err != nil {
			return Result{}, err
		}
		affected, _ := res.RowsAffected()
		return Result{Status: http.StatusOK, Body: response.DriverMetadata{AffectedRows: affected}}, nil
	}

	var affectedRows []map[string]any
	err := h.DB.RunInTransactionWithContext(ctx, h.Claims, func(ctx context.Context, tx *sql.Tx) error {
		candidates, err := selectPKsInTx(ctx, tx, t, where)
		if err != nil {
			return err
		}

		updateStmt, updateArgs, err := sqlcompiler.UpdateStatement(t, set, where)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, updateStmt, updateArgs...); err != nil {
			return err
		}

		affectedRows, err = reselectByPKsInTx(ctx, tx, t, candidates)
		return err
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Status: http.StatusOK, Body: affectedRows}, nil
}

func selectPKsInTx(ctx context.Context, tx *sql.Tx, t *catalog.Table, where sqlcompiler.Fragment) ([]map[string]any, error) {
	pkColumns := make([]string, len(t.PrimaryKey))
	for i, c := range t.PrimaryKey {
		pkColumns[i] = sqlcompiler.QuoteIdent(c)
	}
	columns := joinColumns(pkColumns)

	stmt, args := sqlcompiler.SelectStatement(t.Name, columns, where, "", "", nil)
	rows, err := tx.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return dbx.ScanRows(rows)
}

func reselectByPKsInTx(ctx context.Context, tx *sql.Tx, t *catalog.Table, candidates []map[string]any) ([]map[string]any, error) {
	var combined sqlcompiler.Fragment
	for _, row := range candidates {
		id := sqlcompiler.EncodeCompositeID(t.PrimaryKey, row)
		pkFrag, err := sqlcompiler.PKPredicate(t, id)
		if err != nil {
			return nil, err
		}
		combined = combined.Or(pkFrag)
	}
	if combined.SQL == "" {
		return []map[string]any{}, nil
	}

	columns, err := sqlcompiler.ColumnList(t, nil)
	if err != nil {
		return nil, err
	}
	stmt, args := sqlcompiler.SelectStatement(t.Name, columns, combined, "", "", nil)
	rows, err := tx.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return dbx.ScanRows(rows)
}

func joinColumns(cols []string) string {
	out := cols[0]
	for _, c := range cols[1:] {
		out += ", " + c
	}
	return out
}
