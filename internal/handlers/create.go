package handlers

import (
	"context"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/response"
	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Create serves POST /<table>: single-object or bulk insert, with the
// upsert mode resolved from the Resolution header and, under
// return=representation, a follow-up SELECT of the inserted rows by the
// firstInsertId..firstInsertId+affectedRows-1 range for a single
// auto-incrementing PK, or by the PK values present in the input for a
// composite PK.
func Create(ctx context.Context, h *Context, table string, rows []map[string]any, mode sqlcompiler.UpsertMode, prefer response.Preferences) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}
	if len(rows) == 0 {
		return Result{}, errs.New(errs.ErrKindInvalidInput, "create requires at least one row")
	}

	stmt, args, err := sqlcompiler.InsertStatement(t, rows, mode)
	if err != nil {
		return Result{}, err
	}

	res, err := h.DB.ExecWithClaims(ctx, h.Claims, stmt, args...)
	if err != nil {
		return Result{}, err
	}

	affected, _ := res.RowsAffected()
	lastID, _ := res.LastInsertId()

	if !prefer.ReturnRepresentation {
		return Result{
			Status: response.CreateStatus(false),
			Body:   response.DriverMetadata{AffectedRows: affected, LastInsertID: lastID},
		}, nil
	}

	inserted, err := selectInsertedRows(ctx, h, t, rows, lastID, affected)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: response.CreateStatus(true), Body: inserted}, nil
}

// selectInsertedRows re-selects the rows Create just inserted: for a single
// auto-incrementing PK it uses the firstInsertId..firstInsertId+affected-1
// range; for anything else (composite PK, or a single natural-key PK the
// driver never assigned a LastInsertId for) it OR's together the PK
// predicate of every row whose PK components were all present in the input.
func selectInsertedRows(ctx context.Context, h *Context, t *catalog.Table, rows []map[string]any, lastID, affected int64) ([]map[string]any, error) {
	if len(t.PrimaryKey) == 1 {
		if col := t.Column(t.PrimaryKey[0]); col != nil && col.IsAutoIncrement {
			where := sqlcompiler.Fragment{
				SQL:  "WHERE " + sqlcompiler.QuoteIdent(col.Name) + " BETWEEN ? AND ?",
				Args: []any{lastID, lastID + affected - 1},
			}
			return selectAll(ctx, h, t, where)
		}
	}

	var combined sqlcompiler.Fragment
	for _, row := range rows {
		complete := true
		for _, pkCol := range t.PrimaryKey {
			if _, ok := row[pkCol]; !ok {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
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
	return selectAll(ctx, h, t, combined)
}

// selectAll runs "SELECT * FROM t <where>" and scans every row.
func selectAll(ctx context.Context, h *Context, t *catalog.Table, where sqlcompiler.Fragment) ([]map[string]any, error) {
	columns, err := sqlcompiler.ColumnList(t, nil)
	if err != nil {
		return nil, err
	}
	stmt, args := sqlcompiler.SelectStatement(t.Name, columns, where, "", "", nil)
	return h.DB.QueryRows(ctx, h.Claims, stmt, args...)
}
