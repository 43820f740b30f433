package dbx

import (
	"context"
	"database/sql"

	"github.com/GreicodexJM/MyREST/internal/claims"
)

// QueryRows runs query under cl's claim context (or context-free when cl is
// empty) and scans every result row into a map, closing the Rows before
// returning.
func (e *Executor) QueryRows(ctx context.Context, cl claims.Map, query string, args ...any) ([]map[string]any, error) {
	var result []map[string]any
	err := e.RunWithContext(ctx, cl, func(ctx context.Context, conn *sql.Conn) error {
		var rows *sql.Rows
		var err error
		if conn != nil {
			rows, err = conn.QueryContext(ctx, query, args...)
		} else {
			rows, err = e.db.QueryContext(ctx, query, args...)
		}
		if err != nil {
			return mapError(err, "query failed")
		}
		result, err = ScanRows(rows)
		return err
	})
	return result, err
}

// ExecWithClaims runs a mutating statement under cl's claim context.
func (e *Executor) ExecWithClaims(ctx context.Context, cl claims.Map, query string, args ...any) (sql.Result, error) {
	var result sql.Result
	err := e.RunWithContext(ctx, cl, func(ctx context.Context, conn *sql.Conn) error {
		var err error
		if conn != nil {
			result, err = conn.ExecContext(ctx, query, args...)
		} else {
			result, err = e.db.ExecContext(ctx, query, args...)
		}
		if err != nil {
			return mapError(err, "exec failed")
		}
		return nil
	})
	return result, err
}
