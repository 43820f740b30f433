// Package dbx is the Connection/Context Executor: it acquires pooled
// connections, sets per-request session variables from token claims, runs
// the statement, and guarantees the connection is released on every path.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/claims"
	"github.com/GreicodexJM/MyREST/internal/config"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// Executor wraps a MySQL/MariaDB connection pool. Safe for concurrent use.
type Executor struct {
	db *sql.DB
}

// New opens the pool described by cfg and pings it before returning, the
// way mysql.New validates the connection up front rather than on first use.
func New(ctx context.Context, cfg *config.Config) (*Executor, error) {
	db, err := buildPool(cfg)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindConnectionFailed, "failed to open pool", err)
	}

	e := &Executor{db: db}
	if err := e.Ping(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return e, nil
}

// Ping verifies the pool can reach the database.
func (e *Executor) Ping(ctx context.Context) error {
	if err := e.db.PingContext(ctx); err != nil {
		return mapError(err, "ping failed")
	}
	return nil
}

// Close releases every resource held by the pool.
func (e *Executor) Close() error {
	return e.db.Close()
}

// DB exposes the underlying *sql.DB for the one caller that legitimately
// needs it directly: catalog.LoadCatalog, which runs its introspection
// queries anonymously, ahead of any request or claim context.
func (e *Executor) DB() *sql.DB {
	return e.db
}

// --- context-free path: no claim map, dispatch directly on the pool ---

// Query runs a statement with no claim context, letting the pool own
// connection allocation and release.
func (e *Executor) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "query failed")
	}
	return rows, nil
}

// QueryRow runs a single-row statement with no claim context.
func (e *Executor) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return e.db.QueryRowContext(ctx, query, args...)
}

// Exec runs a mutating statement with no claim context.
func (e *Executor) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "exec failed")
	}
	return res, nil
}

// --- with-context path: borrow a dedicated connection, SET, then run ---

// RunWithContext borrows one connection from the pool, binds cl's claims as
// `SET @request_jwt_claim_<name> = ?` session variables (skipped entirely
// when cl is nil/empty — the context-free path), invokes fn on that same
// connection, and always returns the connection to the pool afterward.
func (e *Executor) RunWithContext(ctx context.Context, cl claims.Map, fn func(ctx context.Context, conn *sql.Conn) error) error {
	if len(cl) == 0 {
		return fn(ctx, nil)
	}

	conn, err := e.db.Conn(ctx)
	if err != nil {
		return mapError(err, "failed to borrow connection")
	}
	defer conn.Close()

	if err := setClaims(ctx, conn, cl); err != nil {
		return err
	}
	return fn(ctx, conn)
}

// RunInTransactionWithContext borrows a connection, applies the claim SET
// statements, begins a transaction on that connection, and commits on
// success or rolls back on any error fn returns or panics with. Used by the
// patch handler, whose pre-select-then-update-then-reselect sequence needs
// atomicity between the read and the write.
func (e *Executor) RunInTransactionWithContext(ctx context.Context, cl claims.Map, fn func(ctx context.Context, tx *sql.Tx) error) (err error) {
	conn, connErr := e.db.Conn(ctx)
	if connErr != nil {
		return mapError(connErr, "failed to borrow connection")
	}
	defer conn.Close()

	if len(cl) > 0 {
		if err := setClaims(ctx, conn, cl); err != nil {
			return err
		}
	}

	tx, txErr := conn.BeginTx(ctx, nil)
	if txErr != nil {
		return mapError(txErr, "failed to begin transaction")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// setClaims issues the single SET statement carrying every claim as a
// positional parameter, one `@request_jwt_claim_<name> = ?` assignment per
// claim, on conn.
func setClaims(ctx context.Context, conn *sql.Conn, cl claims.Map) error {
	assignments := make([]string, 0, len(cl))
	args := make([]any, 0, len(cl))

	for name, value := range cl {
		bound, err := claims.BindValue(value)
		if err != nil {
			return errs.Wrap(errs.ErrKindInvalidInput, "failed to serialize claim "+name, err)
		}
		assignments = append(assignments, fmt.Sprintf("@request_jwt_claim_%s = ?", claims.SanitizeName(name)))
		args = append(args, bound)
	}

	stmt := "SET " + strings.Join(assignments, ", ")
	if _, err := conn.ExecContext(ctx, stmt, args...); err != nil {
		return mapError(err, "failed to set claim context")
	}
	return nil
}
