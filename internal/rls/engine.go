package rls

import (
	"context"
	"database/sql"
	"sync/atomic"
	"time"
)

// Engine is the RLS Engine: a lock-free, swappable policy index plus the
// database handle it reloads from. Tables without policies are
// unrestricted — an opt-in model, not a default-deny one.
type Engine struct {
	db *sql.DB

	idx      atomic.Pointer[map[indexKey][]Policy]
	loadedAt atomic.Pointer[time.Time]
}

// New ensures the policy store table exists and performs the initial load.
// A failure here is non-fatal for the gateway as a whole — callers should
// log and continue with an Engine that has no policies rather than refuse
// traffic, per the catalog/policy startup-severity split.
func New(ctx context.Context, db *sql.DB) (*Engine, error) {
	e := &Engine{db: db}
	if err := ensureStoreTable(ctx, db); err != nil {
		return e, err
	}
	if err := e.Reload(ctx); err != nil {
		return e, err
	}
	return e, nil
}

// Reload replaces the in-memory index in place via an atomic pointer swap —
// readers never block on a reload in progress. Wired to the administrative
// POST /api/_policies/reload endpoint.
func (e *Engine) Reload(ctx context.Context) error {
	policies, err := loadEnabledPolicies(ctx, e.db)
	if err != nil {
		return err
	}
	idx := buildIndex(policies)
	e.idx.Store(&idx)
	now := time.Now()
	e.loadedAt.Store(&now)
	return nil
}

// LastReloadedAt reports when the index was last successfully (re)built.
// Returns the zero time if no load has ever succeeded.
func (e *Engine) LastReloadedAt() time.Time {
	t := e.loadedAt.Load()
	if t == nil {
		return time.Time{}
	}
	return *t
}

// PoliciesFor returns the active, composable policies for table under op.
// A nil or never-loaded index yields no policies — the table is treated as
// unrestricted rather than the request failing closed.
func (e *Engine) PoliciesFor(table string, op Operation) []Policy {
	idx := e.idx.Load()
	if idx == nil {
		return nil
	}
	return (*idx)[indexKey{table: table, op: op}]
}

// Predicate composes PoliciesFor(table, op) into a single AND-joined
// expression, or "" when the table carries no policies for op.
func (e *Engine) Predicate(table string, op Operation) string {
	return Compose(e.PoliciesFor(table, op))
}
