// Package handlers is the Operation Handlers component: one function per
// resource operation (list, read, exists, create, upsert, update, patch,
// delete, count, describe, relational, groupby, aggregate, rpc), each
// orchestrating queryparam → selectplan → sqlcompiler → rls → dbx → response
// exactly as spec.md's component-dependency graph lays it out.
package handlers

import (
	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/claims"
	"github.com/GreicodexJM/MyREST/internal/dbx"
	"github.com/GreicodexJM/MyREST/internal/rls"
)

// Context carries every process-wide and per-request collaborator a
// handler needs. It is cheap to build per-request — everything it points
// to is either process-wide shared state or an immutable request value.
type Context struct {
	Catalog *catalog.Store
	DB      *dbx.Executor
	RLS     *rls.Engine
	Claims  claims.Map
}

func (c *Context) cat() *catalog.Catalog {
	return c.Catalog.Load()
}
