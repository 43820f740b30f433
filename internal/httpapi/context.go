// Package httpapi wires the gateway's operations onto a chi.Router: bearer
// token verification, Prefer/Accept/Resolution header parsing, chi route
// parameter extraction, and handlers.Result serialization back onto the
// http.ResponseWriter.
package httpapi

import (
	"context"
	"net/http"

	"github.com/GreicodexJM/MyREST/internal/claims"
	"github.com/GreicodexJM/MyREST/internal/config"
	"github.com/GreicodexJM/MyREST/internal/dbx"
	"github.com/GreicodexJM/MyREST/internal/handlers"
	"github.com/GreicodexJM/MyREST/internal/logger"
	"github.com/GreicodexJM/MyREST/internal/rls"

	"github.com/GreicodexJM/MyREST/internal/catalog"
)

// Deps holds everything a request handler needs to build a
// handlers.Context and serve a request.
type Deps struct {
	Catalog *catalog.Store
	DB      *dbx.Executor
	RLS     *rls.Engine
	Config  *config.Config
	Log     *logger.Logger
}

type claimsKey struct{}

// withClaims stashes the verified claim map (possibly nil, for an
// unauthenticated request under a non-required JWT policy) into ctx.
func withClaims(ctx context.Context, cl claims.Map) context.Context {
	return context.WithValue(ctx, claimsKey{}, cl)
}

// claimsFromContext retrieves the claim map stashed by the auth middleware.
func claimsFromContext(ctx context.Context) claims.Map {
	cl, _ := ctx.Value(claimsKey{}).(claims.Map)
	return cl
}

// handlerContext builds the per-request handlers.Context from Deps and the
// claims already verified by the auth middleware.
func (d *Deps) handlerContext(r *http.Request) *handlers.Context {
	return &handlers.Context{
		Catalog: d.Catalog,
		DB:      d.DB,
		RLS:     d.RLS,
		Claims:  claimsFromContext(r.Context()),
	}
}
