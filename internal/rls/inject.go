package rls

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/sqlcompiler"
)

// Inject applies a composed policy predicate to an existing WHERE fragment
// per the engine's injection contract: an empty predicate changes nothing;
// an existing WHERE is rewritten to "WHERE (policy) AND (existing)";
// otherwise "WHERE (policy)" is prepended. This is also the function the
// per-row handlers use to compose "(policy) AND <pk-clause>", since a
// primary-key Fragment is itself just an "existing WHERE" from Inject's
// point of view.
func Inject(existing sqlcompiler.Fragment, predicate string) sqlcompiler.Fragment {
	if predicate == "" {
		return existing
	}
	if existing.SQL == "" {
		return sqlcompiler.Fragment{SQL: "WHERE (" + predicate + ")"}
	}

	existingPredicate := strings.TrimPrefix(existing.SQL, "WHERE ")
	return sqlcompiler.Fragment{
		SQL:  "WHERE (" + predicate + ") AND (" + existingPredicate + ")",
		Args: existing.Args,
	}
}
