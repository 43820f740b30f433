// Package rls is the RLS Engine: it loads row-level security policies from
// their database-backed store, indexes them by (table, operation), composes
// the active set for a lookup into a single predicate, and injects that
// predicate into a WHERE fragment the query compiler produced.
package rls

import "time"

// Operation is one of the four statement kinds a policy can guard, or ALL —
// a load-time shorthand that fans out to the other four.
type Operation string

const (
	OpSelect Operation = "SELECT"
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
	OpAll    Operation = "ALL"
)

// Policy mirrors one row of the policy store. CheckExpression round-trips
// through the loader but is not enforced — future work.
type Policy struct {
	ID               int64
	TableName        string
	PolicyName       string
	Operation        Operation
	UsingExpression  string
	CheckExpression  *string
	Enabled          bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
