package rls

import "strings"

type indexKey struct {
	table string
	op    Operation
}

// buildIndex groups already-fanned-out policies by (table, operation).
func buildIndex(policies []Policy) map[indexKey][]Policy {
	idx := make(map[indexKey][]Policy, len(policies))
	for _, p := range policies {
		key := indexKey{table: p.TableName, op: p.Operation}
		idx[key] = append(idx[key], p)
	}
	return idx
}

// Compose ANDs every policy's using_expression together, parenthesizing
// each before concatenation. An empty slice composes to "", meaning the
// table is unrestricted for this operation.
func Compose(policies []Policy) string {
	if len(policies) == 0 {
		return ""
	}
	parts := make([]string, len(policies))
	for i, p := range policies {
		parts[i] = "(" + p.UsingExpression + ")"
	}
	return strings.Join(parts, " AND ")
}
