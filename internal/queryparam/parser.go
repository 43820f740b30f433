// Package queryparam decodes a PostgREST-shaped query-parameter multimap
// into a neutral AST: a filter conjunction, a raw select string, an order
// specification, and pagination bounds. It emits no SQL — the compiler
// consumes what this package produces.
package queryparam

import (
	"net/url"
	"strings"
)

// reservedKeys are never treated as filter columns.
var reservedKeys = map[string]bool{
	"select":      true,
	"order":       true,
	"limit":       true,
	"offset":      true,
	"on_conflict": true,
	"columns":     true,
}

// Result is the parser's output: everything the planner and compiler need,
// with no SQL generated yet.
type Result struct {
	Filters []Predicate
	Select  string // raw select expression, parsed further by the planner
	Order   []OrderTerm
	Limit   int
	Offset  int
}

// Parse decodes values into a Result. Unknown filter operators and
// malformed `in.(…)` lists are dropped silently; unrecognized query keys
// that aren't reserved and don't parse as a filter are ignored the same
// way.
func Parse(values url.Values) Result {
	r := Result{
		Select: values.Get("select"),
	}

	r.Order = parseOrder(values.Get("order"), values.Get("_sort"))
	r.Limit, r.Offset = parsePagination(
		values.Get("limit"), values.Get("offset"),
		values.Get("_size"), values.Get("_p"),
	)

	for key, rawValues := range values {
		if isReserved(key) {
			continue
		}
		for _, raw := range rawValues {
			op, val, ok := parseFilterValue(raw)
			if !ok {
				continue
			}
			r.Filters = append(r.Filters, Predicate{Column: key, Operator: op, Value: val})
		}
	}

	return r
}

// isReserved reports whether key is skipped by the predicate extractor:
// the named reserved keys, and any key starting with "_" (the legacy DSL
// namespace, including `_where`, which this gateway does not implement —
// see DESIGN.md's Open Question decisions).
func isReserved(key string) bool {
	if reservedKeys[key] {
		return true
	}
	return strings.HasPrefix(key, "_")
}
