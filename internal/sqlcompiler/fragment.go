// Package sqlcompiler is the Query Compiler: it emits parameterized SQL —
// column lists, WHERE/ORDER BY/LIMIT/OFFSET clauses, primary-key and
// foreign-key predicates, and the recursive JSON-valued subqueries that
// realize embedded relations — from the catalog, filter AST, and select
// tree the upstream components produce.
package sqlcompiler

import (
	"fmt"
	"strings"
)

// Fragment is a WHERE clause in progress: either empty, or a "WHERE …"
// string paired with its positional arguments. The RLS engine injects
// policy predicates into a Fragment using exactly this shape.
type Fragment struct {
	SQL  string // "" or "WHERE …"
	Args []any
}

// And combines two fragments' predicates with AND, parenthesizing each
// side. An empty fragment contributes nothing.
func (f Fragment) And(other Fragment) Fragment {
	left := strings.TrimPrefix(f.SQL, "WHERE ")
	right := strings.TrimPrefix(other.SQL, "WHERE ")

	switch {
	case left == "" && right == "":
		return Fragment{}
	case left == "":
		return other
	case right == "":
		return f
	default:
		args := make([]any, 0, len(f.Args)+len(other.Args))
		args = append(args, f.Args...)
		args = append(args, other.Args...)
		return Fragment{SQL: "WHERE (" + left + ") AND (" + right + ")", Args: args}
	}
}

// Or combines two fragments' predicates with OR, parenthesizing each side.
// An empty fragment contributes nothing — used to build the "any of these
// rows" predicate when re-selecting a multi-row composite-PK insert.
func (f Fragment) Or(other Fragment) Fragment {
	left := strings.TrimPrefix(f.SQL, "WHERE ")
	right := strings.TrimPrefix(other.SQL, "WHERE ")

	switch {
	case left == "" && right == "":
		return Fragment{}
	case left == "":
		return other
	case right == "":
		return f
	default:
		args := make([]any, 0, len(f.Args)+len(other.Args))
		args = append(args, f.Args...)
		args = append(args, other.Args...)
		return Fragment{SQL: "WHERE (" + left + ") OR (" + right + ")", Args: args}
	}
}

// QuoteIdent wraps a SQL identifier in backticks, exported for the handful
// of handler-level call sites that assemble SQL fragments the compiler's
// own builders don't cover (e.g. a BETWEEN clause over a primary key).
func QuoteIdent(name string) string {
	return quoteIdent(name)
}

// EncodeCompositeID joins row's values for pk's columns, in pk's declared
// order, with the same "___" separator PKPredicate decodes — the inverse
// operation, used when re-selecting rows just inserted by their composite
// primary key.
func EncodeCompositeID(pk []string, row map[string]any) string {
	parts := make([]string, len(pk))
	for i, col := range pk {
		parts[i] = fmt.Sprintf("%v", row[col])
	}
	return strings.Join(parts, pkSeparator)
}

// quoteIdent wraps a SQL identifier in backticks, MySQL's native
// identifier-quoting style — the compiler commits to one dialect, so there
// is no ANSI-vs-MySQL quoting choice left to make at call sites.
func quoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}
