// Package selectplan is the Select Planner: it parses the `select`
// expression depth-correctly and resolves each relation against the
// catalog into a 1:N or N:1 embedding.
package selectplan

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// MaxSelectDepth bounds relation nesting to prevent pathological selects;
// anything deeper is rejected with a DepthExceededError mapped to 400.
const MaxSelectDepth = 8

// NodeKind distinguishes the four shapes a select-tree node can take.
type NodeKind int

const (
	NodeColumn NodeKind = iota
	NodeExclusion
	NodeStar
	NodeRelation
)

// RelationKind classifies a resolved relation by which side owns the FK.
type RelationKind int

const (
	RelUnresolved RelationKind = iota // no matching FK — literal null subquery
	RelOneToMany                      // child table owns the FK
	RelManyToOne                      // parent table owns the FK
)

// Node is one entry of the select tree: a column, an exclusion, a star, or
// a relation with its own nested select tree.
type Node struct {
	Kind     NodeKind
	Name     string // column name, exclusion target, or relation alias
	Hint     string // FK hint column, relation nodes only
	Target   string // relation's target table name, relation nodes only
	Children []Node // relation's inner select tree

	RelKind    RelationKind
	FK         *catalog.ForeignKey // nil when RelKind == RelUnresolved
	ChildTable string
	ChildCatalogTable *catalog.Table // resolved child table, nil when RelUnresolved
}

// DepthExceededError reports a select expression nested past MaxSelectDepth.
type DepthExceededError struct{}

func (DepthExceededError) Error() string { return "select expression exceeds maximum nesting depth" }

// ParenMismatchError reports unbalanced parentheses in a select expression.
type ParenMismatchError struct{}

func (ParenMismatchError) Error() string { return "unbalanced parentheses in select expression" }

// Parse parses expr as the select tree rooted at table and resolves every
// relation against cat. An empty expr yields a nil tree, which callers
// treat the same as an explicit `*`.
func Parse(table string, expr string, cat *catalog.Catalog) ([]Node, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	return parseLevel(table, expr, cat, 0)
}

func parseLevel(table string, expr string, cat *catalog.Catalog, depth int) ([]Node, error) {
	if depth > MaxSelectDepth {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "select nesting too deep", DepthExceededError{})
	}

	items, err := splitTopLevel(expr)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindInvalidInput, "malformed select expression", err)
	}

	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		node, err := parseItem(table, item, cat, depth)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// splitTopLevel splits expr on commas that occur at parenthesis depth 0,
// verifying the parentheses are balanced across the whole expression —
// the parser is depth-correct: final depth is 0 iff parens matched.
func splitTopLevel(expr string) ([]string, error) {
	var items []string
	depth := 0
	start := 0

	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, ParenMismatchError{}
			}
		case ',':
			if depth == 0 {
				items = append(items, expr[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, ParenMismatchError{}
	}
	items = append(items, expr[start:])
	return items, nil
}

func parseItem(table string, item string, cat *catalog.Catalog, depth int) (Node, error) {
	if item == "*" {
		return Node{Kind: NodeStar}, nil
	}
	if strings.HasPrefix(item, "-") {
		return Node{Kind: NodeExclusion, Name: item[1:]}, nil
	}

	openParen := strings.IndexByte(item, '(')
	if openParen == -1 {
		return Node{Kind: NodeColumn, Name: item}, nil
	}
	if !strings.HasSuffix(item, ")") {
		return Node{}, errs.Wrap(errs.ErrKindInvalidInput, "malformed relation in select expression", ParenMismatchError{})
	}

	head := item[:openParen]
	inner := item[openParen+1 : len(item)-1]

	hint, target := splitHint(head)

	children, err := parseLevel(target, inner, cat, depth+1)
	if err != nil {
		return Node{}, err
	}

	node := Node{
		Kind:     NodeRelation,
		Name:     target,
		Hint:     hint,
		Target:   target,
		Children: children,
	}
	resolveRelation(&node, table, cat)
	return node, nil
}

func splitHint(head string) (hint, target string) {
	if i := strings.IndexByte(head, ':'); i != -1 {
		return head[:i], head[i+1:]
	}
	return "", head
}
