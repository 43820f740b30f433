package sqlcompiler

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/selectplan"
)

// ColumnList renders the SELECT column list for table given its planned
// select tree: when a star is present (or the tree is empty, treated the
// same as an explicit `*`), every catalog column minus exclusions comes
// first, then every explicit column, then every relation as a correlated
// subquery aliased to the relation's target name. Unknown explicit columns
// are silently ignored; if the result would be empty, the literal ` * `
// is emitted instead.
func ColumnList(table *catalog.Table, tree []selectplan.Node) (string, error) {
	hasStar := len(tree) == 0
	excluded := make(map[string]bool)
	var explicit []selectplan.Node
	var relations []selectplan.Node

	for _, n := range tree {
		switch n.Kind {
		case selectplan.NodeStar:
			hasStar = true
		case selectplan.NodeExclusion:
			excluded[n.Name] = true
		case selectplan.NodeColumn:
			explicit = append(explicit, n)
		case selectplan.NodeRelation:
			relations = append(relations, n)
		}
	}

	var parts []string

	if hasStar {
		for _, col := range table.Columns {
			if excluded[col.Name] {
				continue
			}
			parts = append(parts, quoteIdent(col.Name))
		}
	}

	for _, n := range explicit {
		if table.Column(n.Name) == nil {
			continue // unknown column in a select: silently ignored
		}
		parts = append(parts, quoteIdent(n.Name))
	}

	for _, rel := range relations {
		sub, err := embedSubquery(table, rel)
		if err != nil {
			return "", err
		}
		parts = append(parts, sub+" AS "+quoteIdent(rel.Name))
	}

	if len(parts) == 0 {
		return " * ", nil
	}
	return strings.Join(parts, ", "), nil
}
