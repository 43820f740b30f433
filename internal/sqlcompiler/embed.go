package sqlcompiler

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
	"github.com/GreicodexJM/MyREST/internal/selectplan"
)

// embedSubquery emits the correlated subquery for one relation node of
// table's select tree: a JSON_ARRAYAGG of objects for a 1:N embedding, a
// single JSON_OBJECT for N:1, or a literal null subquery when the
// relation didn't resolve against the catalog (documented degradation).
func embedSubquery(table *catalog.Table, rel selectplan.Node) (string, error) {
	if rel.RelKind == selectplan.RelUnresolved {
		return "(SELECT NULL)", nil
	}

	child := rel.ChildTable
	objectExpr, err := buildJSONObject(child, rel)
	if err != nil {
		return "", err
	}

	switch rel.RelKind {
	case selectplan.RelOneToMany:
		// <child>.<fk> = <parent>.<parent-pk>
		cond := quoteIdent(child) + "." + quoteIdent(rel.FK.Column) + " = " + quoteIdent(table.Name) + "." + quoteIdent(rel.FK.RefColumn)
		return "(SELECT CAST(COALESCE(JSON_ARRAYAGG(" + objectExpr + "), '[]') AS JSON) FROM " +
			quoteIdent(child) + " WHERE " + cond + ")", nil
	case selectplan.RelManyToOne:
		// <child>.<pk> = <parent>.<fk>
		cond := quoteIdent(child) + "." + quoteIdent(rel.FK.RefColumn) + " = " + quoteIdent(table.Name) + "." + quoteIdent(rel.FK.Column)
		return "(SELECT " + objectExpr + " FROM " + quoteIdent(child) + " WHERE " + cond + ")", nil
	default:
		return "(SELECT NULL)", nil
	}
}

// buildJSONObject renders "JSON_OBJECT('col', `table`.`col`, …)" for
// childTableName's projection under rel's inner select tree, expanding
// nested relations recursively by the same column-list rules ColumnList
// applies at the top level — so embeddings pass through arbitrary depth.
func buildJSONObject(childTableName string, rel selectplan.Node) (string, error) {
	childCatalogTable := rel.ChildCatalogTable
	if childCatalogTable == nil {
		return "JSON_OBJECT()", nil
	}

	hasStar := len(rel.Children) == 0
	excluded := make(map[string]bool)
	var explicit []selectplan.Node
	var nested []selectplan.Node

	for _, n := range rel.Children {
		switch n.Kind {
		case selectplan.NodeStar:
			hasStar = true
		case selectplan.NodeExclusion:
			excluded[n.Name] = true
		case selectplan.NodeColumn:
			explicit = append(explicit, n)
		case selectplan.NodeRelation:
			nested = append(nested, n)
		}
	}

	var pairs []string

	if hasStar {
		for _, col := range childCatalogTable.Columns {
			if excluded[col.Name] {
				continue
			}
			pairs = append(pairs, "'"+col.Name+"', "+quoteIdent(childTableName)+"."+quoteIdent(col.Name))
		}
	}
	for _, n := range explicit {
		if childCatalogTable.Column(n.Name) == nil {
			continue
		}
		pairs = append(pairs, "'"+n.Name+"', "+quoteIdent(childTableName)+"."+quoteIdent(n.Name))
	}
	for _, n := range nested {
		sub, err := embedSubquery(childCatalogTable, n)
		if err != nil {
			return "", err
		}
		pairs = append(pairs, "'"+n.Name+"', "+sub)
	}

	if len(pairs) == 0 {
		return "", errs.New(errs.ErrKindInvalidInput, "embedded relation "+childTableName+" resolved to no columns")
	}
	return "JSON_OBJECT(" + strings.Join(pairs, ", ") + ")", nil
}
