package selectplan

import "github.com/GreicodexJM/MyREST/internal/catalog"

// resolveRelation finds the foreign key connecting table and node.Target,
// classifying the embedding as 1:N (the child owns the FK) or N:1 (the
// parent owns the FK). Resolution is structural only: the node's alias
// stays node.Target regardless of any hint — "hints never appear in the
// output alias".
func resolveRelation(node *Node, table string, cat *catalog.Catalog) {
	node.ChildTable = node.Target

	parent := cat.Table(table)
	child := cat.Table(node.Target)
	if parent == nil || child == nil {
		node.RelKind = RelUnresolved
		return
	}
	node.ChildCatalogTable = child

	// N:1 — this table owns a FK pointing at the target.
	for _, fk := range parent.ForeignKeys {
		if fk.RefTable != node.Target {
			continue
		}
		if node.Hint != "" && node.Hint != fk.Column {
			continue
		}
		node.RelKind = RelManyToOne
		node.FK = fk
		return
	}

	// 1:N — the target owns a FK pointing back at this table.
	for _, fk := range child.ForeignKeys {
		if fk.RefTable != table {
			continue
		}
		if node.Hint != "" && node.Hint != fk.Column {
			continue
		}
		node.RelKind = RelOneToMany
		node.FK = fk
		return
	}

	node.RelKind = RelUnresolved
}
