package selectplan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GreicodexJM/MyREST/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Tables: map[string]*catalog.Table{
			"customers": {
				Name:    "customers",
				Columns: []*catalog.Column{{Name: "customerNumber", IsPrimaryKey: true}, {Name: "customerName"}},
			},
			"orders": {
				Name:    "orders",
				Columns: []*catalog.Column{{Name: "orderNumber", IsPrimaryKey: true}, {Name: "customerNumber"}, {Name: "status"}},
				ForeignKeys: []*catalog.ForeignKey{
					{Name: "orders_ibfk_1", Table: "orders", Column: "customerNumber", RefTable: "customers", RefColumn: "customerNumber"},
				},
			},
		},
	}
}

func TestParse_EmptyExprYieldsNilTree(t *testing.T) {
	nodes, err := Parse("customers", "", testCatalog())
	require.NoError(t, err)
	assert.Nil(t, nodes)
}

func TestParse_PlainColumnsAndStar(t *testing.T) {
	nodes, err := Parse("customers", "customerNumber,*,-customerName", testCatalog())
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	assert.Equal(t, NodeColumn, nodes[0].Kind)
	assert.Equal(t, "customerNumber", nodes[0].Name)
	assert.Equal(t, NodeStar, nodes[1].Kind)
	assert.Equal(t, NodeExclusion, nodes[2].Kind)
	assert.Equal(t, "customerName", nodes[2].Name)
}

func TestParse_OneToManyRelation(t *testing.T) {
	nodes, err := Parse("customers", "customerNumber,orders(orderNumber,status)", testCatalog())
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	rel := nodes[1]
	assert.Equal(t, NodeRelation, rel.Kind)
	assert.Equal(t, "orders", rel.Name)
	assert.Equal(t, RelOneToMany, rel.RelKind)
	require.NotNil(t, rel.FK)
	assert.Equal(t, "customerNumber", rel.FK.Column)
	require.Len(t, rel.Children, 2)
	assert.Equal(t, "orderNumber", rel.Children[0].Name)
}

func TestParse_ManyToOneRelation(t *testing.T) {
	nodes, err := Parse("orders", "orderNumber,customers(customerNumber,customerName)", testCatalog())
	require.NoError(t, err)
	rel := nodes[1]
	assert.Equal(t, RelManyToOne, rel.RelKind)
	require.NotNil(t, rel.FK)
}

func TestParse_UnresolvedRelationWhenNoFK(t *testing.T) {
	cat := testCatalog()
	cat.Tables["unrelated"] = &catalog.Table{Name: "unrelated"}
	nodes, err := Parse("customers", "unrelated(x)", cat)
	require.NoError(t, err)
	assert.Equal(t, RelUnresolved, nodes[0].RelKind)
	assert.Nil(t, nodes[0].FK)
}

func TestParse_HintDisambiguatesFK(t *testing.T) {
	cat := testCatalog()
	cat.Tables["orders"].ForeignKeys = append(cat.Tables["orders"].ForeignKeys, &catalog.ForeignKey{
		Name: "orders_ibfk_2", Table: "orders", Column: "salesRepCustomerNumber", RefTable: "customers", RefColumn: "customerNumber",
	})

	nodes, err := Parse("customers", "salesRepCustomerNumber:orders(orderNumber)", cat)
	require.NoError(t, err)
	rel := nodes[0]
	require.NotNil(t, rel.FK)
	assert.Equal(t, "salesRepCustomerNumber", rel.FK.Column)
	assert.Equal(t, "orders", rel.Name, "hint never appears in the output alias")
}

func TestParse_NestedDepthRecursion(t *testing.T) {
	cat := testCatalog()
	nodes, err := Parse("customers", "orders(orderNumber,customers(customerName))", cat)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	inner := nodes[0].Children[1]
	assert.Equal(t, NodeRelation, inner.Kind)
	assert.Equal(t, RelManyToOne, inner.RelKind)
}

func TestParse_UnbalancedParensRejected(t *testing.T) {
	_, err := Parse("customers", "orders(orderNumber", testCatalog())
	assert.Error(t, err)
}

func TestParse_ExcessiveNestingRejected(t *testing.T) {
	expr := "orders(" + strings.Repeat("customers(orders(", MaxSelectDepth) + "x" + strings.Repeat(")", 2*MaxSelectDepth) + ")"
	_, err := Parse("customers", expr, testCatalog())
	assert.Error(t, err)
}
