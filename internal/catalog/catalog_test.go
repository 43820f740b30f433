package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Column(t *testing.T) {
	tbl := &Table{
		Name: "customers",
		Columns: []*Column{
			{Name: "customerNumber", IsPrimaryKey: true},
			{Name: "customerName"},
		},
	}

	assert.NotNil(t, tbl.Column("customerNumber"))
	assert.Nil(t, tbl.Column("doesNotExist"))
	assert.Equal(t, []string{"customerNumber", "customerName"}, tbl.ColumnNames())
}

func TestCatalog_TableNames_ExcludesPolicyStore(t *testing.T) {
	c := &Catalog{
		Tables: map[string]*Table{
			"customers":      {Name: "customers"},
			"orders":         {Name: "orders"},
			"gateway_policy": {Name: "gateway_policy"},
		},
	}

	names := c.TableNames("gateway_policy")
	assert.ElementsMatch(t, []string{"customers", "orders"}, names)
}

func TestStore_SwapIsVisibleToLoad(t *testing.T) {
	var s Store
	assert.Nil(t, s.Load())

	c := &Catalog{Tables: map[string]*Table{"t": {Name: "t"}}}
	s.Swap(c)

	assert.Same(t, c, s.Load())
}

func TestNewSerializer_JSONColumnMarshals(t *testing.T) {
	ser := newSerializer("json")

	out, err := ser(map[string]any{"a": 1})
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(`{"a":1}`, out)

	out, err = ser(nil)
	assert.NoError(err)
	assert.Nil(out)
}

func TestNewSerializer_NonJSONColumnPassesThrough(t *testing.T) {
	ser := newSerializer("varchar")

	out, err := ser("hello")
	assert.NoError(t, err)
	assert.Equal(t, "hello", out)
}
