package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GreicodexJM/MyREST/internal/catalog"
)

func TestSplitFields(t *testing.T) {
	assert.Equal(t, []string{"status", "country"}, splitFields("status, country"))
	assert.Equal(t, []string{}, splitFields(""))
	assert.Equal(t, []string{"a"}, splitFields(" a , , "))
}

func TestExtractCount(t *testing.T) {
	n, ok := extractCount([]map[string]any{{"no_of_rows": int64(42)}})
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = extractCount(nil)
	assert.False(t, ok)

	_, ok = extractCount([]map[string]any{{"no_of_rows": "not a number"}})
	assert.False(t, ok)
}

func TestJoinColumns(t *testing.T) {
	assert.Equal(t, "`a`, `b`", joinColumns([]string{"`a`", "`b`"}))
	assert.Equal(t, "`a`", joinColumns([]string{"`a`"}))
}

func TestFindFK(t *testing.T) {
	child := &catalog.Table{
		Name: "orders",
		ForeignKeys: []*catalog.ForeignKey{
			{Column: "customerNumber", RefTable: "customers", RefColumn: "customerNumber"},
		},
	}
	fk := findFK(child, "customers")
	assert.NotNil(t, fk)
	assert.Equal(t, "customerNumber", fk.Column)

	assert.Nil(t, findFK(child, "ghost"))
}
