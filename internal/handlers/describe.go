package handlers

import (
	"context"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

// describeColumn is the JSON projection of one catalog.Column.
type describeColumn struct {
	Name         string  `json:"name"`
	DataType     string  `json:"dataType"`
	RawType      string  `json:"rawType"`
	IsPrimaryKey bool    `json:"isPrimaryKey"`
	Nullable     bool    `json:"nullable"`
	Default      *string `json:"default,omitempty"`
}

// describeForeignKey is the JSON projection of one catalog.ForeignKey.
type describeForeignKey struct {
	Column    string `json:"column"`
	RefTable  string `json:"refTable"`
	RefColumn string `json:"refColumn"`
}

// describeTable is the JSON body Describe returns.
type describeTable struct {
	Name        string                `json:"name"`
	Columns     []describeColumn      `json:"columns"`
	PrimaryKey  []string              `json:"primaryKey"`
	ForeignKeys []describeForeignKey  `json:"foreignKeys"`
}

// Describe serves GET /<table>/describe: a JSON projection of the catalog's
// view of the table, the only natural meaning of "describe a resource"
// given the rest of the surface is introspection-shaped.
func Describe(ctx context.Context, h *Context, table string) (Result, error) {
	cat := h.cat()
	t := cat.Table(table)
	if t == nil {
		return Result{}, errs.New(errs.ErrKindNotFound, "unknown table "+table)
	}

	out := describeTable{
		Name:       t.Name,
		PrimaryKey: t.PrimaryKey,
	}
	for _, c := range t.Columns {
		out.Columns = append(out.Columns, describeColumn{
			Name:         c.Name,
			DataType:     c.DataType,
			RawType:      c.RawType,
			IsPrimaryKey: c.IsPrimaryKey,
			Nullable:     c.Nullable,
			Default:      c.Default,
		})
	}
	for _, fk := range t.ForeignKeys {
		out.ForeignKeys = append(out.ForeignKeys, describeForeignKey{
			Column:    fk.Column,
			RefTable:  fk.RefTable,
			RefColumn: fk.RefColumn,
		})
	}

	return Result{Status: 200, Body: out}, nil
}
