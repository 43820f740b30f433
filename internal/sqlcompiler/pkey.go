package sqlcompiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// pkSeparator joins composite primary-key components in a URL :id segment.
const pkSeparator = "___"

// PKPredicate builds the `col = ? AND …` fragment identifying one row by
// its (possibly composite) primary key, coercing each component to the
// Go type its catalog column declares. Returns a *errs.Error with
// ErrKindCompositeKeyError when the component count doesn't match the
// table's PK arity.
func PKPredicate(table *catalog.Table, id string) (Fragment, error) {
	components := strings.Split(id, pkSeparator)
	if len(components) != len(table.PrimaryKey) {
		return Fragment{}, errs.New(errs.ErrKindCompositeKeyError,
			fmt.Sprintf("expected %d primary key component(s), got %d", len(table.PrimaryKey), len(components)))
	}

	parts := make([]string, len(components))
	args := make([]any, len(components))
	for i, raw := range components {
		col := table.Column(table.PrimaryKey[i])
		val, err := typedValue(col, raw)
		if err != nil {
			return Fragment{}, errs.Wrap(errs.ErrKindCompositeKeyError, "invalid primary key component "+raw, err)
		}
		parts[i] = quoteIdent(table.PrimaryKey[i]) + " = ?"
		args[i] = val
	}

	return Fragment{SQL: "WHERE " + strings.Join(parts, " AND "), Args: args}, nil
}

// FKPredicate builds the `<child-fk> = ?` fragment selecting a child
// table's rows belonging to parentID, for the nested-list (relational)
// operation.
func FKPredicate(fk *catalog.ForeignKey, parentID string) (Fragment, error) {
	val, err := typedValueForType(fk.DataType, parentID)
	if err != nil {
		return Fragment{}, errs.Wrap(errs.ErrKindInvalidInput, "invalid parent id", err)
	}
	return Fragment{SQL: "WHERE " + quoteIdent(fk.Column) + " = ?", Args: []any{val}}, nil
}

func typedValue(col *catalog.Column, raw string) (any, error) {
	if col == nil {
		return raw, nil
	}
	return typedValueForType(col.DataType, raw)
}

// typedValueForType coerces raw into the Go value matching a declared
// information_schema data type: integers and floats parse, dates and
// everything else pass through as strings — the driver and MySQL's own
// coercion rules take it from there.
func typedValueForType(dataType, raw string) (any, error) {
	switch {
	case strings.Contains(dataType, "int"):
		return strconv.ParseInt(raw, 10, 64)
	case strings.Contains(dataType, "decimal"), strings.Contains(dataType, "float"), strings.Contains(dataType, "double"), strings.Contains(dataType, "numeric"):
		return strconv.ParseFloat(raw, 64)
	default:
		return raw, nil
	}
}
