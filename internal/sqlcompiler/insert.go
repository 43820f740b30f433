package sqlcompiler

import (
	"fmt"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// UpsertMode selects how a duplicate-key collision on INSERT is resolved,
// driven by the Resolution request header.
type UpsertMode int

const (
	InsertPlain UpsertMode = iota
	InsertMergeDuplicates
	InsertIgnoreDuplicates
)

// InsertStatement builds a (possibly multi-row) INSERT for table. Every
// row's JSON-typed columns are pre-serialized via catalog.Column.Serialize
// before binding. Column order is taken from the first row; subsequent
// rows missing a column bind SQL NULL for it.
func InsertStatement(table *catalog.Table, rows []map[string]any, mode UpsertMode) (string, []any, error) {
	if len(rows) == 0 {
		return "", nil, errs.New(errs.ErrKindInvalidInput, "insert requires at least one row")
	}

	columns := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		columns = append(columns, k)
	}

	var args []any
	rowPlaceholders := make([]string, len(rows))
	for ri, row := range rows {
		placeholders := make([]string, len(columns))
		for ci, colName := range columns {
			col := table.Column(colName)
			val, err := serializeValue(col, row[colName])
			if err != nil {
				return "", nil, errs.Wrap(errs.ErrKindInvalidInput, "failed to serialize column "+colName, err)
			}
			placeholders[ci] = "?"
			args = append(args, val)
		}
		rowPlaceholders[ri] = "(" + strings.Join(placeholders, ", ") + ")"
	}

	quotedCols := make([]string, len(columns))
	for i, c := range columns {
		quotedCols[i] = quoteIdent(c)
	}

	verb := "INSERT INTO"
	if mode == InsertIgnoreDuplicates {
		verb = "INSERT IGNORE INTO"
	}

	stmt := fmt.Sprintf("%s %s (%s) VALUES %s", verb, quoteIdent(table.Name),
		strings.Join(quotedCols, ", "), strings.Join(rowPlaceholders, ", "))

	if mode == InsertMergeDuplicates {
		updates := make([]string, 0, len(columns))
		for _, c := range columns {
			if isPrimaryKeyColumn(table, c) {
				continue
			}
			updates = append(updates, fmt.Sprintf("%s = VALUES(%s)", quoteIdent(c), quoteIdent(c)))
		}
		if len(updates) > 0 {
			stmt += " ON DUPLICATE KEY UPDATE " + strings.Join(updates, ", ")
		}
	}

	return stmt, args, nil
}

func isPrimaryKeyColumn(table *catalog.Table, name string) bool {
	for _, pk := range table.PrimaryKey {
		if pk == name {
			return true
		}
	}
	return false
}

func serializeValue(col *catalog.Column, v any) (any, error) {
	if col == nil || col.Serialize == nil {
		return v, nil
	}
	return col.Serialize(v)
}
