package sqlcompiler

import (
	"fmt"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
	"github.com/GreicodexJM/MyREST/internal/errs"
)

// UpdateStatement builds an UPDATE of table's set columns, constrained by
// where (which already carries any RLS predicate AND'd in). set's JSON
// columns are pre-serialized the same way InsertStatement's are.
func UpdateStatement(table *catalog.Table, set map[string]any, where Fragment) (string, []any, error) {
	if len(set) == 0 {
		return "", nil, errs.New(errs.ErrKindInvalidInput, "update requires at least one column")
	}

	columns := make([]string, 0, len(set))
	for k := range set {
		columns = append(columns, k)
	}

	assignments := make([]string, len(columns))
	args := make([]any, 0, len(columns)+len(where.Args))
	for i, c := range columns {
		col := table.Column(c)
		val, err := serializeValue(col, set[c])
		if err != nil {
			return "", nil, errs.Wrap(errs.ErrKindInvalidInput, "failed to serialize column "+c, err)
		}
		assignments[i] = quoteIdent(c) + " = ?"
		args = append(args, val)
	}
	args = append(args, where.Args...)

	stmt := fmt.Sprintf("UPDATE %s SET %s", quoteIdent(table.Name), strings.Join(assignments, ", "))
	if where.SQL != "" {
		stmt += " " + where.SQL
	}
	return stmt, args, nil
}
