package sqlcompiler

import (
	"fmt"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/queryparam"
)

// WhereFromFilters composes the filter AST into a Fragment. An `is` filter
// is emitted as an IS literal, and an eq/neq filter whose value is null is
// short-circuited to IS NULL / IS NOT NULL (MySQL's grammar for IS does not
// accept a bound parameter); every other operator binds its value
// positionally.
func WhereFromFilters(filters []queryparam.Predicate) Fragment {
	if len(filters) == 0 {
		return Fragment{}
	}

	parts := make([]string, 0, len(filters))
	var args []any

	for _, p := range filters {
		col := quoteIdent(p.Column)
		switch p.Operator {
		case queryparam.OpIs:
			parts = append(parts, col+" IS "+isLiteral(p.Value))
		case queryparam.OpIn:
			values, _ := p.Value.([]any)
			placeholders := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
			parts = append(parts, fmt.Sprintf("%s IN (%s)", col, placeholders))
			args = append(args, values...)
		case queryparam.OpEq, queryparam.OpNeq:
			if p.Value == nil {
				if p.Operator == queryparam.OpEq {
					parts = append(parts, col+" IS NULL")
				} else {
					parts = append(parts, col+" IS NOT NULL")
				}
				continue
			}
			parts = append(parts, fmt.Sprintf("%s %s ?", col, p.Operator))
			args = append(args, p.Value)
		default:
			parts = append(parts, fmt.Sprintf("%s %s ?", col, p.Operator))
			args = append(args, p.Value)
		}
	}

	return Fragment{SQL: "WHERE " + strings.Join(parts, " AND "), Args: args}
}

// isLiteral renders the right-hand side of an IS predicate. MySQL only
// accepts NULL/TRUE/FALSE/UNKNOWN here, so this is emitted as a literal,
// never a bound parameter.
func isLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", val)
	}
}
