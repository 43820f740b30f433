package sqlcompiler

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/queryparam"
)

// OrderByClause renders order as "ORDER BY …", or "" when order is empty.
func OrderByClause(order []queryparam.OrderTerm) string {
	if len(order) == 0 {
		return ""
	}
	parts := make([]string, len(order))
	for i, o := range order {
		dir := "ASC"
		if o.Direction == queryparam.Desc {
			dir = "DESC"
		}
		parts[i] = quoteIdent(o.Column) + " " + dir
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

// DefaultGroupByOrder is the default ordering groupby applies when the
// caller specified none: highest count first.
const DefaultGroupByOrder = "ORDER BY `count` DESC"
