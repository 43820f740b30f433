package sqlcompiler

import (
	"strings"

	"github.com/GreicodexJM/MyREST/internal/catalog"
)

// RPCStatement builds the invocation for routine: CALL name(?, …) for a
// procedure, SELECT name(?, …) AS result for a function. Parameters are
// bound in the order of routine.Parameters, which the catalog keeps sorted
// by declared position; any parameter missing from values binds SQL NULL.
func RPCStatement(routine *catalog.Routine, values map[string]any) (string, []any) {
	placeholders := make([]string, len(routine.Parameters))
	args := make([]any, len(routine.Parameters))
	for i, p := range routine.Parameters {
		placeholders[i] = "?"
		if v, ok := values[p.Name]; ok {
			args[i] = v
		} else {
			args[i] = nil
		}
	}

	argList := strings.Join(placeholders, ", ")
	if routine.Kind == catalog.RoutineFunction {
		return "SELECT " + quoteIdent(routine.Name) + "(" + argList + ") AS result", args
	}
	return "CALL " + quoteIdent(routine.Name) + "(" + argList + ")", args
}
