// Package catalog is the gateway's schema catalog: the authoritative,
// read-only picture of the database published once at startup and consulted
// by every request the planner and compiler handle.
package catalog

import "encoding/json"

// Column describes one column of a table, including how to serialize a
// bound value for it — this replaces the string-matching "is this a JSON
// column" helper the teacher's query layer used with a per-column function,
// computed once at load time.
type Column struct {
	Name            string
	Ordinal         int
	DataType        string // information_schema.columns.data_type, lowercased
	RawType         string // information_schema.columns.column_type
	IsPrimaryKey    bool
	IsAutoIncrement bool // information_schema.columns.extra contains "auto_increment"
	Nullable        bool
	Default         *string
	Serialize       func(any) (any, error)
}

// ForeignKey describes one foreign key: the owning table/column and the
// table/column it references.
type ForeignKey struct {
	Name       string
	Table      string
	Column     string
	RefTable   string
	RefColumn  string
	DataType   string
}

// RoutineParamMode is the direction of a stored routine parameter.
type RoutineParamMode string

const (
	ParamIn    RoutineParamMode = "in"
	ParamOut   RoutineParamMode = "out"
	ParamInOut RoutineParamMode = "inout"
)

// RoutineParam describes one parameter of a stored routine.
type RoutineParam struct {
	Name     string
	SQLType  string
	Mode     RoutineParamMode
	Position int
}

// RoutineKind distinguishes stored procedures from stored functions.
type RoutineKind string

const (
	RoutineProcedure RoutineKind = "procedure"
	RoutineFunction  RoutineKind = "function"
)

// Routine describes one stored procedure or function.
type Routine struct {
	Name       string
	Kind       RoutineKind
	Parameters []RoutineParam // ordered by declared position
}

// Table describes one base table: its columns in declared order, the subset
// that form the primary key, and every foreign key it owns.
type Table struct {
	Name        string
	Columns     []*Column
	PrimaryKey  []string // column names, declared order
	ForeignKeys []*ForeignKey
}

// Column looks up a column by name, or nil if it doesn't exist.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ColumnNames returns every column name in declared order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// newSerializer returns the per-column serialization function for a
// declared information_schema data type. JSON columns get a marshal-backed
// serializer; everything else passes the value through unchanged.
func newSerializer(dataType string) func(any) (any, error) {
	if dataType == "json" {
		return func(v any) (any, error) {
			if v == nil {
				return nil, nil
			}
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			return string(b), nil
		}
	}
	return func(v any) (any, error) { return v, nil }
}
