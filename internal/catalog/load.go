package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/GreicodexJM/MyREST/internal/errs"
)

// tablesColumnsKeysQuery is the first of the two information-schema queries
// the contract calls for: columns joined to key_column_usage so primary-key
// and foreign-key membership arrive in the same pass as the column list.
const tablesColumnsKeysQuery = `
	SELECT
		c.table_name,
		c.column_name,
		c.ordinal_position,
		c.data_type,
		c.column_type,
		c.is_nullable = 'YES' AS nullable,
		c.column_default,
		(c.column_key = 'PRI') AS is_primary_key,
		c.extra,
		kcu.constraint_name,
		kcu.referenced_table_name,
		kcu.referenced_column_name
	FROM information_schema.columns c
	LEFT JOIN information_schema.key_column_usage kcu
		ON kcu.table_schema = c.table_schema
		AND kcu.table_name = c.table_name
		AND kcu.column_name = c.column_name
		AND kcu.referenced_table_name IS NOT NULL
	WHERE c.table_schema = ?
	ORDER BY c.table_name, c.ordinal_position`

// routinesParametersQuery is the second: stored routines joined to their
// declared parameters.
const routinesParametersQuery = `
	SELECT
		r.routine_name,
		r.routine_type,
		p.parameter_name,
		p.dtd_identifier,
		p.parameter_mode,
		p.ordinal_position
	FROM information_schema.routines r
	LEFT JOIN information_schema.parameters p
		ON p.specific_schema = r.routine_schema
		AND p.specific_name = r.specific_name
	WHERE r.routine_schema = ?
	ORDER BY r.routine_name, p.ordinal_position`

// LoadCatalog executes the two information-schema queries and builds the
// in-memory catalog for databaseName. It must complete before any handler
// serves traffic. Failure on the tables/columns/keys query is fatal
// (*errs.Error with ErrKindCatalogError); failure on the routine query is
// logged by the caller and non-fatal — routines are simply left empty.
func LoadCatalog(ctx context.Context, db *sql.DB, databaseName string) (*Catalog, error) {
	tables, err := loadTablesColumnsKeys(ctx, db, databaseName)
	if err != nil {
		return nil, errs.Wrap(errs.ErrKindCatalogError, "failed to load tables, columns, and keys", err)
	}
	if len(tables) == 0 {
		return nil, errs.New(errs.ErrKindCatalogError, fmt.Sprintf("database %q has no tables", databaseName))
	}

	routines, routineErr := loadRoutines(ctx, db, databaseName)
	if routineErr != nil {
		// Non-fatal: the catalog loads with an empty routine set and the
		// caller logs routineErr.
		routines = map[string]*Routine{}
	}

	return &Catalog{
		DatabaseName: databaseName,
		Tables:       tables,
		Routines:     routines,
	}, routineErr
}

func loadTablesColumnsKeys(ctx context.Context, db *sql.DB, schema string) (map[string]*Table, error) {
	rows, err := db.QueryContext(ctx, tablesColumnsKeysQuery, schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make(map[string]*Table)
	// foreign keys land on their owning table but the referenced side is
	// only known once the loop finishes scanning the owning column's row.
	for rows.Next() {
		var (
			tableName    string
			columnName   string
			ordinal      int
			dataType     string
			columnType   string
			nullable     bool
			defaultVal   *string
			isPrimaryKey bool
			extra        string
			constraint   *string
			refTable     *string
			refColumn    *string
		)
		if err := rows.Scan(&tableName, &columnName, &ordinal, &dataType, &columnType,
			&nullable, &defaultVal, &isPrimaryKey, &extra, &constraint, &refTable, &refColumn); err != nil {
			return nil, fmt.Errorf("scan column row: %w", err)
		}

		t, ok := tables[tableName]
		if !ok {
			t = &Table{Name: tableName}
			tables[tableName] = t
		}

		col := t.Column(columnName)
		if col == nil {
			col = &Column{
				Name:            columnName,
				Ordinal:         ordinal,
				DataType:        strings.ToLower(dataType),
				RawType:         columnType,
				Nullable:        nullable,
				Default:         defaultVal,
				IsPrimaryKey:    isPrimaryKey,
				IsAutoIncrement: strings.Contains(strings.ToLower(extra), "auto_increment"),
				Serialize:       newSerializer(strings.ToLower(dataType)),
			}
			t.Columns = append(t.Columns, col)
			if isPrimaryKey {
				t.PrimaryKey = append(t.PrimaryKey, columnName)
			}
		}

		if refTable != nil && refColumn != nil {
			name := columnName
			if constraint != nil {
				name = *constraint
			}
			t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
				Name:      name,
				Table:     tableName,
				Column:    columnName,
				RefTable:  *refTable,
				RefColumn: *refColumn,
				DataType:  col.DataType,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tables, nil
}

func loadRoutines(ctx context.Context, db *sql.DB, schema string) (map[string]*Routine, error) {
	rows, err := db.QueryContext(ctx, routinesParametersQuery, schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines := make(map[string]*Routine)
	for rows.Next() {
		var (
			routineName string
			routineType string
			paramName   *string
			paramType   *string
			paramMode   *string
			position    *int
		)
		if err := rows.Scan(&routineName, &routineType, &paramName, &paramType, &paramMode, &position); err != nil {
			return nil, fmt.Errorf("scan routine row: %w", err)
		}

		r, ok := routines[routineName]
		if !ok {
			kind := RoutineProcedure
			if strings.EqualFold(routineType, "FUNCTION") {
				kind = RoutineFunction
			}
			r = &Routine{Name: routineName, Kind: kind}
			routines[routineName] = r
		}

		if paramName == nil {
			continue // routine with no parameters
		}
		mode := ParamIn
		if paramMode != nil {
			switch strings.ToUpper(*paramMode) {
			case "OUT":
				mode = ParamOut
			case "INOUT":
				mode = ParamInOut
			}
		}
		sqlType := ""
		if paramType != nil {
			sqlType = *paramType
		}
		pos := 0
		if position != nil {
			pos = *position
		}
		r.Parameters = append(r.Parameters, RoutineParam{
			Name:     *paramName,
			SQLType:  sqlType,
			Mode:     mode,
			Position: pos,
		})
	}
	return routines, rows.Err()
}
