package introspect

import (
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lucasefe/lightmap/schema"
)

// sqliteSource reads the catalog of every database attached to a SQLite connection.
type sqliteSource struct {
	catalog
	logger *zap.Logger
}

func (s *sqliteSource) Databases() ([]schema.Database, error) {
	type attached struct {
		name string
		path string
	}

	var list []attached
	err := s.query(`SELECT name, file FROM pragma_database_list`, nil, func(rows *sql.Rows) error {
		var a attached
		var file sql.NullString
		if err := rows.Scan(&a.name, &file); err != nil {
			return err
		}
		a.path = file.String
		list = append(list, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list databases: %w", err)
	}

	var result []schema.Database
	for _, a := range list {
		tables, err := s.tables(a.name)
		if err != nil {
			return nil, fmt.Errorf("failed to get tables for database %s: %w", a.name, err)
		}

		references, err := s.references(a.name)
		if err != nil {
			return nil, fmt.Errorf("failed to get references for database %s: %w", a.name, err)
		}

		s.logger.Debug("introspected database",
			zap.String("database", a.name),
			zap.String("path", a.path),
			zap.Int("tables", len(tables)),
			zap.Int("references", len(references)),
		)

		result = append(result, schema.Database{
			Name:       a.name,
			Path:       a.path,
			Tables:     tables,
			References: references,
		})
	}

	return result, nil
}

// tables lists user tables. Tables the engine maintains itself, such as
// sqlite_sequence and sqlite_stat1, are never returned.
func (s *sqliteSource) tables(dbName string) ([]schema.Table, error) {
	query := fmt.Sprintf(`
		SELECT name
		FROM %s.sqlite_master
		WHERE type = 'table'
			AND name NOT LIKE 'sqlite\_%%' ESCAPE '\'
	`, quoteIdentifier(dbName))

	var names []string
	err := s.query(query, nil, func(rows *sql.Rows) error {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	tables := make([]schema.Table, 0, len(names))
	for _, name := range names {
		columns, err := s.columns(dbName, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s.%s: %w", dbName, name, err)
		}
		tables = append(tables, schema.Table{Name: name, Columns: columns})
	}

	return tables, nil
}

func (s *sqliteSource) columns(dbName, tableName string) ([]schema.Column, error) {
	query := `
		SELECT cid, name, type, "notnull", dflt_value, pk
		FROM pragma_table_info(?, ?)
		ORDER BY cid
	`

	var columns []schema.Column
	err := s.query(query, []any{tableName, dbName}, func(rows *sql.Rows) error {
		var col schema.Column
		var datatype, defaultValue sql.NullString
		var notNull, pk int

		if err := rows.Scan(&col.ID, &col.Name, &datatype, &notNull, &defaultValue, &pk); err != nil {
			return err
		}

		col.Datatype = datatype.String
		col.Required = notNull != 0
		col.PrimaryKey = pk > 0
		if defaultValue.Valid {
			col.DefaultValue = &defaultValue.String
		}

		columns = append(columns, col)
		return nil
	})

	return columns, err
}

// references returns one Reference per distinct (table, referenced table)
// pair, ordered by table name and then by catalog order.
func (s *sqliteSource) references(dbName string) ([]schema.Reference, error) {
	query := fmt.Sprintf(`
		SELECT m.name, f."table"
		FROM %s.sqlite_master AS m
		JOIN pragma_foreign_key_list(m.name, ?) AS f
		WHERE m.type = 'table'
		ORDER BY m.name, f.id, f.seq
	`, quoteIdentifier(dbName))

	var refs []schema.Reference
	err := s.query(query, []any{dbName}, func(rows *sql.Rows) error {
		var ref schema.Reference
		if err := rows.Scan(&ref.Source, &ref.Sink); err != nil {
			return err
		}
		refs = append(refs, ref)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return collapseReferences(refs), nil
}

// collapseReferences keeps the first occurrence of every (source, sink) pair.
func collapseReferences(refs []schema.Reference) []schema.Reference {
	seen := make(map[schema.Reference]bool, len(refs))
	result := make([]schema.Reference, 0, len(refs))
	for _, ref := range refs {
		if seen[ref] {
			continue
		}
		seen[ref] = true
		result = append(result, ref)
	}
	return result
}

func quoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
