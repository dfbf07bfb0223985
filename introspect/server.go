package introspect

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/lucasefe/lightmap/schema"
)

// serverQueries holds the catalog queries of a server database. Every query
// takes the schema name as its only parameter unless noted otherwise.
type serverQueries struct {
	// defaultSchemas is used when no schemas are configured; empty means
	// currentSchema is asked instead.
	defaultSchemas []string
	// currentSchema returns the connection's default schema. No parameters.
	currentSchema string
	// allSchemas lists every non-system schema. No parameters.
	allSchemas string
	// path returns an identifier for the database server or catalog. No parameters.
	path string
	// tables returns table names.
	tables string
	// columns takes the schema and table name and returns, per column:
	// ordinal (1-based), name, data type, udt name, character length,
	// numeric precision, numeric scale, nullable ("YES"/"NO"), default and
	// primary key flag (0/1).
	columns string
	// references returns (source table, referenced table) per foreign key column.
	references string
}

// serverSource reads information_schema style catalogs.
type serverSource struct {
	catalog
	queries           serverQueries
	schemas           []string
	includeAllSchemas bool
	mapper            TypeMapper
	logger            *zap.Logger
}

func newServerSource(c catalog, q serverQueries, o *options) *serverSource {
	return &serverSource{
		catalog:           c,
		queries:           q,
		schemas:           o.schemas,
		includeAllSchemas: o.includeAllSchemas,
		mapper:            o.mapper(),
		logger:            o.logger,
	}
}

func (s *serverSource) Databases() ([]schema.Database, error) {
	schemaNames, err := s.schemaNames()
	if err != nil {
		return nil, fmt.Errorf("failed to get schemas: %w", err)
	}

	path, err := s.queryString(s.queries.path)
	if err != nil {
		return nil, fmt.Errorf("failed to get database name: %w", err)
	}

	var result []schema.Database
	for _, schemaName := range schemaNames {
		tables, err := s.tables(schemaName)
		if err != nil {
			return nil, fmt.Errorf("failed to get tables for schema %s: %w", schemaName, err)
		}

		references, err := s.references(schemaName)
		if err != nil {
			return nil, fmt.Errorf("failed to get references for schema %s: %w", schemaName, err)
		}

		s.logger.Debug("introspected schema",
			zap.String("schema", schemaName),
			zap.String("database", path),
			zap.Int("tables", len(tables)),
			zap.Int("references", len(references)),
		)

		result = append(result, schema.Database{
			Name:       schemaName,
			Path:       path,
			Tables:     tables,
			References: references,
		})
	}

	return result, nil
}

func (s *serverSource) schemaNames() ([]string, error) {
	if s.includeAllSchemas {
		var schemas []string
		err := s.query(s.queries.allSchemas, nil, func(rows *sql.Rows) error {
			var name string
			if err := rows.Scan(&name); err != nil {
				return err
			}
			schemas = append(schemas, name)
			return nil
		})
		return schemas, err
	}

	if len(s.schemas) > 0 {
		return s.schemas, nil
	}
	if len(s.queries.defaultSchemas) > 0 {
		return s.queries.defaultSchemas, nil
	}

	current, err := s.queryString(s.queries.currentSchema)
	if err != nil {
		return nil, err
	}
	if current == "" {
		return nil, fmt.Errorf("%w: connection has no current schema", ErrDecode)
	}
	return []string{current}, nil
}

func (s *serverSource) tables(schemaName string) ([]schema.Table, error) {
	var names []string
	err := s.query(s.queries.tables, []any{schemaName}, func(rows *sql.Rows) error {
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
		columns, err := s.columns(schemaName, name)
		if err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s.%s: %w", schemaName, name, err)
		}
		tables = append(tables, schema.Table{Name: name, Columns: columns})
	}

	return tables, nil
}

func (s *serverSource) columns(schemaName, tableName string) ([]schema.Column, error) {
	var columns []schema.Column
	err := s.query(s.queries.columns, []any{schemaName, tableName}, func(rows *sql.Rows) error {
		var col schema.Column
		var ordinal int
		var dataType, udtName, isNullable string
		var charMaxLength, numericPrecision, numericScale sql.NullInt64
		var columnDefault sql.NullString
		var isPrimaryKey int

		err := rows.Scan(
			&ordinal,
			&col.Name,
			&dataType,
			&udtName,
			&charMaxLength,
			&numericPrecision,
			&numericScale,
			&isNullable,
			&columnDefault,
			&isPrimaryKey,
		)
		if err != nil {
			return err
		}

		col.ID = ordinal - 1
		col.Datatype = s.mapper.MapType(dataType, udtName, charMaxLength, numericPrecision, numericScale)
		col.Required = isNullable != "YES"
		col.PrimaryKey = isPrimaryKey != 0
		if columnDefault.Valid {
			col.DefaultValue = &columnDefault.String
		}

		columns = append(columns, col)
		return nil
	})

	return columns, err
}

func (s *serverSource) references(schemaName string) ([]schema.Reference, error) {
	var refs []schema.Reference
	err := s.query(s.queries.references, []any{schemaName}, func(rows *sql.Rows) error {
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
