// Package introspect reads database catalogs into schema.Database values.
// It extracts tables, columns, primary keys and foreign key references.
//
// SQLite is the primary target: every attached database of the connection
// becomes one schema.Database. PostgreSQL, MySQL and SQL Server catalogs are
// also supported, with one schema.Database per catalog schema.
//
// Basic usage:
//
//	db, err := introspect.OpenSQLite("app.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	databases, err := introspect.Databases(db,
//	    introspect.WithExcludeTables("goose_db_version"),
//	)
//
// For a server database:
//
//	databases, err := introspect.Databases(db,
//	    introspect.WithDialect(introspect.PostgreSQL),
//	    introspect.WithSchemas("public", "auth"),
//	)
//
// Extraction is read-only and all-or-nothing: on any failure no databases are
// returned. Errors wrap ErrConnect, ErrQuery or ErrDecode.
package introspect

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/lucasefe/lightmap/schema"
)

// Dialect identifies the catalog layout of a database.
type Dialect string

// Supported dialects.
const (
	SQLite     Dialect = "sqlite3"
	PostgreSQL Dialect = "postgres"
	MySQL      Dialect = "mysql"
	SQLServer  Dialect = "sqlserver"
)

// DialectForDriver returns the dialect read through a database/sql driver name.
func DialectForDriver(driver string) (Dialect, error) {
	switch driver {
	case "sqlite3", "sqlite":
		return SQLite, nil
	case "postgres", "pgx":
		return PostgreSQL, nil
	case "mysql":
		return MySQL, nil
	case "sqlserver", "mssql":
		return SQLServer, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}
}

// Source extracts the databases visible through a connection.
type Source interface {
	Databases() ([]schema.Database, error)
}

// NewSource returns the Source for the configured dialect.
func NewSource(db *sql.DB, opts ...Option) (Source, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newSource(db, o)
}

func newSource(db *sql.DB, o *options) (Source, error) {
	c := catalog{db: db}

	switch o.dialect {
	case SQLite:
		return &sqliteSource{catalog: c, logger: o.logger}, nil
	case PostgreSQL:
		return newServerSource(c, postgresQueries, o), nil
	case MySQL:
		return newServerSource(c, mysqlQueries, o), nil
	case SQLServer:
		return newServerSource(c, sqlserverQueries, o), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, o.dialect)
	}
}

// Databases introspects db and returns one schema.Database per attached
// database or selected schema. Use options to customize which schemas and
// tables to include.
func Databases(db *sql.DB, opts ...Option) ([]schema.Database, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	source, err := newSource(db, o)
	if err != nil {
		return nil, err
	}

	result, err := source.Databases()
	if err != nil {
		return nil, err
	}

	if len(o.excludeTables) > 0 {
		result = schema.FilterTables(result, o.excludeTables)
	}

	for _, d := range schema.DanglingReferences(result) {
		o.logger.Warn("reference to unknown table",
			zap.String("database", d.Database),
			zap.String("source", d.Reference.Source),
			zap.String("sink", d.Reference.Sink),
			zap.String("closest", d.Suggestion),
		)
	}

	return result, nil
}
