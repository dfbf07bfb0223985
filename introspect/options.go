package introspect

import "go.uber.org/zap"

// Option configures introspection behavior.
type Option func(*options)

type options struct {
	dialect           Dialect
	schemas           []string
	excludeTables     []string
	includeAllSchemas bool
	typeMapper        TypeMapper
	typeMappings      map[string]string
	logger            *zap.Logger
}

func defaultOptions() *options {
	return &options{
		dialect: SQLite,
		logger:  zap.NewNop(),
	}
}

// WithDialect selects the catalog to read. Defaults to SQLite.
func WithDialect(dialect Dialect) Option {
	return func(o *options) {
		o.dialect = dialect
	}
}

// WithSchemas specifies which schemas to introspect on server databases.
// Each schema becomes one Database. If not specified, PostgreSQL uses
// "public" and MySQL and SQL Server use the connection's current schema.
// SQLite ignores this option and reads every attached database.
func WithSchemas(schemas ...string) Option {
	return func(o *options) {
		o.schemas = schemas
	}
}

// WithExcludeTables specifies tables to exclude from introspection.
func WithExcludeTables(tables ...string) Option {
	return func(o *options) {
		o.excludeTables = tables
	}
}

// WithAllSchemas includes all non-system schemas in the introspection.
// This overrides WithSchemas.
func WithAllSchemas() Option {
	return func(o *options) {
		o.includeAllSchemas = true
	}
}

// WithTypeMapper sets a custom type mapper for server databases.
// If not specified, a dialect-specific mapper is used. SQLite types are
// always shown as declared.
func WithTypeMapper(mapper TypeMapper) Option {
	return func(o *options) {
		o.typeMapper = mapper
	}
}

// WithTypeMappings provides custom type mappings as a simple map.
// This is a convenience alternative to WithTypeMapper for simple use cases.
// Keys are catalog type names (case-insensitive), values are display types.
// It is ignored when WithTypeMapper is also given.
func WithTypeMappings(mappings map[string]string) Option {
	return func(o *options) {
		o.typeMappings = mappings
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// mapper returns the configured TypeMapper or the dialect default.
func (o *options) mapper() TypeMapper {
	if o.typeMapper != nil {
		return o.typeMapper
	}
	if o.dialect == PostgreSQL {
		return NewPostgreSQLTypeMapper(o.typeMappings)
	}
	return NewGenericTypeMapper(o.typeMappings)
}
