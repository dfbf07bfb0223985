package introspect

import (
	"database/sql"
	"fmt"
	"strings"
)

// TypeMapper defines the interface for converting catalog column types to the
// datatype shown in a table label. Implement this interface to customize how
// types are displayed.
type TypeMapper interface {
	// MapType converts a catalog column type to a display string.
	// dataType is the base data type (e.g., "integer", "character varying")
	// udtName is the underlying type name for user-defined and array types
	// charMaxLength, numericPrecision, numericScale provide type modifiers
	MapType(dataType, udtName string, charMaxLength, numericPrecision, numericScale sql.NullInt64) string
}

// PostgreSQLTypeMapper provides PostgreSQL type display names.
// It supports custom type overrides via the CustomMappings field.
type PostgreSQLTypeMapper struct {
	// CustomMappings allows overriding default type mappings.
	// Keys are PostgreSQL type names (case-insensitive), values are display types.
	CustomMappings map[string]string
}

// NewPostgreSQLTypeMapper creates a new TypeMapper with optional custom mappings.
// If customMappings is nil, only default mappings are used.
//
// Example:
//
//	mapper := introspect.NewPostgreSQLTypeMapper(map[string]string{
//	    "citext": "varchar",
//	    "ltree":  "text",
//	})
func NewPostgreSQLTypeMapper(customMappings map[string]string) *PostgreSQLTypeMapper {
	return &PostgreSQLTypeMapper{CustomMappings: customMappings}
}

// MapType implements TypeMapper for PostgreSQL databases.
// It checks CustomMappings first, then falls back to default mappings.
func (m *PostgreSQLTypeMapper) MapType(dataType, udtName string, charMaxLength, numericPrecision, numericScale sql.NullInt64) string {
	if mapped, ok := lookupCustom(m.CustomMappings, dataType, udtName); ok {
		return mapped
	}
	return MapPostgreSQLType(dataType, udtName, charMaxLength, numericPrecision, numericScale)
}

// GenericTypeMapper shows catalog types as reported, adding the length or
// precision modifiers when the catalog provides them separately. It is used
// for MySQL and SQL Server.
type GenericTypeMapper struct {
	// CustomMappings allows overriding types by name (case-insensitive).
	CustomMappings map[string]string
}

// NewGenericTypeMapper creates a GenericTypeMapper with optional custom mappings.
func NewGenericTypeMapper(customMappings map[string]string) *GenericTypeMapper {
	return &GenericTypeMapper{CustomMappings: customMappings}
}

// MapType implements TypeMapper.
func (m *GenericTypeMapper) MapType(dataType, udtName string, charMaxLength, numericPrecision, numericScale sql.NullInt64) string {
	if mapped, ok := lookupCustom(m.CustomMappings, dataType, udtName); ok {
		return mapped
	}
	if strings.Contains(dataType, "(") {
		return dataType
	}

	switch strings.ToLower(dataType) {
	case "char", "varchar", "nchar", "nvarchar", "binary", "varbinary":
		return withLength(dataType, charMaxLength)
	case "decimal", "numeric":
		return withPrecision(dataType, numericPrecision, numericScale)
	}
	return dataType
}

func lookupCustom(mappings map[string]string, dataType, udtName string) (string, bool) {
	if mappings == nil {
		return "", false
	}
	if mapped, ok := mappings[strings.ToLower(dataType)]; ok {
		return mapped, true
	}
	if mapped, ok := mappings[strings.ToLower(udtName)]; ok {
		return mapped, true
	}
	return "", false
}

// postgresAliases maps PostgreSQL type names that need no modifiers to their
// display names. Both information_schema and udt spellings are listed.
var postgresAliases = map[string]string{
	"integer":                     "int",
	"int4":                        "int",
	"bigint":                      "bigint",
	"int8":                        "bigint",
	"smallint":                    "smallint",
	"int2":                        "smallint",
	"boolean":                     "boolean",
	"bool":                        "boolean",
	"text":                        "text",
	"real":                        "float",
	"float4":                      "float",
	"double precision":            "double",
	"float8":                      "double",
	"timestamp without time zone": "timestamp",
	"timestamp":                   "timestamp",
	"timestamp with time zone":    "timestamptz",
	"timestamptz":                 "timestamptz",
	"date":                        "date",
	"time without time zone":      "time",
	"time":                        "time",
	"time with time zone":         "timetz",
	"timetz":                      "timetz",
	"uuid":                        "uuid",
	"json":                        "json",
	"jsonb":                       "jsonb",
	"bytea":                       "binary",
}

// MapPostgreSQLType converts a PostgreSQL information_schema data type to a
// short display name. It handles varchar lengths, numeric precision/scale,
// enum and array types.
func MapPostgreSQLType(dataType, udtName string, charMaxLength, numericPrecision, numericScale sql.NullInt64) string {
	name := strings.ToLower(dataType)

	switch name {
	case "character varying", "varchar":
		return withLength("varchar", charMaxLength)
	case "character", "char":
		return withLength("char", charMaxLength)
	case "numeric", "decimal":
		return withPrecision("decimal", numericPrecision, numericScale)
	case "user-defined":
		return udtName
	case "array":
		return NormalizeArrayType(udtName)
	}

	if alias, ok := postgresAliases[name]; ok {
		return alias
	}
	return dataType
}

// withLength appends a character length; negative lengths mean unbounded.
func withLength(name string, length sql.NullInt64) string {
	if !length.Valid {
		return name
	}
	if length.Int64 < 0 {
		return name + "(max)"
	}
	return fmt.Sprintf("%s(%d)", name, length.Int64)
}

func withPrecision(name string, precision, scale sql.NullInt64) string {
	if !precision.Valid || !scale.Valid {
		return name
	}
	return fmt.Sprintf("%s(%d,%d)", name, precision.Int64, scale.Int64)
}

// NormalizeArrayType converts a PostgreSQL array udt name ("_int4") to its
// element type followed by "[]".
func NormalizeArrayType(udtName string) string {
	base := strings.TrimPrefix(udtName, "_")
	if mapped := MapPostgreSQLType(base, base, sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}); mapped != "" {
		base = mapped
	}
	return base + "[]"
}
