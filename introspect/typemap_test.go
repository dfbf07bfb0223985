package introspect

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapPostgreSQLType(t *testing.T) {
	tests := []struct {
		name             string
		dataType         string
		udtName          string
		charMaxLength    sql.NullInt64
		numericPrecision sql.NullInt64
		numericScale     sql.NullInt64
		expected         string
	}{
		{"integer", "integer", "int4", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "int"},
		{"bigint", "bigint", "int8", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "bigint"},
		{"smallint", "smallint", "int2", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "smallint"},
		{"boolean", "boolean", "bool", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "boolean"},
		{"varchar with length", "character varying", "varchar", sql.NullInt64{Valid: true, Int64: 255}, sql.NullInt64{}, sql.NullInt64{}, "varchar(255)"},
		{"varchar without length", "character varying", "varchar", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "varchar"},
		{"char with length", "character", "char", sql.NullInt64{Valid: true, Int64: 10}, sql.NullInt64{}, sql.NullInt64{}, "char(10)"},
		{"text", "text", "text", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "text"},
		{"decimal with precision", "numeric", "numeric", sql.NullInt64{}, sql.NullInt64{Valid: true, Int64: 10}, sql.NullInt64{Valid: true, Int64: 2}, "decimal(10,2)"},
		{"decimal without precision", "numeric", "numeric", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "decimal"},
		{"real", "real", "float4", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "float"},
		{"double", "double precision", "float8", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "double"},
		{"timestamp", "timestamp without time zone", "timestamp", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "timestamp"},
		{"timestamptz", "timestamp with time zone", "timestamptz", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "timestamptz"},
		{"uuid", "uuid", "uuid", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "uuid"},
		{"jsonb", "jsonb", "jsonb", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "jsonb"},
		{"bytea", "bytea", "bytea", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "binary"},
		{"enum", "USER-DEFINED", "order_status", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "order_status"},
		{"array type", "ARRAY", "_int4", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "int[]"},
		{"array of custom", "ARRAY", "_mood", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "mood[]"},
		{"unknown type", "custom_type", "custom_type", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "custom_type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MapPostgreSQLType(tt.dataType, tt.udtName, tt.charMaxLength, tt.numericPrecision, tt.numericScale)
			if result != tt.expected {
				t.Errorf("MapPostgreSQLType() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPostgreSQLTypeMapper(t *testing.T) {
	mapper := NewPostgreSQLTypeMapper(map[string]string{
		"citext": "varchar",
		"ltree":  "text",
	})
	null := sql.NullInt64{}

	tests := []struct {
		name     string
		dataType string
		udtName  string
		expected string
	}{
		{"override by data type", "citext", "citext", "varchar"},
		{"override by udt name", "USER-DEFINED", "ltree", "text"},
		{"override ignores case", "CITEXT", "citext", "varchar"},
		{"default mapping", "integer", "int4", "int"},
		{"unmapped extension type", "USER-DEFINED", "hstore", "hstore"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapper.MapType(tt.dataType, tt.udtName, null, null, null))
		})
	}

	assert.Equal(t, "int", NewPostgreSQLTypeMapper(nil).MapType("integer", "int4", null, null, null))
}

func TestNormalizeArrayType(t *testing.T) {
	assert.Equal(t, "bigint[]", NormalizeArrayType("_int8"))
	assert.Equal(t, "varchar[]", NormalizeArrayType("_varchar"))
	assert.Equal(t, "mood[]", NormalizeArrayType("mood"))
}

func TestMapperSelection(t *testing.T) {
	custom := NewGenericTypeMapper(nil)

	tests := []struct {
		name     string
		opts     []Option
		expected TypeMapper
	}{
		{"sqlite uses generic", nil, &GenericTypeMapper{}},
		{"postgres", []Option{WithDialect(PostgreSQL)}, &PostgreSQLTypeMapper{}},
		{"mysql", []Option{WithDialect(MySQL)}, &GenericTypeMapper{}},
		{"explicit mapper wins", []Option{WithDialect(PostgreSQL), WithTypeMapper(custom)}, custom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(o)
			}
			assert.IsType(t, tt.expected, o.mapper())
		})
	}
}

func TestGenericTypeMapper(t *testing.T) {
	tests := []struct {
		name             string
		dataType         string
		charMaxLength    sql.NullInt64
		numericPrecision sql.NullInt64
		numericScale     sql.NullInt64
		expected         string
	}{
		{"mysql column type kept", "varchar(255)", sql.NullInt64{Valid: true, Int64: 255}, sql.NullInt64{}, sql.NullInt64{}, "varchar(255)"},
		{"nvarchar with length", "nvarchar", sql.NullInt64{Valid: true, Int64: 50}, sql.NullInt64{}, sql.NullInt64{}, "nvarchar(50)"},
		{"nvarchar max", "nvarchar", sql.NullInt64{Valid: true, Int64: -1}, sql.NullInt64{}, sql.NullInt64{}, "nvarchar(max)"},
		{"decimal", "decimal", sql.NullInt64{}, sql.NullInt64{Valid: true, Int64: 18}, sql.NullInt64{Valid: true, Int64: 4}, "decimal(18,4)"},
		{"int", "int", sql.NullInt64{}, sql.NullInt64{Valid: true, Int64: 10}, sql.NullInt64{Valid: true, Int64: 0}, "int"},
		{"datetime2", "datetime2", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}, "datetime2"},
	}

	mapper := NewGenericTypeMapper(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mapper.MapType(tt.dataType, tt.dataType, tt.charMaxLength, tt.numericPrecision, tt.numericScale)
			if result != tt.expected {
				t.Errorf("MapType() = %v, want %v", result, tt.expected)
			}
		})
	}

	custom := NewGenericTypeMapper(map[string]string{"tinyint(1)": "bool"})
	if got := custom.MapType("tinyint(1)", "tinyint", sql.NullInt64{}, sql.NullInt64{}, sql.NullInt64{}); got != "bool" {
		t.Errorf("Expected custom mapping 'bool', got '%s'", got)
	}
}
