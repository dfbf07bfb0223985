package introspect

import (
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// postgresQueries reads PostgreSQL through information_schema and pg_catalog.
// Both the "postgres" (lib/pq) and "pgx" drivers accept these queries.
var postgresQueries = serverQueries{
	defaultSchemas: []string{"public"},
	currentSchema:  `SELECT current_schema()`,
	allSchemas: `
		SELECT schema_name
		FROM information_schema.schemata
		WHERE schema_name NOT IN ('information_schema', 'pg_catalog', 'pg_toast')
			AND schema_name NOT LIKE 'pg\_temp\_%'
			AND schema_name NOT LIKE 'pg\_toast\_temp\_%'
		ORDER BY schema_name
	`,
	path: `SELECT current_database()`,
	tables: `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`,
	columns: `
		SELECT
			c.ordinal_position,
			c.column_name,
			c.data_type,
			COALESCE(c.udt_name, c.data_type) AS udt_name,
			c.character_maximum_length,
			c.numeric_precision,
			c.numeric_scale,
			c.is_nullable,
			c.column_default,
			CASE WHEN pk.column_name IS NULL THEN 0 ELSE 1 END AS is_primary_key
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT kcu.column_name
			FROM information_schema.key_column_usage kcu
			JOIN information_schema.table_constraints tc
				ON kcu.constraint_name = tc.constraint_name
				AND kcu.table_schema = tc.table_schema
				AND kcu.table_name = tc.table_name
			WHERE tc.constraint_type = 'PRIMARY KEY'
				AND kcu.table_schema = $1
				AND kcu.table_name = $2
		) pk ON pk.column_name = c.column_name
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`,
	references: `
		SELECT src.relname, dst.relname
		FROM pg_catalog.pg_constraint con
		JOIN pg_catalog.pg_class src ON src.oid = con.conrelid
		JOIN pg_catalog.pg_class dst ON dst.oid = con.confrelid
		JOIN pg_catalog.pg_namespace n ON n.oid = src.relnamespace
		WHERE con.contype = 'f' AND n.nspname = $1
		ORDER BY src.relname, con.conname
	`,
}
