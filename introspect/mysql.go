package introspect

import (
	_ "github.com/go-sql-driver/mysql"
)

// mysqlQueries reads MySQL and MariaDB through INFORMATION_SCHEMA. A MySQL
// "database" maps to a schema here.
var mysqlQueries = serverQueries{
	currentSchema: `SELECT DATABASE()`,
	allSchemas: `
		SELECT SCHEMA_NAME
		FROM INFORMATION_SCHEMA.SCHEMATA
		WHERE SCHEMA_NAME NOT IN ('information_schema', 'mysql', 'performance_schema', 'sys')
		ORDER BY SCHEMA_NAME
	`,
	path: `SELECT @@hostname`,
	tables: `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME
	`,
	columns: `
		SELECT
			ORDINAL_POSITION,
			COLUMN_NAME,
			COLUMN_TYPE,
			DATA_TYPE,
			CHARACTER_MAXIMUM_LENGTH,
			NUMERIC_PRECISION,
			NUMERIC_SCALE,
			IS_NULLABLE,
			COLUMN_DEFAULT,
			CASE WHEN COLUMN_KEY = 'PRI' THEN 1 ELSE 0 END
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`,
	references: `
		SELECT TABLE_NAME, REFERENCED_TABLE_NAME
		FROM INFORMATION_SCHEMA.KEY_COLUMN_USAGE
		WHERE TABLE_SCHEMA = ?
			AND REFERENCED_TABLE_NAME IS NOT NULL
		ORDER BY TABLE_NAME, CONSTRAINT_NAME, ORDINAL_POSITION
	`,
}
