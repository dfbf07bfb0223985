// Package schema defines the data structures for representing database catalogs.
// These types are produced by the introspect package and consumed by the generator.
package schema

// Database represents one database reachable from a connection: an attached
// SQLite database or a schema of a server database.
type Database struct {
	// Name is the logical name of the database (e.g., "main", "public").
	Name string
	// Path is the backing file path, or a server-side identifier. It is empty
	// for in-memory SQLite databases.
	Path string
	// Tables contains all user tables, in catalog order.
	Tables []Table
	// References contains one entry per distinct (source, sink) table pair.
	References []Reference
}

// Table represents a database table with its columns.
type Table struct {
	// Name is the table name, unique within its Database.
	Name string
	// Columns contains all columns in the table, ordered by catalog index.
	Columns []Column
}

// Column represents a database column within a table.
type Column struct {
	// ID is the zero-based column ordinal reported by the catalog.
	ID int
	// Name is the column name.
	Name string
	// Datatype is the declared type as reported by the catalog. It may be empty.
	Datatype string
	// Required indicates a NOT NULL constraint.
	Required bool
	// DefaultValue is the column's default value expression, or nil if none.
	DefaultValue *string
	// PrimaryKey indicates whether this column is part of the primary key.
	PrimaryKey bool
}

// Reference represents a foreign key relationship between two tables,
// identified by name only. The sink may name a table that is not part of
// any extracted Database.
type Reference struct {
	// Source is the table declaring the foreign key.
	Source string
	// Sink is the referenced table.
	Sink string
}

// Table returns the table with the given name.
func (d *Database) Table(name string) (*Table, bool) {
	for i := range d.Tables {
		if d.Tables[i].Name == name {
			return &d.Tables[i], true
		}
	}
	return nil, false
}

// PrimaryKeys returns the names of the primary key columns in column order.
func (t *Table) PrimaryKeys() []string {
	var keys []string
	for _, c := range t.Columns {
		if c.PrimaryKey {
			keys = append(keys, c.Name)
		}
	}
	return keys
}
