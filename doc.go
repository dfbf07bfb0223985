// Package lightmap renders database schemas as Graphviz DOT entity
// relationship diagrams.
//
// Every table becomes a record node listing its columns, with primary key
// columns marked by an asterisk, and every foreign key becomes an edge from
// the referencing table to the referenced one. SQLite files are the primary
// input; PostgreSQL, MySQL and SQL Server connections are also supported.
//
// # Basic Usage
//
// Render a SQLite database file:
//
//	import "github.com/lucasefe/lightmap"
//
//	dot, err := lightmap.GenerateFromPath("app.db", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(dot)
//
// The output can be piped straight into Graphviz:
//
//	lightmap app.db | dot -Tsvg > schema.svg
//
// # Configuration
//
// Use Config to skip tables, select schemas or change the graph style:
//
//	style := generator.DefaultStyle()
//	style.Override(generator.KindGraph, "rankdir", "TB")
//
//	dot, err := lightmap.GenerateFromConnectionString("postgres", connStr, &lightmap.Config{
//	    Schemas:       []string{"public", "auth"},
//	    ExcludeTables: []string{"schema_migrations"},
//	    Style:         style,
//	})
//
// # Subpackages
//
// For more control, use the subpackages directly:
//
//   - github.com/lucasefe/lightmap/schema - Extracted databases, tables, columns and references
//   - github.com/lucasefe/lightmap/introspect - Catalog extraction with functional options
//   - github.com/lucasefe/lightmap/generator - Table labels and DOT documents
//   - github.com/lucasefe/lightmap/markup - Escaping HTML-like label builder
//
// Attached SQLite databases are drawn into the same graph:
//
//	db, err := introspect.OpenSQLite("app.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if _, err := db.Exec(`ATTACH DATABASE 'archive.db' AS archive`); err != nil {
//	    log.Fatal(err)
//	}
//
//	databases, err := introspect.Databases(db)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, err := generator.Generate(databases, nil)
package lightmap
