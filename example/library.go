//go:build ignore

// This file demonstrates various ways to use the lightmap packages as a library.
// Run with: go run library.go <database.db> [archive.db]
package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/lucasefe/lightmap"
	"github.com/lucasefe/lightmap/generator"
	"github.com/lucasefe/lightmap/introspect"
	"github.com/lucasefe/lightmap/schema"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run library.go <database.db> [archive.db]")
		os.Exit(1)
	}

	path := os.Args[1]

	fmt.Println("=== Example 1: Basic Usage ===")
	basicUsage(path)

	fmt.Println("\n=== Example 2: Custom Style ===")
	customStyle(path)

	fmt.Println("\n=== Example 3: Working with the Schema Model ===")
	workingWithSchema(path)

	if len(os.Args) > 2 {
		fmt.Println("\n=== Example 4: Attached Databases ===")
		attachedDatabases(path, os.Args[2])
	}
}

// basicUsage shows the simplest way to render a database
func basicUsage(path string) {
	dot, err := lightmap.GenerateFromPath(path, nil)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	printPreview("Basic output", dot)
}

// customStyle changes Graphviz attributes before rendering
func customStyle(path string) {
	style := generator.DefaultStyle()
	if err := style.Override(generator.KindGraph, "rankdir", "TB"); err != nil {
		log.Printf("Error: %v", err)
		return
	}
	if err := style.Override(generator.KindEdge, "color", "gray40"); err != nil {
		log.Printf("Error: %v", err)
		return
	}

	dot, err := lightmap.GenerateFromPath(path, &lightmap.Config{Style: style})
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	printPreview("Top to bottom, gray edges", dot)
}

// workingWithSchema introspects the database and inspects the model before rendering
func workingWithSchema(path string) {
	db, err := introspect.OpenSQLite(path)
	if err != nil {
		log.Printf("Error opening database: %v", err)
		return
	}
	defer db.Close()

	logger, _ := zap.NewDevelopment()
	databases, err := introspect.Databases(db, introspect.WithLogger(logger))
	if err != nil {
		log.Printf("Error introspecting database: %v", err)
		return
	}

	for _, d := range databases {
		fmt.Printf("%s (%s): %d tables, %d references\n", d.Name, d.Path, len(d.Tables), len(d.References))
		for _, table := range d.Tables {
			fmt.Printf("  - %s %v\n", table.Name, table.PrimaryKeys())
		}
	}

	databases = schema.FilterTables(databases, []string{"schema_migrations"})
	for _, d := range schema.DanglingReferences(databases) {
		fmt.Printf("Unknown table %s referenced by %s (closest: %s)\n", d.Reference.Sink, d.Reference.Source, d.Suggestion)
	}

	output, err := generator.Generate(databases, nil)
	if err != nil {
		log.Printf("Error generating: %v", err)
		return
	}

	printPreview("Generated from filtered schema", string(output))
}

// attachedDatabases draws two database files into one graph
func attachedDatabases(path, archive string) {
	db, err := introspect.OpenSQLite(path)
	if err != nil {
		log.Printf("Error opening database: %v", err)
		return
	}
	defer db.Close()

	if _, err := db.Exec(`ATTACH DATABASE ? AS archive`, archive); err != nil {
		log.Printf("Error attaching database: %v", err)
		return
	}

	dot, err := lightmap.GenerateFromConnection(db, nil)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	printPreview("Main and archive", dot)
}

// printPreview prints a preview of the generated graph
func printPreview(title, content string) {
	fmt.Printf("\n%s:\n", title)
	fmt.Println("---")
	if len(content) > 300 {
		fmt.Printf("%s...\n", content[:300])
	} else {
		fmt.Print(content)
	}
	fmt.Println("---")
}
