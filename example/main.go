package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lucasefe/lightmap"
)

var librarySchema = []string{
	`CREATE TABLE authors (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		born DATE
	)`,
	`CREATE TABLE books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		isbn VARCHAR(13),
		author_id INTEGER NOT NULL REFERENCES authors(id),
		published_on DATE DEFAULT CURRENT_DATE
	)`,
	`CREATE TABLE members (
		id INTEGER PRIMARY KEY,
		email TEXT NOT NULL,
		joined_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE loans (
		book_id INTEGER NOT NULL REFERENCES books(id),
		member_id INTEGER NOT NULL REFERENCES members(id),
		due_on DATE NOT NULL,
		PRIMARY KEY (book_id, member_id)
	)`,
	`CREATE TABLE schema_migrations (version TEXT PRIMARY KEY)`,
}

func main() {
	outputFile := ""
	if len(os.Args) > 1 {
		outputFile = os.Args[1]
	}

	dir, err := os.MkdirTemp("", "lightmap-example")
	if err != nil {
		log.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "library.db")
	if err := createLibrary(path); err != nil {
		log.Fatalf("Failed to create sample database: %v", err)
	}

	config := &lightmap.Config{
		ExcludeTables: []string{"schema_migrations"},
	}

	if outputFile == "" {
		dot, err := lightmap.GenerateFromPath(path, config)
		if err != nil {
			log.Fatalf("Failed to generate graph: %v", err)
		}
		fmt.Print(dot)
		return
	}

	if err := lightmap.WriteToFileFromPath(path, outputFile, config); err != nil {
		log.Fatalf("Failed to write graph: %v", err)
	}
	fmt.Printf("Graph written to %s\n", outputFile)
	fmt.Printf("Render it with: dot -Tsvg %s > library.svg\n", outputFile)
}

// createLibrary writes a small lending library schema to path.
func createLibrary(path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range librarySchema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}
