package lightmap

import (
	"bytes"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lucasefe/lightmap/generator"
	"github.com/lucasefe/lightmap/introspect"
)

func createDatabase(t *testing.T, statements ...string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "app.db")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to execute %q: %v", stmt, err)
		}
	}
	return path
}

func TestGenerateFromPathSingleTable(t *testing.T) {
	path := createDatabase(t, `CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)

	dot, err := GenerateFromPath(path, nil)
	if err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph main {\n") {
		t.Errorf("Expected graph named main, got: %s", dot)
	}
	if strings.Count(dot, "    label=<") != 1 {
		t.Errorf("Expected exactly one node, got: %s", dot)
	}
	expectedRows := []string{
		`<td align="left">id* <b>INTEGER</b></td>`,
		`<td align="left">name <b>TEXT</b></td>`,
	}
	for _, row := range expectedRows {
		if !strings.Contains(dot, row) {
			t.Errorf("Expected row %s in: %s", row, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Errorf("Expected no edges, got: %s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Errorf("Expected closing brace, got: %s", dot)
	}
}

func TestGenerateFromPathForeignKey(t *testing.T) {
	path := createDatabase(t,
		`CREATE TABLE customers (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT)`,
		`CREATE TABLE orders (id INTEGER PRIMARY KEY, customer_id INTEGER REFERENCES customers(id))`,
		`INSERT INTO customers (name) VALUES ('Ada')`,
	)

	dot, err := GenerateFromPath(path, nil)
	if err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}

	if strings.Count(dot, "->") != 1 || !strings.Contains(dot, "orders->customers[]\n") {
		t.Errorf("Expected a single orders->customers edge, got: %s", dot)
	}
	if strings.Contains(dot, "sqlite_sequence") {
		t.Errorf("Expected internal tables to be skipped, got: %s", dot)
	}
	if strings.Index(dot, "->") < strings.LastIndex(dot, "label=<") {
		t.Errorf("Expected nodes before edges, got: %s", dot)
	}
}

func TestGenerateFromPathIsDeterministic(t *testing.T) {
	path := createDatabase(t,
		`CREATE TABLE a (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE b (id INTEGER PRIMARY KEY, a_id INTEGER REFERENCES a(id))`,
		`CREATE TABLE c (id INTEGER PRIMARY KEY, a_id INTEGER REFERENCES a(id), b_id INTEGER REFERENCES b(id))`,
	)

	first, err := GenerateFromPath(path, nil)
	if err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}
	second, err := GenerateFromPath(path, nil)
	if err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}

	if first != second {
		t.Errorf("Expected identical output.\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestGenerateFromPathLeavesFileUntouched(t *testing.T) {
	path := createDatabase(t, `CREATE TABLE users (id INTEGER PRIMARY KEY)`)

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read database: %v", err)
	}

	if _, err := GenerateFromPath(path, nil); err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read database: %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Error("Expected database file to be unchanged")
	}

	for _, suffix := range []string{"-wal", "-shm", "-journal"} {
		if _, err := os.Stat(path + suffix); err == nil {
			t.Errorf("Expected no %s file next to the database", suffix)
		}
	}
}

func TestGenerateFromPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.db")

	dot, err := GenerateFromPath(path, nil)
	if !errors.Is(err, introspect.ErrConnect) {
		t.Fatalf("Expected ErrConnect, got: %v", err)
	}
	if dot != "" {
		t.Errorf("Expected no output, got: %s", dot)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected missing database file not to be created")
	}
}

func TestGenerateFromPathWithConfig(t *testing.T) {
	path := createDatabase(t,
		`CREATE TABLE users (id INTEGER PRIMARY KEY)`,
		`CREATE TABLE schema_migrations (version TEXT PRIMARY KEY)`,
	)

	style := generator.DefaultStyle()
	if err := style.Override(generator.KindGraph, "rankdir", "TB"); err != nil {
		t.Fatalf("Override returned error: %v", err)
	}

	dot, err := GenerateFromPath(path, &Config{
		Driver:        "postgres",
		ExcludeTables: []string{"schema_migrations"},
		Style:         style,
	})
	if err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}

	if strings.Contains(dot, "schema_migrations") {
		t.Errorf("Expected excluded table to be skipped, got: %s", dot)
	}
	if !strings.Contains(dot, `  rankdir="TB";`) {
		t.Errorf("Expected style override, got: %s", dot)
	}
}

func TestGenerateFromConnectionUnsupportedDriver(t *testing.T) {
	path := createDatabase(t, `CREATE TABLE users (id INTEGER PRIMARY KEY)`)
	db, err := introspect.OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	defer db.Close()

	_, err = GenerateFromConnection(db, &Config{Driver: "oracle"})
	if !errors.Is(err, introspect.ErrUnsupportedDialect) {
		t.Errorf("Expected ErrUnsupportedDialect, got: %v", err)
	}
}

func TestGenerateFromConnectionString(t *testing.T) {
	path := createDatabase(t, `CREATE TABLE users (id INTEGER PRIMARY KEY)`)

	dot, err := GenerateFromConnectionString("sqlite3", path, nil)
	if err != nil {
		t.Fatalf("GenerateFromConnectionString returned error: %v", err)
	}
	if !strings.Contains(dot, "  users [\n") {
		t.Errorf("Expected users node, got: %s", dot)
	}
}

func TestWriteToFileFromPath(t *testing.T) {
	path := createDatabase(t, `CREATE TABLE users (id INTEGER PRIMARY KEY)`)
	output := filepath.Join(t.TempDir(), "schema.dot")

	if err := WriteToFileFromPath(path, output, nil); err != nil {
		t.Fatalf("WriteToFileFromPath returned error: %v", err)
	}

	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	expected, err := GenerateFromPath(path, nil)
	if err != nil {
		t.Fatalf("GenerateFromPath returned error: %v", err)
	}
	if string(written) != expected {
		t.Errorf("Written output mismatch.\ngot:\n%s\nwant:\n%s", written, expected)
	}
}

func TestWriteToFileFailureWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "schema.dot")

	err := WriteToFileFromPath(filepath.Join(t.TempDir(), "missing.db"), output, nil)
	if err == nil {
		t.Fatal("Expected error for missing database")
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Error("Expected no output file on failure")
	}
}
