package introspect

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// OpenSQLite opens an existing SQLite database file. The file is never
// created, and the connection uses the DELETE journal mode so that no
// write-ahead log files appear next to it.
//
// The returned handle is limited to a single connection, so attached
// databases and pragmas stay on the connection used for introspection.
func OpenSQLite(path string) (*sql.DB, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrConnect, path)
	}

	dsn := fmt.Sprintf("file:%s?mode=rw&_journal_mode=DELETE", uriEscaper.Replace(path))
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	db.SetMaxOpenConns(1)

	// A file that is not a database only fails once a page is read.
	var count int
	if err := db.QueryRow(`SELECT count(*) FROM sqlite_master`).Scan(&count); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrConnect, path, err)
	}

	return db, nil
}

// Open connects to a database through a registered database/sql driver
// ("sqlite3", "postgres", "pgx", "mysql" or "sqlserver") and verifies the
// connection.
func Open(driver, dsn string) (*sql.DB, error) {
	if driver == "sqlite3" || driver == "sqlite" {
		return OpenSQLite(dsn)
	}
	if _, err := DialectForDriver(driver); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnect, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", ErrConnect, err)
	}

	return db, nil
}
