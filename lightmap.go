package lightmap

import (
	"database/sql"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lucasefe/lightmap/generator"
	"github.com/lucasefe/lightmap/introspect"
)

// Config controls which parts of the catalog are read and how the graph looks.
// A nil *Config reads a SQLite connection with the default style.
type Config struct {
	// Driver names the database/sql driver the connection was opened with.
	// Empty means "sqlite3".
	Driver string
	// Schemas, AllSchemas, TypeMappings and TypeMapper only affect server
	// databases; SQLite always reads every attached database.
	Schemas       []string
	AllSchemas    bool
	ExcludeTables []string
	TypeMappings  map[string]string
	TypeMapper    introspect.TypeMapper
	// Style overrides generator.DefaultStyle when set.
	Style  *generator.Style
	Logger *zap.Logger
}

func (c *Config) options() ([]introspect.Option, error) {
	driver := c.Driver
	if driver == "" {
		driver = "sqlite3"
	}
	dialect, err := introspect.DialectForDriver(driver)
	if err != nil {
		return nil, err
	}

	opts := []introspect.Option{
		introspect.WithDialect(dialect),
		introspect.WithLogger(c.Logger),
	}
	if len(c.Schemas) > 0 {
		opts = append(opts, introspect.WithSchemas(c.Schemas...))
	}
	if c.AllSchemas {
		opts = append(opts, introspect.WithAllSchemas())
	}
	if len(c.ExcludeTables) > 0 {
		opts = append(opts, introspect.WithExcludeTables(c.ExcludeTables...))
	}
	if c.TypeMappings != nil {
		opts = append(opts, introspect.WithTypeMappings(c.TypeMappings))
	}
	if c.TypeMapper != nil {
		opts = append(opts, introspect.WithTypeMapper(c.TypeMapper))
	}
	return opts, nil
}

// GenerateFromConnection introspects db and renders the DOT document.
func GenerateFromConnection(db *sql.DB, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}

	opts, err := config.options()
	if err != nil {
		return "", err
	}

	databases, err := introspect.Databases(db, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to introspect database: %w", err)
	}

	output, err := generator.Generate(databases, config.Style)
	if err != nil {
		return "", fmt.Errorf("failed to generate graph: %w", err)
	}

	return string(output), nil
}

// GenerateFromPath opens the SQLite database file at path and renders it.
// The file must exist; it is never created or modified.
func GenerateFromPath(path string, config *Config) (string, error) {
	db, err := introspect.OpenSQLite(path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	return GenerateFromConnection(db, withDriver(config, "sqlite3"))
}

// GenerateFromConnectionString connects with the named driver and renders the
// result. For "sqlite3" the data source is a file path.
func GenerateFromConnectionString(driver, dsn string, config *Config) (string, error) {
	db, err := introspect.Open(driver, dsn)
	if err != nil {
		return "", err
	}
	defer db.Close()

	return GenerateFromConnection(db, withDriver(config, driver))
}

// withDriver returns a copy of config reading through driver.
func withDriver(config *Config, driver string) *Config {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.Driver = driver
	return &cfg
}

// WriteToFile renders db and writes the document to filename. Nothing is
// written when rendering fails.
func WriteToFile(db *sql.DB, filename string, config *Config) error {
	content, err := GenerateFromConnection(db, config)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// WriteToFileFromPath renders the SQLite database at path into filename.
func WriteToFileFromPath(path, filename string, config *Config) error {
	content, err := GenerateFromPath(path, config)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}
