package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lucasefe/lightmap"
	"github.com/lucasefe/lightmap/internal/config"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
)

type rootOptions struct {
	configPath    string
	driver        string
	dsn           string
	schemas       []string
	excludeTables []string
	allSchemas    bool
	output        string
	verbose       bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "lightmap [flags] [path]",
		Short: "Render a database schema as a Graphviz diagram",
		Long: `lightmap reads the catalog of a database and prints a Graphviz DOT
document with one node per table and one edge per foreign key.

The argument is a SQLite database file, or a connection string when --driver
names a server database. Pipe the output into Graphviz to draw it:

    lightmap app.db | dot -Tsvg > schema.svg`,
		Example: `  lightmap app.db
  lightmap app.db -x schema_migrations -o schema.dot
  lightmap --driver postgres --dsn "postgres://localhost/shop?sslmode=disable" -s public,auth
  LIGHTMAP_DSN=app.db lightmap -c lightmap.yaml`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Settings file (YAML, TOML or JSON) with defaults and style overrides")
	flags.StringVar(&opts.driver, "driver", "sqlite3", "Database driver: sqlite3, postgres, pgx, mysql or sqlserver")
	flags.StringVar(&opts.dsn, "dsn", "", "Database path or connection string (can also use LIGHTMAP_DSN or DATABASE_URL)")
	flags.StringSliceVarP(&opts.schemas, "schemas", "s", nil, "Comma-separated schemas to include (server databases)")
	flags.BoolVarP(&opts.allSchemas, "all-schemas", "a", false, "Include all non-system schemas (server databases)")
	flags.StringSliceVarP(&opts.excludeTables, "exclude-tables", "x", nil, "Comma-separated tables to exclude")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log introspection details to stderr")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Driver = o.driver
	}
	if flags.Changed("dsn") {
		cfg.DSN = o.dsn
	}
	if flags.Changed("schemas") {
		cfg.Schemas = o.schemas
	}
	if flags.Changed("exclude-tables") {
		cfg.ExcludeTables = o.excludeTables
	}
	if flags.Changed("all-schemas") {
		cfg.AllSchemas = o.allSchemas
	}

	source := cfg.DSN
	if len(args) == 1 {
		source = args[0]
	}
	if source == "" {
		return errors.New("a database path or --dsn is required")
	}

	style, err := cfg.BuildStyle()
	if err != nil {
		return err
	}

	logger := newLogger(o.verbose)
	defer logger.Sync()

	logger.Debug("generating graph",
		zap.String("driver", cfg.Driver),
		zap.Strings("schemas", cfg.Schemas),
		zap.Strings("exclude_tables", cfg.ExcludeTables),
	)

	dot, err := lightmap.GenerateFromConnectionString(cfg.Driver, source, &lightmap.Config{
		Schemas:       cfg.Schemas,
		AllSchemas:    cfg.AllSchemas,
		ExcludeTables: cfg.ExcludeTables,
		TypeMappings:  cfg.TypeMappings,
		Style:         style,
		Logger:        logger,
	})
	if err != nil {
		return err
	}

	if o.output == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), dot)
		return err
	}

	if err := os.WriteFile(o.output, []byte(dot), 0644); err != nil {
		return fmt.Errorf("failed to write to file %s: %w", o.output, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Graph written to %s (%d bytes)\n", o.output, len(dot))
	return nil
}

// newLogger returns a development logger on stderr when verbose is set.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			title := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			title.Fprint(out, "lightmap version: ")
			fmt.Fprintln(out, Version)
			title.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			title.Fprint(out, "Go version: ")
			fmt.Fprintln(out, runtime.Version())
		},
	}
}
