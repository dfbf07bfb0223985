// Package config loads lightmap settings from an explicitly named settings
// file, with the data source optionally taken from the environment.
package config

import (
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/lucasefe/lightmap/generator"
)

// Config represents the lightmap configuration.
type Config struct {
	Driver        string            `mapstructure:"driver"`
	DSN           string            `mapstructure:"dsn"`
	Schemas       []string          `mapstructure:"schemas"`
	ExcludeTables []string          `mapstructure:"exclude_tables"`
	AllSchemas    bool              `mapstructure:"all_schemas"`
	TypeMappings  map[string]string `mapstructure:"type_mappings"`
	Style         StyleConfig       `mapstructure:"style"`
}

// StyleConfig holds Graphviz attribute overrides per statement kind.
// Attribute names are lowercased by the loader, which matches DOT's own names.
type StyleConfig struct {
	Graph map[string]string `mapstructure:"graph"`
	Node  map[string]string `mapstructure:"node"`
	Edge  map[string]string `mapstructure:"edge"`
}

// Load reads the configuration. A settings file is read only when path is
// given; nothing is discovered implicitly, so the rendered document never
// depends on the working directory.
//
// The environment only supplies the data source: LIGHTMAP_DSN, falling back
// to DATABASE_URL. When set, it takes precedence over the file's dsn.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("driver", "sqlite3")

	if err := v.BindEnv("dsn", "LIGHTMAP_DSN", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// BuildStyle returns the default style with the configured overrides applied.
// Overrides are applied in key order so the output does not depend on map
// iteration.
func (c *Config) BuildStyle() (*generator.Style, error) {
	style := generator.DefaultStyle()

	kinds := []struct {
		kind      string
		overrides map[string]string
	}{
		{generator.KindGraph, c.Style.Graph},
		{generator.KindNode, c.Style.Node},
		{generator.KindEdge, c.Style.Edge},
	}

	for _, k := range kinds {
		keys := make([]string, 0, len(k.overrides))
		for key := range k.overrides {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			if err := style.Override(k.kind, key, k.overrides[key]); err != nil {
				return nil, fmt.Errorf("failed to apply %s style: %w", k.kind, err)
			}
		}
	}

	return style, nil
}
