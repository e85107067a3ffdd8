// Package config reads flag defaults from a TOML file.
//
// Keys are flag names with dashes replaced by underscores, e.g.
//
//	base_path = "~/src"
//	branch = "main"
//	first_commit = false
//
// A table named after a command only applies to that command and wins over top-level keys.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/kong"
)

const (
	appDir   = "project-creator"
	fileName = "config.toml"
)

// DefaultPath is $XDG_CONFIG_HOME/project-creator/config.toml or the platform equivalent.
// It is empty when the user configuration directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, appDir, fileName)
}

// TOML is a [kong.ConfigurationLoader].
func TOML(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}

	if _, err := toml.NewDecoder(r).Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode TOML configuration: %w", err)
	}

	var f kong.ResolverFunc = func(context *kong.Context, parent *kong.Path, flag *kong.Flag) (any, error) {
		name := strings.ReplaceAll(flag.Name, "-", "_")

		if cmd := parent.Command; cmd != nil {
			if table, ok := values[cmd.Name].(map[string]any); ok {
				if value, ok := table[name]; ok {
					return normalize(value), nil
				}
			}
		}

		value, ok := values[name]
		if !ok {
			return nil, nil
		}

		// A table is a command section, never a flag value.
		if _, isTable := value.(map[string]any); isTable {
			return nil, nil
		}

		return normalize(value), nil
	}

	return f, nil
}

// normalize turns values kong's mappers do not take directly into strings.
func normalize(value any) any {
	switch v := value.(type) {
	case int64, float64:
		return fmt.Sprint(v)
	default:
		return v
	}
}
