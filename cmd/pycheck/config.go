package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "pycheck.toml"

// fileConfig — необязательный pycheck.toml рядом с проверяемым кодом.
// Флаги командной строки имеют приоритет над файлом.
type fileConfig struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	Jobs           int    `toml:"jobs"`
	Format         string `toml:"format"`
	Color          string `toml:"color"`
}

// findConfig walks up from start to the filesystem root looking for
// pycheck.toml.
func findConfig(start string) (string, bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		candidate := filepath.Join(dir, configFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// loadConfig reads the nearest config file. A missing file is not an
// error: the zero config applies.
func loadConfig(target string) (*fileConfig, error) {
	path, ok := findConfig(target)
	if !ok {
		return &fileConfig{}, nil
	}

	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// applyConfig fills flag values from the config file for every flag the
// user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *fileConfig) {
	root := cmd.Root().PersistentFlags()
	flags := cmd.Flags()

	if cfg.MaxDiagnostics > 0 && !root.Changed("max-diagnostics") {
		_ = root.Set("max-diagnostics", fmt.Sprintf("%d", cfg.MaxDiagnostics))
	}
	if cfg.Color != "" && !root.Changed("color") {
		_ = root.Set("color", cfg.Color)
	}
	if cfg.Format != "" && flags.Lookup("format") != nil && !flags.Changed("format") {
		_ = flags.Set("format", cfg.Format)
	}
	if cfg.Jobs > 0 && flags.Lookup("jobs") != nil && !flags.Changed("jobs") {
		_ = flags.Set("jobs", fmt.Sprintf("%d", cfg.Jobs))
	}
}
