package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	"github.com/vmunix/scorarr/internal/catalog"
	"github.com/vmunix/scorarr/internal/config"
	"github.com/vmunix/scorarr/internal/store"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "scorarr",
	Short: "Release scoring and custom-format matching",
	Long: `scorarr - release scoring and custom-format matching

Scores release names against quality profiles: a catalogue of custom
formats detects properties of each release, the active profile weighs
them, and hard gates (bans, size, protocol) decide acceptability.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("scorarr {{.Version}}\n")
}

// loadConfig reads the config file when present; a missing file is not an
// error, every command works against built-ins alone.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil
	}
	return config.Load(configPath)
}

// buildCatalog assembles the effective catalogue from built-ins plus any
// configured profiles and stored user records.
func buildCatalog() (*catalog.Catalog, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return catalog.New(nil, nil, logger), nil
	}

	var source catalog.Source
	if _, err := os.Stat(cfg.Database.Path); err == nil {
		db, err := sql.Open("sqlite", cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		st, err := store.New(db)
		if err != nil {
			return nil, fmt.Errorf("opening store: %w", err)
		}
		source = st
	}

	return catalog.New(source, cfg.ScoringProfiles(), logger), nil
}

// defaultProfileName returns the configured default profile, falling back
// to Balanced.
func defaultProfileName() string {
	cfg, err := loadConfig()
	if err == nil && cfg != nil && cfg.DefaultProfile != "" {
		return cfg.DefaultProfile
	}
	return "Balanced"
}
