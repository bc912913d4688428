// Package config handles TOML configuration loading with environment
// variable substitution. Configuration declares user scoring profiles and
// custom formats; the built-in catalogue never lives here.
package config

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/scorarr/pkg/release/format"
	"github.com/vmunix/scorarr/pkg/release/scoring"
)

// Config is the root configuration structure.
type Config struct {
	Database       DatabaseConfig           `toml:"database"`
	DefaultProfile string                   `toml:"default_profile"`
	Profiles       map[string]ProfileConfig `toml:"profiles"`
	Formats        []format.CustomFormat    `toml:"formats"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

// ProfileConfig declares a user profile. CopyFrom names a built-in profile
// whose format scores seed this one; Scores entries then override per id.
type ProfileConfig struct {
	Description       string             `toml:"description"`
	CopyFrom          string             `toml:"copy_from"`
	Scores            map[string]int     `toml:"scores"`
	MinScore          float64            `toml:"min_score"`
	UpgradeUntilScore float64            `toml:"upgrade_until_score"`
	MinScoreIncrement float64            `toml:"min_score_increment"`
	MovieMinSizeGB    float64            `toml:"movie_min_size_gb"`
	MovieMaxSizeGB    float64            `toml:"movie_max_size_gb"`
	EpisodeMinSizeMB  float64            `toml:"episode_min_size_mb"`
	EpisodeMaxSizeMB  float64            `toml:"episode_max_size_mb"`
	AllowedProtocols  []scoring.Protocol `toml:"allowed_protocols"`
	UpgradesAllowed   *bool              `toml:"upgrades_allowed"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/scorarr.db"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

// ScoringProfiles converts the declared profiles into scoring records.
// Validation has already run: CopyFrom targets exist.
func (c *Config) ScoringProfiles() []scoring.Profile {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	profiles := make([]scoring.Profile, 0, len(c.Profiles))
	for _, name := range names {
		pc := c.Profiles[name]
		scores := make(map[string]int)
		if pc.CopyFrom != "" {
			if base, ok := scoring.FindProfile(pc.CopyFrom); ok {
				for id, score := range base.FormatScores {
					scores[id] = score
				}
			}
		}
		for id, score := range pc.Scores {
			scores[id] = score
		}

		upgrades := true
		if pc.UpgradesAllowed != nil {
			upgrades = *pc.UpgradesAllowed
		}

		profiles = append(profiles, scoring.Profile{
			ID:                "user-" + name,
			Name:              name,
			Description:       pc.Description,
			FormatScores:      scores,
			MinScore:          pc.MinScore,
			UpgradeUntilScore: pc.UpgradeUntilScore,
			MinScoreIncrement: pc.MinScoreIncrement,
			MovieMinSizeGB:    pc.MovieMinSizeGB,
			MovieMaxSizeGB:    pc.MovieMaxSizeGB,
			EpisodeMinSizeMB:  pc.EpisodeMinSizeMB,
			EpisodeMaxSizeMB:  pc.EpisodeMaxSizeMB,
			AllowedProtocols:  pc.AllowedProtocols,
			UpgradesAllowed:   upgrades,
		})
	}
	return profiles
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
