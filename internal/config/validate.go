package config

import (
	"fmt"

	"github.com/vmunix/scorarr/pkg/release/format"
	"github.com/vmunix/scorarr/pkg/release/scoring"
)

var validConditionTypes = map[format.ConditionType]bool{
	format.TypeResolution: true, format.TypeSource: true,
	format.TypeReleaseTitle: true, format.TypeReleaseGroup: true,
	format.TypeCodec: true, format.TypeAudio: true, format.TypeHDR: true,
	format.TypeService: true, format.TypeFlag: true, format.TypeIndexer: true,
}

var validProtocols = map[scoring.Protocol]bool{
	scoring.ProtocolTorrent: true, scoring.ProtocolUsenet: true,
	scoring.ProtocolStreaming: true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.DefaultProfile != "" {
		_, builtin := scoring.FindProfile(c.DefaultProfile)
		if _, user := c.Profiles[c.DefaultProfile]; !builtin && !user {
			errs = append(errs, fmt.Sprintf("default_profile: profile %q not defined", c.DefaultProfile))
		}
	}

	for name, pc := range c.Profiles {
		if _, ok := scoring.FindProfile(name); ok {
			errs = append(errs, fmt.Sprintf("profiles.%s: name collides with a built-in profile", name))
		}
		if pc.CopyFrom != "" {
			if _, ok := scoring.FindProfile(pc.CopyFrom); !ok {
				errs = append(errs, fmt.Sprintf("profiles.%s.copy_from: built-in profile %q not found", name, pc.CopyFrom))
			}
		}
		for _, proto := range pc.AllowedProtocols {
			if !validProtocols[proto] {
				errs = append(errs, fmt.Sprintf("profiles.%s.allowed_protocols: unknown protocol %q", name, proto))
			}
		}
		if pc.MovieMinSizeGB > 0 && pc.MovieMaxSizeGB > 0 && pc.MovieMinSizeGB > pc.MovieMaxSizeGB {
			errs = append(errs, fmt.Sprintf("profiles.%s: movie_min_size_gb exceeds movie_max_size_gb", name))
		}
		if pc.EpisodeMinSizeMB > 0 && pc.EpisodeMaxSizeMB > 0 && pc.EpisodeMinSizeMB > pc.EpisodeMaxSizeMB {
			errs = append(errs, fmt.Sprintf("profiles.%s: episode_min_size_mb exceeds episode_max_size_mb", name))
		}
	}

	seen := make(map[string]bool)
	validCategories := make(map[format.Category]bool)
	for _, cat := range format.Categories {
		validCategories[cat] = true
	}
	for i, f := range c.Formats {
		switch {
		case f.ID == "":
			errs = append(errs, fmt.Sprintf("formats[%d]: id required", i))
		case format.IsBuiltinID(f.ID):
			errs = append(errs, fmt.Sprintf("formats[%d]: id %q is reserved by a built-in format", i, f.ID))
		case seen[f.ID]:
			errs = append(errs, fmt.Sprintf("formats[%d]: duplicate id %q", i, f.ID))
		}
		seen[f.ID] = true

		if f.Name == "" {
			errs = append(errs, fmt.Sprintf("formats[%d]: name required", i))
		}
		if !validCategories[f.Category] {
			errs = append(errs, fmt.Sprintf("formats[%d]: unknown category %q", i, f.Category))
		}
		for j, cond := range f.Conditions {
			if !validConditionTypes[cond.Type] {
				errs = append(errs, fmt.Sprintf("formats[%d].conditions[%d]: unknown type %q", i, j, cond.Type))
			}
		}
	}

	return errs
}
