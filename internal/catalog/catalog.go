// Package catalog assembles the effective format and profile catalogues:
// built-in static data merged with user records from persistence and
// configuration. Built-ins always come first and can never be shadowed.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vmunix/scorarr/pkg/release/format"
	"github.com/vmunix/scorarr/pkg/release/scoring"
)

// Source provides user-defined records. *store.Store implements it.
type Source interface {
	ListFormats(ctx context.Context) ([]format.CustomFormat, error)
	ListProfiles(ctx context.Context) ([]scoring.Profile, error)
}

// Catalog resolves formats and profiles by merging built-ins with user
// records. A nil source serves built-ins only.
type Catalog struct {
	source Source
	extra  []scoring.Profile // config-file profiles
	logger *slog.Logger
}

// New creates a catalog. source may be nil; extraProfiles come from the
// config file and rank between built-ins and stored profiles.
func New(source Source, extraProfiles []scoring.Profile, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{source: source, extra: extraProfiles, logger: logger}
}

// Formats returns the effective format catalogue: built-ins followed by
// user formats in stable id order.
func (c *Catalog) Formats(ctx context.Context) ([]format.CustomFormat, error) {
	formats := append([]format.CustomFormat(nil), format.Builtin()...)
	if c.source == nil {
		return formats, nil
	}

	user, err := c.source.ListFormats(ctx)
	if err != nil {
		return nil, fmt.Errorf("user formats: %w", err)
	}
	c.logger.Debug("loaded user formats", "count", len(user))
	return append(formats, user...), nil
}

// Profiles returns every known profile: built-ins, then config-file
// profiles, then stored user profiles.
func (c *Catalog) Profiles(ctx context.Context) ([]scoring.Profile, error) {
	profiles := append([]scoring.Profile(nil), scoring.Builtin()...)
	profiles = append(profiles, c.extra...)
	if c.source == nil {
		return profiles, nil
	}

	user, err := c.source.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("user profiles: %w", err)
	}
	return append(profiles, user...), nil
}

// Profile resolves a profile by name or id, case-insensitively, searching
// built-ins before user profiles.
func (c *Catalog) Profile(ctx context.Context, name string) (scoring.Profile, error) {
	profiles, err := c.Profiles(ctx)
	if err != nil {
		return scoring.Profile{}, err
	}
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) || strings.EqualFold(p.ID, name) {
			return p, nil
		}
	}

	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return scoring.Profile{}, fmt.Errorf("profile %q not found (available: %s)",
		name, strings.Join(names, ", "))
}
