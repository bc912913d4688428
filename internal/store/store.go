// Package store provides SQLite-backed persistence for user-defined custom
// formats and scoring profiles. It is the validation boundary of the CRUD
// layer: records it hands out are guaranteed unique and outside the
// reserved built-in namespaces, so the scoring engine never re-validates.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vmunix/scorarr/pkg/release/format"
	"github.com/vmunix/scorarr/pkg/release/scoring"
)

const schema = `
CREATE TABLE IF NOT EXISTS custom_formats (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	data  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS profiles (
	id    TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	data  TEXT NOT NULL
);
`

// Store provides access to user format and profile records.
type Store struct {
	db *sql.DB
}

// New creates a store and ensures its schema exists.
func New(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// SaveFormat inserts a user custom format. The id must be unique and must
// not collide with the built-in catalogue.
func (s *Store) SaveFormat(ctx context.Context, f format.CustomFormat) error {
	if format.IsBuiltinID(f.ID) {
		return fmt.Errorf("format %q: %w", f.ID, ErrReservedID)
	}

	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal format: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO custom_formats (id, name, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		f.ID, f.Name, string(data),
	)
	if err != nil {
		return fmt.Errorf("save format: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("format %q: %w", f.ID, ErrDuplicateID)
	}
	return nil
}

// UpdateFormat replaces an existing user custom format.
func (s *Store) UpdateFormat(ctx context.Context, f format.CustomFormat) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal format: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE custom_formats SET name = ?, data = ? WHERE id = ?",
		f.Name, string(data), f.ID,
	)
	if err != nil {
		return fmt.Errorf("update format: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("format %q: %w", f.ID, ErrNotFound)
	}
	return nil
}

// GetFormat retrieves one user custom format by id.
func (s *Store) GetFormat(ctx context.Context, id string) (format.CustomFormat, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM custom_formats WHERE id = ?", id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return format.CustomFormat{}, fmt.Errorf("format %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return format.CustomFormat{}, fmt.Errorf("get format: %w", err)
	}

	var f format.CustomFormat
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return format.CustomFormat{}, fmt.Errorf("unmarshal format %q: %w", id, err)
	}
	return f, nil
}

// ListFormats returns all user custom formats ordered by id.
func (s *Store) ListFormats(ctx context.Context) ([]format.CustomFormat, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT data FROM custom_formats ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list formats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var formats []format.CustomFormat
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan format: %w", err)
		}
		var f format.CustomFormat
		if err := json.Unmarshal([]byte(data), &f); err != nil {
			return nil, fmt.Errorf("unmarshal format: %w", err)
		}
		formats = append(formats, f)
	}
	return formats, rows.Err()
}

// DeleteFormat removes a user custom format.
func (s *Store) DeleteFormat(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM custom_formats WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete format: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("format %q: %w", id, ErrNotFound)
	}
	return nil
}

// SaveProfile inserts a user scoring profile. The id must be unique and
// must not collide with a built-in profile.
func (s *Store) SaveProfile(ctx context.Context, p scoring.Profile) error {
	if scoring.IsBuiltinProfileID(p.ID) {
		return fmt.Errorf("profile %q: %w", p.ID, ErrReservedID)
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, data) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		p.ID, p.Name, string(data),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("profile %q: %w", p.ID, ErrDuplicateID)
	}
	return nil
}

// SaveProfileFrom inserts a user profile seeded with a copy of another
// profile's format scores. Explicit entries in p.FormatScores override the
// copied values.
func (s *Store) SaveProfileFrom(ctx context.Context, p scoring.Profile, copyFrom string) error {
	base, ok := scoring.FindProfile(copyFrom)
	if !ok {
		var err error
		base, err = s.GetProfile(ctx, copyFrom)
		if err != nil {
			return fmt.Errorf("copy source %q: %w", copyFrom, ErrNotFound)
		}
	}

	scores := make(map[string]int, len(base.FormatScores))
	for id, score := range base.FormatScores {
		scores[id] = score
	}
	for id, score := range p.FormatScores {
		scores[id] = score
	}
	p.FormatScores = scores

	return s.SaveProfile(ctx, p)
}

// GetProfile retrieves one user profile by id.
func (s *Store) GetProfile(ctx context.Context, id string) (scoring.Profile, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		"SELECT data FROM profiles WHERE id = ?", id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return scoring.Profile{}, fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return scoring.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	var p scoring.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return scoring.Profile{}, fmt.Errorf("unmarshal profile %q: %w", id, err)
	}
	return p, nil
}

// ListProfiles returns all user profiles ordered by id.
func (s *Store) ListProfiles(ctx context.Context) ([]scoring.Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT data FROM profiles ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []scoring.Profile
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		var p scoring.Profile
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a user profile.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("profile %q: %w", id, ErrNotFound)
	}
	return nil
}
