package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/scorarr/pkg/release/format"
)

func TestBuiltinProfiles(t *testing.T) {
	profiles := Builtin()
	assert.Len(t, profiles, 4)

	seen := map[string]bool{}
	for _, p := range profiles {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.ID], "duplicate profile id %s", p.ID)
		seen[p.ID] = true
		assert.True(t, p.UpgradesAllowed, "built-in profiles allow upgrades")
	}
}

func TestBuiltinProfiles_ScoresReferenceRealFormats(t *testing.T) {
	// Every score key must resolve to a built-in format; a typo here would
	// silently score zero.
	for _, p := range Builtin() {
		for id := range p.FormatScores {
			assert.True(t, format.IsBuiltinID(id), "profile %s references unknown format %q", p.Name, id)
		}
	}
}

func TestBuiltinProfiles_BansAreUniversal(t *testing.T) {
	bannedIDs := []string{
		"banned-cam", "banned-telesync", "banned-telecine",
		"banned-screener", "banned-workprint",
	}
	for _, p := range Builtin() {
		for _, id := range bannedIDs {
			assert.LessOrEqual(t, p.Score(id), BanScore,
				"profile %s must ban %s", p.Name, id)
		}
	}
}

func TestProfile_Score(t *testing.T) {
	p := Profile{FormatScores: map[string]int{"res-1080p": 80}}
	assert.Equal(t, 80, p.Score("res-1080p"))
	assert.Equal(t, 0, p.Score("not-mapped"))
}

func TestProfile_AllowsProtocol(t *testing.T) {
	open := Profile{}
	assert.True(t, open.AllowsProtocol(ProtocolTorrent), "empty allow-list accepts everything")

	restricted := Profile{AllowedProtocols: []Protocol{ProtocolUsenet}}
	assert.True(t, restricted.AllowsProtocol(ProtocolUsenet))
	assert.False(t, restricted.AllowsProtocol(ProtocolTorrent))
}

func TestFindProfile(t *testing.T) {
	p, ok := FindProfile("quality")
	assert.True(t, ok)
	assert.Equal(t, "profile-quality", p.ID)

	p, ok = FindProfile("PROFILE-BALANCED")
	assert.True(t, ok)
	assert.Equal(t, "Balanced", p.Name)

	_, ok = FindProfile("nope")
	assert.False(t, ok)
}

func TestIsBuiltinProfileID(t *testing.T) {
	assert.True(t, IsBuiltinProfileID("profile-compact"))
	assert.False(t, IsBuiltinProfileID("Compact"), "names are not ids")
	assert.False(t, IsBuiltinProfileID("user-custom"))
}
