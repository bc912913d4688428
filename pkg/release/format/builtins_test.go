package format

import (
	"testing"

	"github.com/vmunix/scorarr/pkg/release"
)

func TestBuiltin_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range Builtin() {
		if f.ID == "" {
			t.Errorf("format %q has empty id", f.Name)
		}
		if seen[f.ID] {
			t.Errorf("duplicate format id %q", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestBuiltin_ValidCategories(t *testing.T) {
	valid := map[Category]bool{}
	for _, c := range Categories {
		valid[c] = true
	}
	for _, f := range Builtin() {
		if !valid[f.Category] {
			t.Errorf("format %s has invalid category %q", f.ID, f.Category)
		}
	}
}

func TestBuiltin_PatternsCompile(t *testing.T) {
	ResetPatternCache()
	for _, f := range Builtin() {
		for _, c := range f.Conditions {
			if c.Pattern == "" {
				continue
			}
			if compilePattern(c.Pattern) == nil {
				t.Errorf("format %s condition %q: pattern %q does not compile", f.ID, c.Name, c.Pattern)
			}
		}
	}
}

func TestFindByID(t *testing.T) {
	f, ok := FindByID("res-2160p")
	if !ok || f.Name != "2160p" {
		t.Errorf("FindByID(res-2160p) = %v, %v", f.Name, ok)
	}
	if _, ok := FindByID("no-such-format"); ok {
		t.Error("FindByID should miss unknown ids")
	}

	if !IsBuiltinID("banned-cam") {
		t.Error("banned-cam is a built-in id")
	}
	if IsBuiltinID("user-custom") {
		t.Error("user-custom is not a built-in id")
	}
}

func TestBuiltin_BannedSourceDetection(t *testing.T) {
	// Banned formats use an OR of source enum and title pattern so a CAM
	// tag is caught even when source parsing misfires.
	tests := []struct {
		release string
		id      string
	}{
		{"Movie.2024.CAM.x264-GRP", "banned-cam"},
		{"Movie.2024.HDCAM.x264-GRP", "banned-cam"},
		{"Movie.2024.TELESYNC.x264-GRP", "banned-telesync"},
		{"Movie.2024.HDTS.x264-GRP", "banned-telesync"},
		{"Movie.2024.DVDSCR.x264-GRP", "banned-screener"},
		{"Movie.2024.WORKPRINT.x264-GRP", "banned-workprint"},
	}

	for _, tt := range tests {
		t.Run(tt.release, func(t *testing.T) {
			info := release.Parse(tt.release)
			matched := MatchAll(info, Builtin())
			found := false
			for _, m := range matched {
				if m.Format.ID == tt.id {
					found = true
				}
			}
			if !found {
				t.Errorf("%s should match %s", tt.release, tt.id)
			}
		})
	}
}

func TestBuiltin_AssumedHDR(t *testing.T) {
	// Untagged UHD BluRay is assumed HDR10; untagged UHD WEB-DL assumed HDR.
	bluray := release.Parse("Movie.2024.2160p.BluRay.x265-GRP")
	if !matchesID(bluray, FormatHDR10Assumed) {
		t.Error("untagged UHD BluRay should match hdr-hdr10-assumed")
	}

	webdl := release.Parse("Movie.2024.2160p.WEB-DL.x265-GRP")
	if !matchesID(webdl, FormatHDRAssumed) {
		t.Error("untagged UHD WEB-DL should match hdr-assumed")
	}

	// A tagged release is not "assumed" anything.
	tagged := release.Parse("Movie.2024.2160p.BluRay.HDR10.x265-GRP")
	if matchesID(tagged, FormatHDR10Assumed) {
		t.Error("tagged release must not match hdr-hdr10-assumed")
	}
}

func matchesID(info *release.Info, id string) bool {
	for _, m := range MatchAll(info, Builtin()) {
		if m.Format.ID == id {
			return true
		}
	}
	return false
}

func TestBuiltin_GroupTiers(t *testing.T) {
	remux := release.Parse("Movie.2024.2160p.BluRay.REMUX.TrueHD-FraMeSToR")
	if !matchesID(remux, "rg-remux-tier1") {
		t.Error("FraMeSToR remux should match rg-remux-tier1")
	}
	if matchesID(remux, "rg-encode-tier1") {
		t.Error("a remux must not match encode tiers")
	}

	encode := release.Parse("Movie.2024.1080p.BluRay.x264-DON")
	if !matchesID(encode, "rg-encode-tier1") {
		t.Error("DON encode should match rg-encode-tier1")
	}

	yts := release.Parse("Movie.2024.1080p.BluRay.x264-YTS.MX")
	if !matchesID(yts, "micro-yts") {
		t.Error("YTS.MX should match micro-yts")
	}
	yify := release.Parse("Movie.2024.1080p.BluRay.x264-YIFY")
	if !matchesID(yify, "micro-yts") {
		t.Error("YIFY should match micro-yts")
	}
}
