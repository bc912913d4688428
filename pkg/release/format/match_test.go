package format

import (
	"testing"

	"github.com/vmunix/scorarr/pkg/release"
)

func TestEvaluateCondition_Negate(t *testing.T) {
	info := &release.Info{Resolution: release.Resolution1080p}

	cond := Condition{Name: "1080p", Type: TypeResolution, Value: "1080p"}
	res := EvaluateCondition(cond, info)
	if !res.RawMatch || !res.Matched {
		t.Errorf("plain condition: RawMatch=%v Matched=%v, want true/true", res.RawMatch, res.Matched)
	}

	cond.Negate = true
	res = EvaluateCondition(cond, info)
	if !res.RawMatch || res.Matched {
		t.Errorf("negated condition: RawMatch=%v Matched=%v, want true/false", res.RawMatch, res.Matched)
	}

	cond.Value = "720p"
	res = EvaluateCondition(cond, info)
	if res.RawMatch || !res.Matched {
		t.Errorf("negated non-match: RawMatch=%v Matched=%v, want false/true", res.RawMatch, res.Matched)
	}
}

func TestEvaluateCondition_EnumTypes(t *testing.T) {
	info := &release.Info{
		Resolution: release.Resolution2160p,
		Source:     release.SourceWEBDL,
		Codec:      release.CodecX265,
		HDR:        release.HDR10,
		Audio:      release.AudioEAC3,
		Service:    "AMZN",
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"resolution match", Condition{Type: TypeResolution, Value: "2160p"}, true},
		{"resolution mismatch", Condition{Type: TypeResolution, Value: "1080p"}, false},
		{"source match", Condition{Type: TypeSource, Value: "webdl"}, true},
		{"codec match", Condition{Type: TypeCodec, Value: "x265"}, true},
		{"hdr match", Condition{Type: TypeHDR, Value: "hdr10"}, true},
		{"audio match", Condition{Type: TypeAudio, Value: "dd+"}, true},
		{"service match", Condition{Type: TypeService, Value: "AMZN"}, true},
		{"service case-insensitive", Condition{Type: TypeService, Value: "amzn"}, true},
		{"unknown type", Condition{Type: ConditionType("bogus"), Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateCondition(tt.cond, info).Matched; got != tt.want {
				t.Errorf("Matched = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateCondition_HDRAliases(t *testing.T) {
	sdr := &release.Info{HDR: release.HDRNone}
	hdr := &release.Info{HDR: release.HDR10}

	// Empty value and "sdr" both mean no HDR.
	for _, value := range []string{"", "sdr", "SDR"} {
		cond := Condition{Type: TypeHDR, Value: value}
		if !EvaluateCondition(cond, sdr).Matched {
			t.Errorf("value %q should match SDR release", value)
		}
		if EvaluateCondition(cond, hdr).Matched {
			t.Errorf("value %q should not match HDR10 release", value)
		}
	}
}

func TestEvaluateCondition_AtmosTitleFallback(t *testing.T) {
	// Atmos is often an add-on to the primary codec; the title tag counts
	// even when the parsed primary codec is something else.
	info := &release.Info{
		Title: "Movie.2024.2160p.BluRay.DDP.Atmos.5.1-GRP",
		Audio: release.AudioEAC3,
	}

	atmos := Condition{Type: TypeAudio, Value: "atmos"}
	if !EvaluateCondition(atmos, info).Matched {
		t.Error("atmos condition should match via title fallback")
	}

	// The fallback applies to no other audio value.
	truehd := Condition{Type: TypeAudio, Value: "truehd"}
	info2 := &release.Info{Title: "Movie.2024.TrueHD.Title-GRP", Audio: release.AudioAAC}
	if EvaluateCondition(truehd, info2).Matched {
		t.Error("truehd condition must not fall back to the title")
	}
}

func TestEvaluateCondition_PatternTypes(t *testing.T) {
	info := &release.Info{
		Title: "Movie.2024.1080p.BluRay.x264-FraMeSToR",
		Group: "FraMeSToR",
	}

	tests := []struct {
		name string
		cond Condition
		want bool
	}{
		{"title pattern", Condition{Type: TypeReleaseTitle, Pattern: `\bBluRay\b`}, true},
		{"title pattern case-insensitive", Condition{Type: TypeReleaseTitle, Pattern: `bluray`}, true},
		{"group pattern", Condition{Type: TypeReleaseGroup, Pattern: `^FraMeSToR$`}, true},
		{"group anchored mismatch", Condition{Type: TypeReleaseGroup, Pattern: `^rameSTo$`}, false},
		{"indexer without attribute", Condition{Type: TypeIndexer, Pattern: `.*`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateCondition(tt.cond, info).Matched; got != tt.want {
				t.Errorf("Matched = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateCondition_MissingGroupNeverMatches(t *testing.T) {
	// A release without a group must not match any group pattern, even one
	// that matches the empty string. Negated, it therefore does match.
	info := &release.Info{Title: "Movie.2024.1080p.WEB-DL"}

	cond := Condition{Type: TypeReleaseGroup, Pattern: `.*`}
	if EvaluateCondition(cond, info).Matched {
		t.Error("group pattern must not match when the group is absent")
	}

	cond.Negate = true
	if !EvaluateCondition(cond, info).Matched {
		t.Error("negated group pattern should match when the group is absent")
	}
}

func TestEvaluateCondition_InvalidPattern(t *testing.T) {
	ResetPatternCache()
	info := &release.Info{Title: "Movie.2024.1080p-GRP", Group: "GRP"}

	cond := Condition{Type: TypeReleaseTitle, Pattern: `[unclosed`}
	for i := 0; i < 3; i++ {
		if EvaluateCondition(cond, info).Matched {
			t.Fatal("invalid pattern must never match")
		}
	}

	// Negated, an invalid pattern matches everything; operators are warned
	// at validation time instead.
	cond.Negate = true
	if !EvaluateCondition(cond, info).Matched {
		t.Error("negated invalid pattern should match")
	}
}

func TestEvaluateCondition_Flags(t *testing.T) {
	info := &release.Info{IsRemux: true, IsRepack: true}

	tests := []struct {
		flag string
		want bool
	}{
		{FlagRemux, true},
		{FlagRepack, true},
		{FlagProper, false},
		{Flag3D, false},
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			cond := Condition{Type: TypeFlag, Flag: tt.flag}
			if got := EvaluateCondition(cond, info).Matched; got != tt.want {
				t.Errorf("Matched = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateCondition_NilInfo(t *testing.T) {
	cond := Condition{Type: TypeReleaseTitle, Pattern: `.*`}
	if EvaluateCondition(cond, nil).RawMatch {
		t.Error("nil info must produce a raw non-match")
	}
}

func TestPatternCacheReuse(t *testing.T) {
	ResetPatternCache()

	re1 := compilePattern(`\bTEST\b`)
	re2 := compilePattern(`\bTEST\b`)
	if re1 != re2 {
		t.Error("expected the same compiled pattern from the cache")
	}

	ResetPatternCache()
	if re3 := compilePattern(`\bTEST\b`); re3 == nil {
		t.Error("pattern should recompile after reset")
	}
}
