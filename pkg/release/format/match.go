package format

import (
	"regexp"
	"strings"
	"sync"

	"github.com/vmunix/scorarr/pkg/release"
)

// patternCache memoizes compiled case-insensitive patterns for the process
// lifetime. Invalid patterns are cached as nil and never match. The cache is
// a pure performance optimization: clearing it changes latency, not results.
var patternCache = struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}{m: make(map[string]*regexp.Regexp)}

// compilePattern returns the cached case-insensitive regexp for pattern,
// or nil when the pattern does not compile.
func compilePattern(pattern string) *regexp.Regexp {
	patternCache.mu.RLock()
	re, ok := patternCache.m[pattern]
	patternCache.mu.RUnlock()
	if ok {
		return re
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		re = nil
	}

	patternCache.mu.Lock()
	patternCache.m[pattern] = re
	patternCache.mu.Unlock()
	return re
}

// ResetPatternCache clears the compiled-pattern cache. Intended for test
// isolation; safe to call at any time.
func ResetPatternCache() {
	patternCache.mu.Lock()
	patternCache.m = make(map[string]*regexp.Regexp)
	patternCache.mu.Unlock()
}

// ConditionResult records why a single condition did or did not hold.
// RawMatch is the predicate before negation; Matched is the final verdict.
type ConditionResult struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
	Negate   bool   `json:"negate,omitempty"`
	RawMatch bool   `json:"raw_match"`
	Matched  bool   `json:"matched"`
}

// EvaluateCondition tests one condition against release attributes.
// It never fails: unrecognized types, invalid patterns, and missing
// attributes all evaluate to a raw non-match.
func EvaluateCondition(cond Condition, info *release.Info) ConditionResult {
	raw := rawMatch(cond, info)
	matched := raw
	if cond.Negate {
		matched = !raw
	}
	return ConditionResult{
		Name:     cond.Name,
		Type:     string(cond.Type),
		Required: cond.Required,
		Negate:   cond.Negate,
		RawMatch: raw,
		Matched:  matched,
	}
}

func rawMatch(cond Condition, info *release.Info) bool {
	if info == nil {
		return false
	}

	switch cond.Type {
	case TypeResolution:
		return info.Resolution.String() == cond.Value
	case TypeSource:
		return info.Source.String() == cond.Value
	case TypeCodec:
		return info.Codec.String() == cond.Value
	case TypeHDR:
		return matchHDR(cond.Value, info.HDR)
	case TypeAudio:
		return matchAudio(cond.Value, info)
	case TypeService:
		return cond.Value != "" && strings.EqualFold(cond.Value, info.Service)
	case TypeFlag:
		return matchFlag(cond.Flag, info)
	case TypeReleaseTitle:
		return matchPattern(cond.Pattern, info.Title)
	case TypeReleaseGroup:
		return info.Group != "" && matchPattern(cond.Pattern, info.Group)
	case TypeIndexer:
		return info.Indexer != "" && matchPattern(cond.Pattern, info.Indexer)
	default:
		return false
	}
}

func matchPattern(pattern, s string) bool {
	re := compilePattern(pattern)
	return re != nil && re.MatchString(s)
}

// matchHDR compares an hdr condition value against the release HDR format.
// An empty value means SDR; "sdr" is an accepted alias for the same thing.
func matchHDR(value string, hdr release.HDRFormat) bool {
	if value == "" || strings.EqualFold(value, "sdr") {
		return hdr == release.HDRNone
	}
	return hdr.String() == value
}

// matchAudio compares an audio condition value against the primary audio
// codec. A value of "atmos" additionally matches when the raw title carries
// an Atmos tag: Atmos is frequently an add-on to the primary codec rather
// than the codec itself. This fallback is deliberate and applies to no
// other audio value.
func matchAudio(value string, info *release.Info) bool {
	if info.Audio.String() == value {
		return true
	}
	if value == "atmos" {
		return strings.Contains(strings.ToLower(info.Title), "atmos")
	}
	return false
}

func matchFlag(flag string, info *release.Info) bool {
	switch flag {
	case FlagRemux:
		return info.IsRemux
	case FlagRepack:
		return info.IsRepack
	case FlagProper:
		return info.IsProper
	case Flag3D:
		return info.Is3D
	default:
		return false
	}
}
