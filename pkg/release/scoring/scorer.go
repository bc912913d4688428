package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/vmunix/scorarr/pkg/release"
	"github.com/vmunix/scorarr/pkg/release/format"
)

// MediaType selects which size bounds apply.
type MediaType string

const (
	MediaMovie MediaType = "movie"
	MediaTV    MediaType = "tv"
)

// SizeContext describes what a byte size refers to. For season packs the
// total size is averaged over EpisodeCount before validation; when the
// count is unknown (zero or negative) size validation is skipped entirely.
type SizeContext struct {
	MediaType    MediaType
	IsSeasonPack bool
	EpisodeCount int
}

// Options carries the optional per-call context for ScoreRelease.
// Attributes skips parsing; Formats overrides the built-in catalogue
// (callers merge user formats in); SizeBytes plus Size enables the size
// gate; Protocol enables the protocol gate.
type Options struct {
	Attributes *release.Info
	Formats    []format.CustomFormat
	SizeBytes  int64
	Size       *SizeContext
	Protocol   Protocol
}

// Bucket is a fixed breakdown category.
type Bucket string

const (
	BucketResolution  Bucket = "resolution"
	BucketSource      Bucket = "source"
	BucketCodec       Bucket = "codec"
	BucketAudio       Bucket = "audio"
	BucketHDR         Bucket = "hdr"
	BucketStreaming   Bucket = "streaming"
	BucketGroupTier   Bucket = "releaseGroupTier"
	BucketBanned      Bucket = "banned"
	BucketEnhancement Bucket = "enhancement"
)

// Buckets lists every breakdown bucket in display order.
var Buckets = []Bucket{
	BucketResolution, BucketSource, BucketCodec, BucketAudio, BucketHDR,
	BucketStreaming, BucketGroupTier, BucketBanned, BucketEnhancement,
}

// categoryBucket maps format categories onto breakdown buckets. The micro
// and low_quality categories both roll into the releaseGroupTier bucket:
// they describe who made the release, same as group tiers. "other" rolls
// into enhancement.
var categoryBucket = map[format.Category]Bucket{
	format.CategoryResolution:  BucketResolution,
	format.CategorySource:      BucketSource,
	format.CategoryCodec:       BucketCodec,
	format.CategoryAudio:       BucketAudio,
	format.CategoryHDR:         BucketHDR,
	format.CategoryStreaming:   BucketStreaming,
	format.CategoryGroupTier:   BucketGroupTier,
	format.CategoryMicro:       BucketGroupTier,
	format.CategoryLowQuality:  BucketGroupTier,
	format.CategoryBanned:      BucketBanned,
	format.CategoryEnhancement: BucketEnhancement,
	format.CategoryOther:       BucketEnhancement,
}

// ScoredFormat is one matched format with its resolved score contribution
// and condition-level trace.
type ScoredFormat struct {
	ID         string
	Name       string
	Category   format.Category
	Score      int
	Conditions []format.ConditionResult
}

// BucketBreakdown is the per-bucket subtotal with contributing format names.
type BucketBreakdown struct {
	Score   int
	Formats []string
}

// Result is the complete scoring verdict for one release. It is computed
// fresh on every call and is a pure function of its inputs.
type Result struct {
	ReleaseName string
	Profile     string
	Info        *release.Info

	// TotalScore is the sum of matched-format scores, or -Inf when banned.
	TotalScore float64
	Formats    []ScoredFormat
	Breakdown  map[Bucket]BucketBreakdown

	MeetsMinimum  bool
	Banned        bool
	BannedReasons []string

	SizeRejected bool
	SizeReason   string

	ProtocolRejected bool
	ProtocolReason   string
}

// Rejected reports whether the release failed any hard gate.
func (r Result) Rejected() bool {
	return r.Banned || r.SizeRejected || r.ProtocolRejected
}

// ScoreRelease scores one release against a profile. Deterministic and
// side-effect-free: the same inputs always produce an identical result.
// opts may be nil.
func ScoreRelease(name string, profile Profile, opts *Options) Result {
	if opts == nil {
		opts = &Options{}
	}

	info := opts.Attributes
	if info == nil {
		info = release.Parse(name)
	}

	formats := opts.Formats
	if formats == nil {
		formats = format.Builtin()
	}

	matched := format.ResolveExclusive(format.MatchAll(info, formats))

	res := Result{
		ReleaseName: name,
		Profile:     profile.Name,
		Info:        info,
		Breakdown:   make(map[Bucket]BucketBreakdown),
	}

	total := 0
	for _, m := range matched {
		score := profile.Score(m.Format.ID)
		// Zero-scored formats stay in the trace: the breakdown shows
		// everything that matched, weighted or not.
		res.Formats = append(res.Formats, ScoredFormat{
			ID:         m.Format.ID,
			Name:       m.Format.Name,
			Category:   m.Format.Category,
			Score:      score,
			Conditions: m.Conditions,
		})
		total += score

		bucket := categoryBucket[m.Format.Category]
		bd := res.Breakdown[bucket]
		bd.Score += score
		bd.Formats = append(bd.Formats, m.Format.Name)
		res.Breakdown[bucket] = bd

		if score <= BanScore {
			res.Banned = true
			res.BannedReasons = append(res.BannedReasons, m.Format.Name)
		}
	}

	res.TotalScore = float64(total)
	if res.Banned {
		res.TotalScore = math.Inf(-1)
	}

	validateSize(&res, profile, opts)
	validateProtocol(&res, profile, opts.Protocol)

	res.MeetsMinimum = !res.Banned && !res.SizeRejected && !res.ProtocolRejected &&
		res.TotalScore >= profile.MinScore

	return res
}

const (
	bytesPerGB = float64(1 << 30)
	bytesPerMB = float64(1 << 20)
)

// validateSize applies the profile's size bounds. Runs only when both a
// byte size and a size context were supplied.
func validateSize(res *Result, profile Profile, opts *Options) {
	if opts.SizeBytes <= 0 || opts.Size == nil {
		return
	}

	switch opts.Size.MediaType {
	case MediaMovie:
		gb := float64(opts.SizeBytes) / bytesPerGB
		switch {
		case profile.MovieMinSizeGB > 0 && gb < profile.MovieMinSizeGB:
			res.SizeRejected = true
			res.SizeReason = fmt.Sprintf("size %.2f GB below minimum %.1f GB", gb, profile.MovieMinSizeGB)
		case profile.MovieMaxSizeGB > 0 && gb > profile.MovieMaxSizeGB:
			res.SizeRejected = true
			res.SizeReason = fmt.Sprintf("size %.2f GB exceeds maximum %.1f GB", gb, profile.MovieMaxSizeGB)
		}

	case MediaTV:
		mb := float64(opts.SizeBytes) / bytesPerMB
		if opts.Size.IsSeasonPack {
			// Season packs are validated on the per-episode average.
			// Unknown episode counts skip validation entirely rather
			// than guess; arbitrarily large unknown-count packs pass.
			if opts.Size.EpisodeCount <= 0 {
				return
			}
			mb /= float64(opts.Size.EpisodeCount)
		}
		switch {
		case profile.EpisodeMinSizeMB > 0 && mb < profile.EpisodeMinSizeMB:
			res.SizeRejected = true
			res.SizeReason = fmt.Sprintf("episode size %.0f MB below minimum %.0f MB", mb, profile.EpisodeMinSizeMB)
		case profile.EpisodeMaxSizeMB > 0 && mb > profile.EpisodeMaxSizeMB:
			res.SizeRejected = true
			res.SizeReason = fmt.Sprintf("episode size %.0f MB exceeds maximum %.0f MB", mb, profile.EpisodeMaxSizeMB)
		}
	}
}

// validateProtocol applies the profile's protocol allow-list. Runs only
// when both a protocol and a non-empty allow-list were supplied.
func validateProtocol(res *Result, profile Profile, proto Protocol) {
	if proto == "" || len(profile.AllowedProtocols) == 0 {
		return
	}
	if profile.AllowsProtocol(proto) {
		return
	}
	allowed := make([]string, len(profile.AllowedProtocols))
	for i, p := range profile.AllowedProtocols {
		allowed[i] = string(p)
	}
	res.ProtocolRejected = true
	res.ProtocolReason = fmt.Sprintf("protocol %q not in allowed set %v", proto, allowed)
}

// Winner identifies which of two compared releases scored higher.
type Winner string

const (
	WinnerRelease1 Winner = "release1"
	WinnerRelease2 Winner = "release2"
	WinnerTie      Winner = "tie"
)

// CompareReleases scores two releases and picks the strict winner.
// Equal totals tie, including when both are banned (-Inf either side).
func CompareReleases(a, b string, profile Profile) Winner {
	sa := ScoreRelease(a, profile, nil)
	sb := ScoreRelease(b, profile, nil)
	switch {
	case sa.TotalScore > sb.TotalScore:
		return WinnerRelease1
	case sb.TotalScore > sa.TotalScore:
		return WinnerRelease2
	default:
		return WinnerTie
	}
}

// UpgradeOptions tunes the upgrade decision. MinimumImprovement defaults to
// zero; callers usually pass the profile's MinScoreIncrement.
type UpgradeOptions struct {
	MinimumImprovement float64
	AllowSidegrade     bool
}

// UpgradeResult is the verdict of an upgrade check.
type UpgradeResult struct {
	IsUpgrade   bool
	Improvement float64
}

// IsUpgrade decides whether candidate should replace existing under the
// given profile. A candidate that is banned, size- or protocol-rejected,
// or fails the profile minimum can never be an upgrade regardless of raw
// score; that is checked before any score arithmetic. A profile with
// upgrades disabled, or an existing release already at the profile's
// upgrade-until score, also never upgrades. opts may be nil.
func IsUpgrade(existing, candidate string, profile Profile, opts *UpgradeOptions) UpgradeResult {
	if opts == nil {
		opts = &UpgradeOptions{}
	}

	cand := ScoreRelease(candidate, profile, nil)
	if cand.Rejected() || !cand.MeetsMinimum {
		return UpgradeResult{}
	}

	cur := ScoreRelease(existing, profile, nil)
	improvement := cand.TotalScore - cur.TotalScore

	if !profile.UpgradesAllowed {
		return UpgradeResult{Improvement: improvement}
	}
	if profile.UpgradeUntilScore > 0 && cur.TotalScore >= profile.UpgradeUntilScore {
		return UpgradeResult{Improvement: improvement}
	}

	ok := improvement > opts.MinimumImprovement
	if opts.AllowSidegrade {
		ok = improvement >= opts.MinimumImprovement
	}
	return UpgradeResult{IsUpgrade: ok, Improvement: improvement}
}

// RankReleases scores every name and returns results best-first. Rejected
// releases always sort after every non-rejected one regardless of score;
// within each group ordering is descending by total, ties keeping input
// order (stable).
func RankReleases(names []string, profile Profile) []Result {
	results := make([]Result, 0, len(names))
	for _, name := range names {
		results = append(results, ScoreRelease(name, profile, nil))
	}
	SortResults(results)
	return results
}

// SortResults orders already-scored results with RankReleases semantics.
func SortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Rejected() != results[j].Rejected() {
			return !results[i].Rejected()
		}
		return results[i].TotalScore > results[j].TotalScore
	})
}

// FilterQualityReleases scores every name and keeps only acceptable
// releases: those that meet the profile minimum and failed no gate.
func FilterQualityReleases(names []string, profile Profile) []Result {
	var kept []Result
	for _, name := range names {
		res := ScoreRelease(name, profile, nil)
		if res.MeetsMinimum && !res.Rejected() {
			kept = append(kept, res)
		}
	}
	return kept
}
