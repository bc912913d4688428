package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/scorarr/pkg/release"
	"github.com/vmunix/scorarr/pkg/release/format"
)

func mustProfile(t *testing.T, name string) Profile {
	t.Helper()
	p, ok := FindProfile(name)
	require.True(t, ok, "built-in profile %s", name)
	return p
}

func TestScoreRelease_CAMBannedEverywhere(t *testing.T) {
	// A CAM release is banned under every profile no matter how much the
	// rest of its attributes would score.
	name := "Movie.2024.2160p.CAM.x265.HDR10-GRP"

	for _, p := range Builtin() {
		res := ScoreRelease(name, p, nil)
		assert.True(t, res.Banned, "profile %s should ban CAM", p.Name)
		assert.True(t, math.IsInf(res.TotalScore, -1), "banned total must be -Inf")
		assert.False(t, res.MeetsMinimum)
		assert.Contains(t, res.BannedReasons, "CAM")
	}
}

func TestScoreRelease_ProfilesDisagree(t *testing.T) {
	// The same YTS encode is a liability under Quality and an asset under
	// Compact: score values are profile data, not format data.
	name := "Movie.2024.1080p.BluRay.x265-YTS.MX"

	quality := ScoreRelease(name, mustProfile(t, "Quality"), nil)
	compact := ScoreRelease(name, mustProfile(t, "Compact"), nil)

	assert.Greater(t, compact.TotalScore, quality.TotalScore)
	assert.Equal(t, float64(80), quality.TotalScore)  // 60 + 80 + 20 - 80
	assert.Equal(t, float64(220), compact.TotalScore) // 100 + 20 + 60 + 40
}

func TestScoreRelease_SingleHDRContribution(t *testing.T) {
	// dv-hdr10 releases satisfy several hdr formats; only one may score.
	res := ScoreRelease("Movie.2024.2160p.WEB-DL.DV.HDR10.x265-GRP", mustProfile(t, "Quality"), nil)

	hdrCount := 0
	for _, f := range res.Formats {
		if f.Category == format.CategoryHDR {
			hdrCount++
			assert.Equal(t, "hdr-dv-hdr10", f.ID)
		}
	}
	assert.Equal(t, 1, hdrCount, "exactly one hdr format must contribute")

	bd, ok := res.Breakdown[BucketHDR]
	require.True(t, ok)
	assert.Equal(t, 50, bd.Score)
	assert.Equal(t, []string{"DV HDR10"}, bd.Formats)
}

func TestScoreRelease_ZeroScoredFormatsStayInTrace(t *testing.T) {
	// Formats the profile does not weight still appear in the result so the
	// breakdown shows everything that was detected.
	p := Profile{ID: "t", Name: "t", FormatScores: map[string]int{"res-1080p": 10}}
	res := ScoreRelease("Movie.2024.1080p.BluRay.x264-GRP", p, nil)

	var ids []string
	for _, f := range res.Formats {
		ids = append(ids, f.ID)
	}
	assert.Contains(t, ids, "source-bluray", "unweighted matches stay in the trace")
	assert.Equal(t, float64(10), res.TotalScore)
}

func TestScoreRelease_Deterministic(t *testing.T) {
	name := "Movie.2024.2160p.AMZN.WEB-DL.DDP5.1.Atmos.DV.HDR10.x265-FLUX"
	p := mustProfile(t, "Streamer")

	first := ScoreRelease(name, p, nil)
	for i := 0; i < 5; i++ {
		again := ScoreRelease(name, p, nil)
		assert.Equal(t, first.TotalScore, again.TotalScore)
		assert.Equal(t, first.Formats, again.Formats)
		assert.Equal(t, first.Breakdown, again.Breakdown)
	}
}

func TestScoreRelease_PresetAttributes(t *testing.T) {
	// Caller-supplied attributes bypass parsing entirely.
	info := &release.Info{
		Title:      "whatever",
		Resolution: release.Resolution1080p,
		Source:     release.SourceWEBDL,
		Indexer:    "privatehd",
	}
	p := Profile{ID: "t", Name: "t", FormatScores: map[string]int{"res-1080p": 7}}

	res := ScoreRelease("ignored-name", p, &Options{Attributes: info})
	assert.Equal(t, float64(7), res.TotalScore)
	assert.Same(t, info, res.Info)
}

func TestScoreRelease_MovieSizeGate(t *testing.T) {
	p := mustProfile(t, "Quality") // movie bounds 4-100 GB
	name := "Movie.2024.2160p.BluRay.REMUX-FraMeSToR"

	tests := []struct {
		name     string
		sizeGB   float64
		rejected bool
	}{
		{"below minimum", 2, true},
		{"inside bounds", 40, false},
		{"above maximum", 120, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ScoreRelease(name, p, &Options{
				SizeBytes: int64(tt.sizeGB * (1 << 30)),
				Size:      &SizeContext{MediaType: MediaMovie},
			})
			assert.Equal(t, tt.rejected, res.SizeRejected)
			if tt.rejected {
				assert.NotEmpty(t, res.SizeReason)
				assert.False(t, res.MeetsMinimum)
			}
		})
	}
}

func TestScoreRelease_SeasonPackAveragesSize(t *testing.T) {
	p := Profile{
		ID: "t", Name: "t",
		FormatScores:     map[string]int{},
		EpisodeMaxSizeMB: 800,
	}
	opts := func(episodes int) *Options {
		return &Options{
			SizeBytes: 10 << 30, // 10 GB season total
			Size:      &SizeContext{MediaType: MediaTV, IsSeasonPack: true, EpisodeCount: episodes},
		}
	}

	// 10 GB over 10 episodes averages 1024 MB per episode, over the cap.
	res := ScoreRelease("Show.S01.1080p.WEB-DL-GRP", p, opts(10))
	assert.True(t, res.SizeRejected)

	// Over 20 episodes the average halves and passes.
	res = ScoreRelease("Show.S01.1080p.WEB-DL-GRP", p, opts(20))
	assert.False(t, res.SizeRejected)

	// Unknown episode count skips the gate rather than guessing.
	res = ScoreRelease("Show.S01.1080p.WEB-DL-GRP", p, opts(0))
	assert.False(t, res.SizeRejected)
}

func TestScoreRelease_SizeGateSkippedWithoutContext(t *testing.T) {
	p := mustProfile(t, "Quality")
	res := ScoreRelease("Movie.2024.2160p.BluRay.REMUX-FraMeSToR", p, &Options{SizeBytes: 1})
	assert.False(t, res.SizeRejected, "no size context means no size gate")
}

func TestScoreRelease_ProtocolGate(t *testing.T) {
	p := mustProfile(t, "Streamer") // usenet and streaming only
	name := "Show.S01E01.1080p.NF.WEB-DL.DDP5.1.x264-NTb"

	res := ScoreRelease(name, p, &Options{Protocol: ProtocolTorrent})
	assert.True(t, res.ProtocolRejected)
	assert.Contains(t, res.ProtocolReason, "torrent")
	assert.Contains(t, res.ProtocolReason, "usenet")
	assert.False(t, res.MeetsMinimum)

	res = ScoreRelease(name, p, &Options{Protocol: ProtocolUsenet})
	assert.False(t, res.ProtocolRejected)

	// No protocol supplied: the gate does not run.
	res = ScoreRelease(name, p, nil)
	assert.False(t, res.ProtocolRejected)

	// Empty allow-list accepts everything.
	open := mustProfile(t, "Balanced")
	res = ScoreRelease(name, open, &Options{Protocol: ProtocolTorrent})
	assert.False(t, res.ProtocolRejected)
}

func TestScoreRelease_MeetsMinimum(t *testing.T) {
	p := Profile{
		ID: "t", Name: "t", MinScore: 50,
		FormatScores: map[string]int{"res-1080p": 40, "res-2160p": 60},
	}

	low := ScoreRelease("Movie.2024.1080p.WEB-DL-GRP", p, nil)
	assert.False(t, low.MeetsMinimum)
	assert.False(t, low.Rejected(), "missing the minimum is not a hard rejection")

	high := ScoreRelease("Movie.2024.2160p.WEB-DL-GRP", p, nil)
	assert.True(t, high.MeetsMinimum)
}

func TestCompareReleases(t *testing.T) {
	p := mustProfile(t, "Balanced")

	got := CompareReleases(
		"Movie.2024.1080p.BluRay.x265-GRP",
		"Movie.2024.720p.HDTV.x264-GRP",
		p,
	)
	assert.Equal(t, WinnerRelease1, got)

	got = CompareReleases(
		"Movie.2024.720p.HDTV.x264-GRP",
		"Movie.2024.1080p.BluRay.x265-GRP",
		p,
	)
	assert.Equal(t, WinnerRelease2, got)

	// Identical releases tie; two banned releases tie at -Inf.
	same := "Movie.2024.1080p.WEB-DL.x264-GRP"
	assert.Equal(t, WinnerTie, CompareReleases(same, same, p))
	assert.Equal(t, WinnerTie, CompareReleases(
		"Movie.2024.CAM.x264-A", "Movie.2024.TELESYNC.x264-B", p))
}

func TestIsUpgrade_ResolutionBump(t *testing.T) {
	p := mustProfile(t, "Balanced")

	res := IsUpgrade(
		"Show.S01E01.720p.WEB-DL.x264-GRP",
		"Show.S01E01.1080p.WEB-DL.x264-GRP",
		p, &UpgradeOptions{MinimumImprovement: p.MinScoreIncrement},
	)
	assert.True(t, res.IsUpgrade)
	assert.Equal(t, float64(40), res.Improvement)
}

func TestIsUpgrade_RejectedCandidateNeverUpgrades(t *testing.T) {
	p := mustProfile(t, "Quality")

	// Candidate is banned: no upgrade even against a terrible existing file,
	// and no -Inf arithmetic leaks into the verdict.
	res := IsUpgrade(
		"Movie.2024.720p.HDTV.x264-GRP",
		"Movie.2024.2160p.CAM.x265-GRP",
		p, nil,
	)
	assert.False(t, res.IsUpgrade)
	assert.Zero(t, res.Improvement)
}

func TestIsUpgrade_BelowMinimumCandidate(t *testing.T) {
	p := Profile{
		ID: "t", Name: "t", MinScore: 100, UpgradesAllowed: true,
		FormatScores: map[string]int{"res-1080p": 50, "res-720p": 10},
	}

	res := IsUpgrade(
		"Movie.2024.720p.WEB-DL-GRP",
		"Movie.2024.1080p.WEB-DL-GRP",
		p, nil,
	)
	assert.False(t, res.IsUpgrade, "candidate below the profile minimum cannot upgrade")
}

func TestIsUpgrade_DisabledAndCapped(t *testing.T) {
	base := map[string]int{"res-1080p": 80, "res-720p": 40}

	disabled := Profile{ID: "t", Name: "t", FormatScores: base, UpgradesAllowed: false}
	res := IsUpgrade("Movie.720p.WEB-DL-GRP", "Movie.1080p.WEB-DL-GRP", disabled, nil)
	assert.False(t, res.IsUpgrade)
	assert.Equal(t, float64(40), res.Improvement, "improvement is still reported")

	capped := Profile{
		ID: "t", Name: "t", FormatScores: base,
		UpgradesAllowed: true, UpgradeUntilScore: 70,
	}
	// Existing already scores 80, past the upgrade-until threshold.
	res = IsUpgrade("Movie.1080p.WEB-DL-GRP", "Movie.1080p.BluRay.x265-GRP", capped, nil)
	assert.False(t, res.IsUpgrade)
}

func TestIsUpgrade_Sidegrade(t *testing.T) {
	p := Profile{
		ID: "t", Name: "t", UpgradesAllowed: true,
		FormatScores: map[string]int{"res-1080p": 80},
	}
	a := "Movie.2024.1080p.WEB-DL-GRP"
	b := "Movie.2024.1080p.WEBRip-GRP"

	res := IsUpgrade(a, b, p, nil)
	assert.False(t, res.IsUpgrade, "zero improvement is not an upgrade by default")

	res = IsUpgrade(a, b, p, &UpgradeOptions{AllowSidegrade: true})
	assert.True(t, res.IsUpgrade, "sidegrade accepts equal scores")
}

func TestRankReleases_RejectedAlwaysLast(t *testing.T) {
	p := mustProfile(t, "Quality")
	names := []string{
		"Movie.2024.2160p.CAM.x265-GRP", // banned, would otherwise rank high
		"Movie.2024.720p.HDTV.x264-GRP",
		"Movie.2024.2160p.BluRay.REMUX.TrueHD.Atmos-FraMeSToR",
		"Movie.2024.1080p.BluRay.x264-GRP",
	}

	ranked := RankReleases(names, p)
	require.Len(t, ranked, 4)

	assert.Equal(t, names[2], ranked[0].ReleaseName, "remux ranks first")
	assert.Equal(t, names[0], ranked[3].ReleaseName, "banned release ranks last")

	for i := 0; i < len(ranked)-1; i++ {
		if !ranked[i].Rejected() && !ranked[i+1].Rejected() {
			assert.GreaterOrEqual(t, ranked[i].TotalScore, ranked[i+1].TotalScore)
		}
		if ranked[i].Rejected() {
			assert.True(t, ranked[i+1].Rejected(), "rejected results stay contiguous at the tail")
		}
	}
}

func TestSortResults_StableOnTies(t *testing.T) {
	results := []Result{
		{ReleaseName: "a", TotalScore: 10},
		{ReleaseName: "b", TotalScore: 10},
		{ReleaseName: "c", TotalScore: 20},
	}
	SortResults(results)

	assert.Equal(t, "c", results[0].ReleaseName)
	assert.Equal(t, "a", results[1].ReleaseName, "ties keep input order")
	assert.Equal(t, "b", results[2].ReleaseName)
}

func TestFilterQualityReleases(t *testing.T) {
	p := mustProfile(t, "Balanced")
	names := []string{
		"Movie.2024.1080p.BluRay.x265-GRP",
		"Movie.2024.CAM.x264-GRP",
		"Movie.2024.1080p.WEB-DL.x264-GRP",
	}

	kept := FilterQualityReleases(names, p)
	require.Len(t, kept, 2)
	for _, res := range kept {
		assert.True(t, res.MeetsMinimum)
		assert.False(t, res.Rejected())
	}
}
