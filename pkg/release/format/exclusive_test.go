package format

import (
	"testing"

	"github.com/vmunix/scorarr/pkg/release"
)

func matchedIDs(results []Result) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.Format.ID
	}
	return ids
}

func TestResolveExclusive_SingleHDRSurvives(t *testing.T) {
	// A DV release with an HDR10 layer trips dv-hdr10, dv, hdr10, and the
	// bare HDR tag; only the highest-priority one may survive.
	info := release.Parse("Movie.2024.2160p.WEB-DL.DV.HDR10.x265-GRP")
	resolved := ResolveExclusive(MatchAll(info, Builtin()))

	var hdrIDs []string
	for _, r := range resolved {
		if r.Format.Category == CategoryHDR {
			hdrIDs = append(hdrIDs, r.Format.ID)
		}
	}
	if len(hdrIDs) != 1 {
		t.Fatalf("hdr matches after resolution = %v, want exactly one", hdrIDs)
	}
	if hdrIDs[0] != FormatDVHDR10 {
		t.Errorf("surviving hdr format = %s, want %s", hdrIDs[0], FormatDVHDR10)
	}
}

func TestResolveExclusive_OtherCategoriesPassThrough(t *testing.T) {
	info := release.Parse("Movie.2024.2160p.WEB-DL.DV.HDR10.x265-GRP")
	matched := MatchAll(info, Builtin())
	resolved := ResolveExclusive(matched)

	before := map[string]bool{}
	for _, id := range matchedIDs(matched) {
		before[id] = true
	}
	for _, want := range []string{"res-2160p", "source-webdl", "codec-x265"} {
		if !before[want] {
			t.Fatalf("precondition: %s should have matched", want)
		}
	}

	after := map[string]bool{}
	for _, id := range matchedIDs(resolved) {
		after[id] = true
	}
	for _, want := range []string{"res-2160p", "source-webdl", "codec-x265"} {
		if !after[want] {
			t.Errorf("%s must survive exclusivity resolution", want)
		}
	}
}

func TestResolveExclusive_NoHDRMatches(t *testing.T) {
	matched := []Result{
		{Format: CustomFormat{ID: "res-1080p", Category: CategoryResolution}, Matched: true},
		{Format: CustomFormat{ID: "codec-x264", Category: CategoryCodec}, Matched: true},
	}
	resolved := ResolveExclusive(matched)
	if len(resolved) != 2 {
		t.Errorf("len = %d, want 2: no hdr matches means no changes", len(resolved))
	}
}

func TestResolveExclusive_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{"dv beats hdr10+", []string{FormatHDR10Plus, FormatDV}, FormatDV},
		{"hdr10+ beats hdr10", []string{FormatHDR10, FormatHDR10Plus}, FormatHDR10Plus},
		{"generic beats hlg", []string{FormatHLG, FormatHDRGeneric}, FormatHDRGeneric},
		{"unknown id ranks last", []string{"hdr-custom-user", FormatSDR}, FormatSDR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var matched []Result
			for _, id := range tt.ids {
				matched = append(matched, Result{
					Format: CustomFormat{ID: id, Category: CategoryHDR}, Matched: true,
				})
			}
			resolved := ResolveExclusive(matched)
			if len(resolved) != 1 {
				t.Fatalf("len = %d, want 1", len(resolved))
			}
			if resolved[0].Format.ID != tt.want {
				t.Errorf("survivor = %s, want %s", resolved[0].Format.ID, tt.want)
			}
		})
	}
}
