package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/scorarr/pkg/release/scoring"
)

// scoreResultJSON is the JSON-friendly representation of a scoring result.
// TotalScore is omitted for banned releases since -Inf has no JSON encoding.
type scoreResultJSON struct {
	Release          string                     `json:"release"`
	Profile          string                     `json:"profile"`
	TotalScore       *float64                   `json:"total_score,omitempty"`
	Banned           bool                       `json:"banned"`
	BannedReasons    []string                   `json:"banned_reasons,omitempty"`
	MeetsMinimum     bool                       `json:"meets_minimum"`
	SizeRejected     bool                       `json:"size_rejected,omitempty"`
	SizeReason       string                     `json:"size_reason,omitempty"`
	ProtocolRejected bool                       `json:"protocol_rejected,omitempty"`
	ProtocolReason   string                     `json:"protocol_reason,omitempty"`
	Formats          []scoreFormatJSON          `json:"formats"`
	Breakdown        map[string]scoreBucketJSON `json:"breakdown"`
}

type scoreFormatJSON struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Score    int    `json:"score"`
}

type scoreBucketJSON struct {
	Score   int      `json:"score"`
	Formats []string `json:"formats"`
}

func toScoreJSON(res scoring.Result) scoreResultJSON {
	out := scoreResultJSON{
		Release:          res.ReleaseName,
		Profile:          res.Profile,
		Banned:           res.Banned,
		BannedReasons:    res.BannedReasons,
		MeetsMinimum:     res.MeetsMinimum,
		SizeRejected:     res.SizeRejected,
		SizeReason:       res.SizeReason,
		ProtocolRejected: res.ProtocolRejected,
		ProtocolReason:   res.ProtocolReason,
		Formats:          make([]scoreFormatJSON, 0, len(res.Formats)),
		Breakdown:        make(map[string]scoreBucketJSON, len(res.Breakdown)),
	}
	if !res.Banned {
		total := res.TotalScore
		out.TotalScore = &total
	}
	for _, f := range res.Formats {
		out.Formats = append(out.Formats, scoreFormatJSON{
			ID:       f.ID,
			Name:     f.Name,
			Category: string(f.Category),
			Score:    f.Score,
		})
	}
	for bucket, bd := range res.Breakdown {
		out.Breakdown[string(bucket)] = scoreBucketJSON{Score: bd.Score, Formats: bd.Formats}
	}
	return out
}

var scoreCmd = &cobra.Command{
	Use:   "score [flags] <release-name>",
	Short: "Score a release against a quality profile",
	Long: `Score a release name against a quality profile and explain the result.

Examples:
  scorarr score "The.Matrix.1999.2160p.UHD.BluRay.REMUX.TrueHD.Atmos-FraMeSToR"
  scorarr score --profile Compact "Movie.2024.1080p.BluRay.x265-YTS.MX"
  scorarr score --size 9GB --media movie "Movie.2024.2160p.WEB-DL.x265-GRP"
  scorarr score --size 10GB --media tv --season-pack --episodes 10 "Show.S01.1080p.WEB-DL-GRP"`,
	Args: cobra.ExactArgs(1),
	RunE: runScoreCmd,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringP("profile", "p", "", "Quality profile name (default from config)")
	scoreCmd.Flags().String("size", "", "Release size for the size gate (e.g. 9GB, 800MB)")
	scoreCmd.Flags().String("media", "movie", "Media type for size validation (movie or tv)")
	scoreCmd.Flags().Bool("season-pack", false, "Treat the size as a whole-season total")
	scoreCmd.Flags().Int("episodes", 0, "Episode count for season pack size averaging")
	scoreCmd.Flags().String("protocol", "", "Delivery protocol for the protocol gate (torrent, usenet, streaming)")
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	profileName, _ := cmd.Flags().GetString("profile")
	sizeStr, _ := cmd.Flags().GetString("size")
	media, _ := cmd.Flags().GetString("media")
	seasonPack, _ := cmd.Flags().GetBool("season-pack")
	episodes, _ := cmd.Flags().GetInt("episodes")
	protocol, _ := cmd.Flags().GetString("protocol")

	if profileName == "" {
		profileName = defaultProfileName()
	}

	cat, err := buildCatalog()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	profile, err := cat.Profile(ctx, profileName)
	if err != nil {
		return err
	}
	formats, err := cat.Formats(ctx)
	if err != nil {
		return err
	}

	opts := &scoring.Options{
		Formats:  formats,
		Protocol: scoring.Protocol(protocol),
	}
	if sizeStr != "" {
		bytes, err := parseSize(sizeStr)
		if err != nil {
			return err
		}
		mediaType := scoring.MediaMovie
		if media == "tv" {
			mediaType = scoring.MediaTV
		}
		opts.SizeBytes = bytes
		opts.Size = &scoring.SizeContext{
			MediaType:    mediaType,
			IsSeasonPack: seasonPack,
			EpisodeCount: episodes,
		}
	}

	res := scoring.ScoreRelease(args[0], profile, opts)

	if jsonOutput {
		return writeJSON(toScoreJSON(res))
	}
	fmt.Print(scoring.Explain(res))
	return nil
}

// parseSize converts a human size like "9GB" or "800MB" into bytes. Bare
// numbers are taken as bytes.
func parseSize(s string) (int64, error) {
	var value float64
	var unit string
	if _, err := fmt.Sscanf(s, "%f%s", &value, &unit); err != nil {
		if _, err := fmt.Sscanf(s, "%f", &value); err != nil {
			return 0, fmt.Errorf("invalid size %q", s)
		}
	}
	switch unit {
	case "", "B", "b":
		return int64(value), nil
	case "KB", "kb", "K", "k":
		return int64(value * (1 << 10)), nil
	case "MB", "mb", "M", "m":
		return int64(value * (1 << 20)), nil
	case "GB", "gb", "G", "g":
		return int64(value * (1 << 30)), nil
	case "TB", "tb", "T", "t":
		return int64(value * (1 << 40)), nil
	default:
		return 0, fmt.Errorf("invalid size unit %q", unit)
	}
}

// writeJSON encodes v to stdout with indentation.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
