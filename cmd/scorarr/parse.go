package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/scorarr/pkg/release"
)

// parseInfoJSON is the JSON-friendly representation of parsed release info.
type parseInfoJSON struct {
	Title          string   `json:"title"`
	CleanTitle     string   `json:"clean_title"`
	Year           int      `json:"year,omitempty"`
	Season         int      `json:"season,omitempty"`
	Episode        int      `json:"episode,omitempty"`
	CompleteSeason bool     `json:"complete_season,omitempty"`
	Resolution     string   `json:"resolution"`
	Source         string   `json:"source"`
	Codec          string   `json:"codec"`
	HDR            string   `json:"hdr,omitempty"`
	Audio          string   `json:"audio,omitempty"`
	Remux          bool     `json:"remux,omitempty"`
	Repack         bool     `json:"repack,omitempty"`
	Proper         bool     `json:"proper,omitempty"`
	ThreeD         bool     `json:"3d,omitempty"`
	Service        string   `json:"service,omitempty"`
	Group          string   `json:"group,omitempty"`
	Languages      []string `json:"languages,omitempty"`
}

func toParseJSON(info *release.Info) parseInfoJSON {
	out := parseInfoJSON{
		Title:          info.Title,
		CleanTitle:     info.CleanTitle,
		Year:           info.Year,
		Season:         info.Season,
		Episode:        info.Episode,
		CompleteSeason: info.IsCompleteSeason,
		Resolution:     info.Resolution.String(),
		Source:         info.Source.String(),
		Codec:          info.Codec.String(),
		Remux:          info.IsRemux,
		Repack:         info.IsRepack,
		Proper:         info.IsProper,
		ThreeD:         info.Is3D,
		Service:        info.Service,
		Group:          info.Group,
		Languages:      info.Languages,
	}
	if info.HDR != release.HDRNone {
		out.HDR = info.HDR.String()
	}
	if info.Audio != release.AudioUnknown {
		out.Audio = info.Audio.String()
	}
	return out
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <release-name>...",
	Short: "Parse release names into structured attributes",
	Long: `Parse release names and print the extracted attributes.

Examples:
  scorarr parse "The.Matrix.1999.2160p.UHD.BluRay.x265-GROUP"
  scorarr parse --file releases.txt --json`,
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringP("file", "f", "", "Read release names from file (one per line)")
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	inputFile, _ := cmd.Flags().GetString("file")

	names, err := gatherNames(inputFile, args)
	if err != nil {
		return err
	}

	if jsonOutput {
		results := make([]parseInfoJSON, len(names))
		for i, name := range names {
			results[i] = toParseJSON(release.Parse(name))
		}
		if len(results) == 1 {
			return writeJSON(results[0])
		}
		return writeJSON(results)
	}

	for i, name := range names {
		if i > 0 {
			fmt.Println()
		}
		printInfo(release.Parse(name))
	}
	return nil
}

func printInfo(info *release.Info) {
	fmt.Printf("Title:       %s\n", info.Title)
	if info.Year > 0 {
		fmt.Printf("Year:        %d\n", info.Year)
	}
	if info.Season > 0 {
		fmt.Printf("Season:      %d\n", info.Season)
	}
	if info.Episode > 0 {
		fmt.Printf("Episode:     %d\n", info.Episode)
	}
	if info.IsCompleteSeason {
		fmt.Printf("Season pack: yes\n")
	}
	fmt.Printf("Resolution:  %s\n", info.Resolution)
	fmt.Printf("Source:      %s\n", info.Source)
	fmt.Printf("Codec:       %s\n", info.Codec)
	if info.HDR != release.HDRNone {
		fmt.Printf("HDR:         %s\n", info.HDR)
	}
	if info.Audio != release.AudioUnknown {
		fmt.Printf("Audio:       %s\n", info.Audio)
	}
	if info.IsRemux {
		fmt.Printf("Remux:       yes\n")
	}
	if info.IsRepack {
		fmt.Printf("Repack:      yes\n")
	}
	if info.IsProper {
		fmt.Printf("Proper:      yes\n")
	}
	if info.Service != "" {
		fmt.Printf("Service:     %s\n", info.Service)
	}
	if info.Group != "" {
		fmt.Printf("Group:       %s\n", info.Group)
	}
	if len(info.Languages) > 0 {
		fmt.Printf("Languages:   %v\n", info.Languages)
	}
	fmt.Printf("CleanTitle:  %s\n", info.CleanTitle)
}
