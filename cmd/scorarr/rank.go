package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/scorarr/pkg/release/scoring"
)

var rankCmd = &cobra.Command{
	Use:   "rank [flags] <release-name>...",
	Short: "Rank releases best-first under a quality profile",
	Long: `Score several releases and print them best-first. Banned, oversized,
and protocol-rejected releases always sort after acceptable ones.

Examples:
  scorarr rank "Movie.2024.2160p.WEB-DL-A" "Movie.2024.1080p.BluRay-B"
  scorarr rank --file candidates.txt --profile Quality --json`,
	RunE: runRankCmd,
}

func init() {
	rootCmd.AddCommand(rankCmd)
	rankCmd.Flags().StringP("profile", "p", "", "Quality profile name (default from config)")
	rankCmd.Flags().StringP("file", "f", "", "Read release names from file (one per line)")
	rankCmd.Flags().Int("workers", 0, "Concurrent scoring workers (0 = number of CPUs)")
}

func runRankCmd(cmd *cobra.Command, args []string) error {
	profileName, _ := cmd.Flags().GetString("profile")
	inputFile, _ := cmd.Flags().GetString("file")
	workers, _ := cmd.Flags().GetInt("workers")

	if profileName == "" {
		profileName = defaultProfileName()
	}

	names, err := gatherNames(inputFile, args)
	if err != nil {
		return err
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

	results, err := scoring.ScoreAll(ctx, names, profile, formats, workers)
	if err != nil {
		return err
	}
	scoring.SortResults(results)

	if jsonOutput {
		out := make([]scoreResultJSON, len(results))
		for i, res := range results {
			out[i] = toScoreJSON(res)
		}
		return writeJSON(out)
	}

	for i, res := range results {
		total := fmt.Sprintf("%+.0f", res.TotalScore)
		if res.Banned {
			total = "BANNED"
		}
		status := ""
		switch {
		case res.SizeRejected:
			status = "  [size: " + res.SizeReason + "]"
		case res.ProtocolRejected:
			status = "  [protocol: " + res.ProtocolReason + "]"
		case !res.MeetsMinimum:
			status = "  [below minimum]"
		}
		fmt.Printf("%2d. %-8s %s%s\n", i+1, total, res.ReleaseName, status)
	}
	return nil
}

// gatherNames merges positional release names with an optional input file.
func gatherNames(inputFile string, args []string) ([]string, error) {
	names := append([]string(nil), args...)
	if inputFile != "" {
		fromFile, err := readReleaseFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("reading file: %w", err)
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no release names given (pass names or --file)")
	}
	return names, nil
}

// readReleaseFile reads release names from a file, one per line. Blank
// lines and # comments are skipped.
func readReleaseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" && !strings.HasPrefix(line, "#") {
			names = append(names, line)
		}
	}
	return names, scanner.Err()
}
