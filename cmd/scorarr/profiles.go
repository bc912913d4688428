package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect quality profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every quality profile",
	RunE:  runProfilesListCmd,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one profile's thresholds and format scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShowCmd,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
}

func runProfilesListCmd(cmd *cobra.Command, _ []string) error {
	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	profiles, err := cat.Profiles(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(profiles)
	}

	fmt.Printf("%-20s %-16s %s\n", "ID", "NAME", "DESCRIPTION")
	for _, p := range profiles {
		fmt.Printf("%-20s %-16s %s\n", p.ID, p.Name, p.Description)
	}
	return nil
}

func runProfilesShowCmd(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	p, err := cat.Profile(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(p)
	}

	fmt.Printf("ID:                %s\n", p.ID)
	fmt.Printf("Name:              %s\n", p.Name)
	if p.Description != "" {
		fmt.Printf("Description:       %s\n", p.Description)
	}
	fmt.Printf("Min score:         %.0f\n", p.MinScore)
	if p.UpgradeUntilScore > 0 {
		fmt.Printf("Upgrade until:     %.0f\n", p.UpgradeUntilScore)
	}
	if p.MinScoreIncrement > 0 {
		fmt.Printf("Min increment:     %.0f\n", p.MinScoreIncrement)
	}
	fmt.Printf("Upgrades allowed:  %v\n", p.UpgradesAllowed)
	if p.MovieMinSizeGB > 0 || p.MovieMaxSizeGB > 0 {
		fmt.Printf("Movie size:        %.1f-%.1f GB\n", p.MovieMinSizeGB, p.MovieMaxSizeGB)
	}
	if p.EpisodeMinSizeMB > 0 || p.EpisodeMaxSizeMB > 0 {
		fmt.Printf("Episode size:      %.0f-%.0f MB\n", p.EpisodeMinSizeMB, p.EpisodeMaxSizeMB)
	}
	if len(p.AllowedProtocols) > 0 {
		protos := make([]string, len(p.AllowedProtocols))
		for i, proto := range p.AllowedProtocols {
			protos[i] = string(proto)
		}
		fmt.Printf("Protocols:         %s\n", strings.Join(protos, ", "))
	}

	ids := make([]string, 0, len(p.FormatScores))
	for id := range p.FormatScores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := p.FormatScores[ids[i]], p.FormatScores[ids[j]]
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})

	fmt.Println("Format scores:")
	for _, id := range ids {
		fmt.Printf("  %-24s %+d\n", id, p.FormatScores[id])
	}
	return nil
}
