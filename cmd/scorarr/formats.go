package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/scorarr/pkg/release/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Inspect the custom format catalogue",
}

var formatsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every custom format",
	RunE:  runFormatsListCmd,
}

var formatsShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show one custom format with its conditions",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormatsShowCmd,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
	formatsCmd.AddCommand(formatsListCmd)
	formatsCmd.AddCommand(formatsShowCmd)
	formatsListCmd.Flags().String("category", "", "Only list formats in this category")
}

func runFormatsListCmd(cmd *cobra.Command, _ []string) error {
	category, _ := cmd.Flags().GetString("category")

	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	formats, err := cat.Formats(cmd.Context())
	if err != nil {
		return err
	}

	if category != "" {
		filtered := formats[:0]
		for _, f := range formats {
			if string(f.Category) == category {
				filtered = append(filtered, f)
			}
		}
		formats = filtered
	}

	if jsonOutput {
		return writeJSON(formats)
	}

	fmt.Printf("%-22s %-28s %s\n", "ID", "NAME", "CATEGORY")
	for _, f := range formats {
		fmt.Printf("%-22s %-28s %s\n", f.ID, f.Name, f.Category)
	}
	return nil
}

func runFormatsShowCmd(cmd *cobra.Command, args []string) error {
	cat, err := buildCatalog()
	if err != nil {
		return err
	}
	formats, err := cat.Formats(cmd.Context())
	if err != nil {
		return err
	}

	f, ok, suggestions := format.FindByName(args[0], formats)
	if !ok {
		if len(suggestions) > 0 {
			return fmt.Errorf("format %q not found, did you mean: %s",
				args[0], strings.Join(suggestions, ", "))
		}
		return fmt.Errorf("format %q not found", args[0])
	}

	if jsonOutput {
		return writeJSON(f)
	}

	fmt.Printf("ID:          %s\n", f.ID)
	fmt.Printf("Name:        %s\n", f.Name)
	fmt.Printf("Category:    %s\n", f.Category)
	if f.Description != "" {
		fmt.Printf("Description: %s\n", f.Description)
	}
	if len(f.Tags) > 0 {
		fmt.Printf("Tags:        %s\n", strings.Join(f.Tags, ", "))
	}
	fmt.Println("Conditions:")
	for _, c := range f.Conditions {
		kind := "optional"
		if c.Required {
			kind = "required"
		}
		neg := ""
		if c.Negate {
			neg = ", negated"
		}
		detail := c.Pattern
		if detail == "" {
			detail = c.Value
		}
		if detail == "" && c.Flag != "" {
			detail = string(c.Flag)
		}
		fmt.Printf("  %-24s %s (%s%s) %s\n", c.Name, c.Type, kind, neg, detail)
	}
	return nil
}
