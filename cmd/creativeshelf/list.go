package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listFacets facetFlagSet

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List creatives, optionally filtered by facet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		result, err := a.library.Browse(ctx, listFacets.filter())
		if err != nil {
			return err
		}

		for _, record := range result.Records {
			fmt.Printf("%s  %s (%s)\n", record.YoutubeID, record.Title, record.ChannelName)
			if record.SummaryText != nil {
				fmt.Printf("    %s\n", *record.SummaryText)
			}
			facets := []string{
				facetLine("value focus", record.ValueFocus),
				facetLine("visual subject", record.VisualSubject),
				facetLine("emotional tone", record.EmotionalTone),
			}
			fmt.Printf("    %s\n", strings.Join(facets, " | "))
			for _, note := range record.Notes {
				fmt.Printf("    note: %s\n", note.NoteText)
				for _, point := range note.Points {
					fmt.Printf("      - %s\n", point)
				}
			}
		}
		fmt.Printf("%d creative(s)\n", len(result.Records))
		return nil
	},
}

func init() {
	listFacets.register(listCmd)
}

func facetLine(label string, value *string) string {
	if value == nil {
		return label + ": -"
	}
	return label + ": " + *value
}
