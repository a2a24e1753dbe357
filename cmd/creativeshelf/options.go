package main

import (
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/domain"

	"github.com/spf13/cobra"
)

var optionsAdmin bool

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the selectable facet filter options",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		limit := cfg.Library.PublicSampleLimit
		if optionsAdmin {
			limit = cfg.Library.AdminSampleLimit
		}

		options, err := a.library.FacetOptions(ctx, limit)
		if err != nil {
			return err
		}

		printColumn("value focus", options.ValueFocus)
		printColumn("visual subject", options.VisualSubject)
		printColumn("emotional tone", options.EmotionalTone)
		return nil
	},
}

func init() {
	optionsCmd.Flags().BoolVar(&optionsAdmin, "admin", false, "use the administrative sample cap")
}

func printColumn(label string, options domain.FacetOptions) {
	fmt.Printf("%s:\n", label)
	for _, value := range options.Values {
		fmt.Printf("  %s\n", value)
	}
	if options.HasNull {
		fmt.Println("  (none)")
	}
}
