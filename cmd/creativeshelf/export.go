package main

import (
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/export"

	"github.com/spf13/cobra"
)

var exportFacets facetFlagSet

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the filtered listing to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		service := export.NewService(a.library, logger, cfg.Library.ExportDir)
		path, err := service.ExportListing(ctx, exportFacets.filter())
		if err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	exportFacets.register(exportCmd)
}
