package main

import (
	"github.com/creativeshelf/creativeshelf/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.RunMigrations(cfg.Database); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	},
}
