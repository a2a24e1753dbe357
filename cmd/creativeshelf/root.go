package main

import (
	"context"
	"fmt"

	"github.com/creativeshelf/creativeshelf/internal/config"
	"github.com/creativeshelf/creativeshelf/internal/db"
	"github.com/creativeshelf/creativeshelf/internal/domain"
	"github.com/creativeshelf/creativeshelf/internal/library"
	"github.com/creativeshelf/creativeshelf/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgPath string
	cfg     config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "creativeshelf",
	Short:         "Reference library of short video creatives",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if cfg.Library.Debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "directory containing config.yaml")
	rootCmd.AddCommand(migrateCmd, listCmd, optionsCmd, submitCmd, exportCmd)
}

// app bundles the storage-backed services for one command invocation.
type app struct {
	conn    *db.Connection
	repo    repository.LibraryRepository
	library *library.Service
}

func newApp(ctx context.Context) (*app, error) {
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	repo := repository.NewLibraryRepository(conn.Pool)
	return &app{
		conn:    conn,
		repo:    repo,
		library: library.NewService(repo, logger, cfg.Library.PublicSampleLimit),
	}, nil
}

func (a *app) close() {
	a.conn.Close()
}

// facetFlagSet registers the three facet filter flags on a command. The
// literal value "none" selects rows where the facet is actually null.
type facetFlagSet struct {
	valueFocus    string
	visualSubject string
	emotionalTone string
}

func (f *facetFlagSet) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.valueFocus, "value-focus", "", "filter by value focus (\"none\" for null)")
	cmd.Flags().StringVar(&f.visualSubject, "visual-subject", "", "filter by visual subject (\"none\" for null)")
	cmd.Flags().StringVar(&f.emotionalTone, "emotional-tone", "", "filter by emotional tone (\"none\" for null)")
}

func (f *facetFlagSet) filter() domain.FacetFilter {
	return domain.FacetFilter{
		ValueFocus:    facetSelection(f.valueFocus),
		VisualSubject: facetSelection(f.visualSubject),
		EmotionalTone: facetSelection(f.emotionalTone),
	}
}

func facetSelection(flag string) *string {
	if flag == "" {
		return nil
	}
	value := flag
	if value == "none" {
		value = domain.FacetNull
	}
	return &value
}
