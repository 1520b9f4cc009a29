package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/myjobmatch/skillgap/config"
	"github.com/myjobmatch/skillgap/storage"
	"github.com/myjobmatch/skillgap/taxonomy"
)

// loadConfig reads the environment and applies a --taxonomy override
func loadConfig(taxonomySource string) (*config.Config, error) {
	cfg := config.Load()
	if taxonomySource != "" {
		cfg.TaxonomySource = taxonomySource
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// loadTaxonomy resolves the configured taxonomy source
func loadTaxonomy(ctx context.Context, cfg *config.Config) (*taxonomy.Taxonomy, error) {
	return taxonomy.Load(ctx, cfg.TaxonomySource, cfg.TaxonomyFile, storage.NewFetcher(cfg))
}

// loadTaxonomyQuiet loads the taxonomy for CLI commands behind a spinner on
// stderr. Loader logging is suppressed so it does not interleave with output.
func loadTaxonomyQuiet(ctx context.Context, cfg *config.Config, showSpinner bool) (*taxonomy.Taxonomy, error) {
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)

	var s *spinner.Spinner
	if showSpinner {
		s = spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " Loading skill taxonomy..."
		s.Start()
	}

	tx, err := loadTaxonomy(ctx, cfg)

	if s != nil {
		s.Stop()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tx, nil
}

func printSuccess(w io.Writer, msg string) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "✓ %s\n", msg)
}
