// Package cli implements the cobra command tree for the textpipe binary.
// Commands talk to the core through the driving ports; service wiring
// happens once in the persistent pre-run.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textpipe-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/textpipe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe-cli/internal/core/services"
	"github.com/custodia-labs/textpipe-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Global flags.
var (
	verboseFlag bool
	configDir   string
	dataDir     string
)

// Services shared by subcommands, wired in initServices.
var (
	pipelineService driving.PipelineService
	configStore     driven.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "textpipe",
	Short: "Analyse unstructured text into structured reports",
	Long: `Textpipe runs a two-stage analysis pipeline over raw text:
extraction (cleaning, sentence/word segmentation, format detection,
provenance metadata) followed by review (validation checks, word-level
verification and content digests).`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.textpipe)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory for report history (default ~/.textpipe/data)")
}

// initServices wires the pipeline from configuration. The report store
// is opened lazily by the commands that need it, so read-only commands
// never touch the database.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)

	// Tests may pre-wire a pipeline; don't overwrite it.
	if pipelineService != nil {
		return nil
	}

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	var extractorOpts []services.ExtractorOption
	if formats := cfg.GetStringSlice(file.KeySupportedFormats); len(formats) > 0 {
		extractorOpts = append(extractorOpts, services.WithSupportedFormats(formats))
	}

	var reviewerOpts []services.ReviewerOption
	if minWords := cfg.GetInt(file.KeyMinWords); minWords > 0 {
		reviewerOpts = append(reviewerOpts, services.WithMinWords(minWords))
	}
	if minChars := cfg.GetInt(file.KeyMinChars); minChars > 0 {
		reviewerOpts = append(reviewerOpts, services.WithMinChars(minChars))
	}

	pipelineService = services.NewPipeline(
		services.NewExtractor(extractorOpts...),
		services.NewReviewer(reviewerOpts...),
	)

	return nil
}

// openReportStore opens the SQLite-backed history store.
// Callers must Close it.
func openReportStore() (*sqlite.Store, error) {
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("opening report store: %w", err)
	}
	return store, nil
}
