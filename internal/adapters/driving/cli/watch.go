package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
	"github.com/custodia-labs/textpipe-cli/internal/core/ports/driven"
	"github.com/custodia-labs/textpipe-cli/internal/logger"
)

var (
	watchSave     bool
	watchInterval time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-analyse files in a directory as they change",
	Long: `Watches a directory and runs the pipeline over files as they are
created or written. Events are rate limited so editors that write in
bursts trigger a single analysis.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchSave, "save", false, "persist each report to the history store")
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 500*time.Millisecond, "minimum interval between analyses")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watching %s: %w", dir, domain.ErrInvalidInput)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	var store driven.ReportStore
	if watchSave {
		s, err := openReportStore()
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dir)

	for {
		select {
		case <-cmd.Context().Done():
			return nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !limiter.Allow() {
				continue
			}
			if err := analyzeWatchedFile(cmd, store, event.Name); err != nil {
				logger.Warn("analysing %s: %v", event.Name, err)
			}
		}
	}
}

// analyzeWatchedFile runs the pipeline over a changed file and prints
// a one-line result. Directories and unreadable paths are skipped.
func analyzeWatchedFile(cmd *cobra.Command, store driven.ReportStore, path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	report, err := pipelineService.Process(cmd.Context(), &domain.AnalysisRequest{
		Text:       string(data),
		SourceName: filepath.Base(path),
	})
	if err != nil {
		return err
	}

	if store != nil {
		if err := store.SaveReport(cmd.Context(), report); err != nil {
			return fmt.Errorf("saving report: %w", err)
		}
	}

	outputReportLine(cmd, report)
	return nil
}
