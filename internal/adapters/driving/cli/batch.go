package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

var (
	batchJSON bool
	batchSave bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file...>",
	Short: "Analyse multiple files in order",
	Long: `Runs the pipeline over each file independently and reports results
in input order. A degenerate file (e.g. empty) still produces a report
with status INVALID; it does not stop the batch.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "output all reports as a JSON array")
	batchCmd.Flags().BoolVar(&batchSave, "save", false, "persist each report to the history store")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	items := make([]domain.AnalysisRequest, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		items = append(items, domain.AnalysisRequest{
			Text:       string(data),
			SourceName: filepath.Base(path),
		})
	}

	reports, err := pipelineService.ProcessBatch(cmd.Context(), items)
	if err != nil {
		return fmt.Errorf("batch analysis failed: %w", err)
	}

	if batchSave {
		store, err := openReportStore()
		if err != nil {
			return err
		}
		defer store.Close()

		for i := range reports {
			if err := store.SaveReport(cmd.Context(), &reports[i]); err != nil {
				return fmt.Errorf("saving report for %s: %w", reports[i].Input.SourceName, err)
			}
		}
	}

	if batchJSON {
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling reports: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for i := range reports {
		outputReportLine(cmd, &reports[i])
	}
	return nil
}
