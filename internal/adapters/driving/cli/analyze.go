package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

var (
	analyzeText string
	analyzeName string
	analyzeJSON bool
	analyzeSave bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyse a text blob or file",
	Long: `Runs the full extraction and review pipeline over a single input.

The input comes from a file argument, from --text, or from stdin when
the argument is "-" or absent. The source name defaults to the file
name and drives extension-based format detection; override it with
--name.

Examples:
  textpipe analyze notes.txt
  textpipe analyze --text "Hello world. This is a test." --name test.txt
  cat data.json | textpipe analyze - --name data.json --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeText, "text", "t", "", "analyse this text instead of reading a file")
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "source name used for format detection")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the full report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "persist the report to the history store")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, name, err := readAnalyzeInput(cmd, args)
	if err != nil {
		return err
	}
	if analyzeName != "" {
		name = analyzeName
	}

	report, err := pipelineService.Process(cmd.Context(), &domain.AnalysisRequest{
		Text:       text,
		SourceName: name,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeSave {
		if err := saveReport(cmd, report); err != nil {
			return err
		}
	}

	if analyzeJSON {
		return outputReportJSON(cmd, report)
	}
	return outputReportSummary(cmd, report)
}

// readAnalyzeInput resolves the text and default source name from the
// command line: --text wins, then a file argument, then stdin.
func readAnalyzeInput(cmd *cobra.Command, args []string) (text, name string, err error) {
	if analyzeText != "" {
		return analyzeText, "", nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), filepath.Base(args[0]), nil
}

// saveReport persists a report to the history store.
func saveReport(cmd *cobra.Command, report *domain.Report) error {
	store, err := openReportStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveReport(cmd.Context(), report); err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	cmd.Printf("Saved report %s\n", report.ID)
	return nil
}
