package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect stored analysis reports",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <report-id>",
	Short: "Print a stored report as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <report-id>",
	Short: "Delete a stored report",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of reports to list")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	store, err := openReportStore()
	if err != nil {
		return err
	}
	defer store.Close()

	summaries, err := store.ListReports(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("listing reports: %w", err)
	}

	if len(summaries) == 0 {
		cmd.Println("No stored reports.")
		return nil
	}

	for _, s := range summaries {
		cmd.Printf("%s  %s  %-10s words=%-6d %s\n",
			s.ID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.SourceName,
			s.WordCount,
			styledStatus(s.Status))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openReportStore()
	if err != nil {
		return err
	}
	defer store.Close()

	report, err := store.GetReport(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("loading report %s: %w", args[0], err)
	}

	return outputReportJSON(cmd, report)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	store, err := openReportStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteReport(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting report %s: %w", args[0], err)
	}

	cmd.Printf("Deleted report %s\n", args[0])
	return nil
}
