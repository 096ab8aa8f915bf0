package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// Status colours for human-readable output.
var (
	validStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	invalidStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
)

// styledStatus renders the overall status, skipping colour when stdout
// is not a terminal so piped output stays plain.
func styledStatus(status domain.Status) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return string(status)
	}

	switch status {
	case domain.StatusValid:
		return validStyle.Render(string(status))
	case domain.StatusWarning:
		return warningStyle.Render(string(status))
	case domain.StatusInvalid:
		return invalidStyle.Render(string(status))
	default:
		return string(status)
	}
}

// label renders a faint field label when stdout is a terminal.
func label(s string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return s
	}
	return labelStyle.Render(s)
}

// outputReportJSON prints the full report as indented JSON.
func outputReportJSON(cmd *cobra.Command, report *domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputReportSummary prints a human-readable digest of the report.
func outputReportSummary(cmd *cobra.Command, report *domain.Report) error {
	text := report.Extraction.Text
	meta := report.Extraction.Metadata
	format := report.Extraction.Format
	review := report.Review

	cmd.Printf("%s %s\n", label("Source:"), report.Input.SourceName)
	cmd.Printf("%s %s (confidence %.1f)\n", label("Format:"), format.DetectedType, format.Confidence)
	cmd.Printf("%s %d words, %d sentences, %d chars, %d bytes, %d lines\n",
		label("Counts:"), text.WordCount, text.SentenceCount, text.CharCount,
		meta.DataSizeBytes, meta.LineCount)
	cmd.Printf("%s %s\n", label("Language hint:"), meta.LanguageHint)
	cmd.Printf("%s %d/%d passed (score %.2f)\n",
		label("Validation:"),
		review.PointByPointValidation.Summary.Passed,
		review.PointByPointValidation.Summary.TotalChecks,
		review.PointByPointValidation.Summary.Score)
	cmd.Printf("%s %d alpha, %d numeric, %d mixed, %d unique\n",
		label("Words:"),
		review.WordByWordVerification.AlphaWords,
		review.WordByWordVerification.NumericWords,
		review.WordByWordVerification.AlphanumericWords,
		review.WordByWordVerification.UniqueWords)
	cmd.Printf("%s %s\n", label("SHA256:"), review.Hash.SHA256)
	cmd.Printf("%s %s\n", label("Status:"), styledStatus(review.OverallStatus))

	if report.Input.DataPreview != "" {
		cmd.Printf("%s %s\n", label("Preview:"), report.Input.DataPreview)
	}

	return nil
}

// outputReportLine prints a one-line digest, used by batch and watch.
func outputReportLine(cmd *cobra.Command, report *domain.Report) {
	cmd.Printf("%s  %-10s words=%-6d score=%.2f  %s\n",
		shortID(report.ID),
		report.Input.SourceName,
		report.Extraction.Text.WordCount,
		report.Review.PointByPointValidation.Summary.Score,
		styledStatus(report.Review.OverallStatus))
}

// shortID abbreviates a report ID for single-line listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
