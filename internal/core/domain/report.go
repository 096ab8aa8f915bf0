package domain

import "time"

// PipelineStatusCompleted is the terminal pipeline status. Processing
// either completes or errors before producing a report; there are no
// partial reports.
const PipelineStatusCompleted = "completed"

// ReportInput echoes the pipeline input for display and logging.
type ReportInput struct {
	SourceName string `json:"source_name"`

	// DataPreview is the first 100 characters of the raw text, with
	// "..." appended when the text is longer.
	DataPreview string `json:"data_preview"`
}

// Report is the combined pipeline output for a single input.
type Report struct {
	// ID is a unique identifier assigned when the report is created.
	ID string `json:"report_id"`

	Input      ReportInput      `json:"input"`
	Extraction ExtractionRecord `json:"extraction"`
	Review     ReviewRecord     `json:"review"`

	// PipelineStatus is always "completed" on a returned report.
	PipelineStatus string `json:"pipeline_status"`

	// CreatedAt is when the report was produced.
	CreatedAt time.Time `json:"created_at"`
}

// ReportSummary is a lightweight view of a stored report, used for
// history listings.
type ReportSummary struct {
	ID         string    `json:"report_id"`
	SourceName string    `json:"source_name"`
	Status     Status    `json:"status"`
	WordCount  int       `json:"word_count"`
	CreatedAt  time.Time `json:"created_at"`
}
