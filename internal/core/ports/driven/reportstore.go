package driven

import (
	"context"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// ReportStore persists analysis reports for later inspection.
// The pipeline is storage-free; only the history surfaces use this.
type ReportStore interface {
	// SaveReport stores a report. Saving an existing ID overwrites it.
	SaveReport(ctx context.Context, report *domain.Report) error

	// GetReport retrieves a report by ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	GetReport(ctx context.Context, id string) (*domain.Report, error)

	// ListReports returns summaries of the most recent reports,
	// newest first. A limit <= 0 means no limit.
	ListReports(ctx context.Context, limit int) ([]domain.ReportSummary, error)

	// DeleteReport removes a report by ID.
	// Returns domain.ErrNotFound if the ID is unknown.
	DeleteReport(ctx context.Context, id string) error
}
