package driving

import (
	"context"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// PipelineService runs the two-stage extract-then-review analysis over
// raw text. Calls are pure given their inputs apart from the wall
// clock, so it is safe for concurrent use.
type PipelineService interface {
	// Process analyses a single request and assembles the report.
	// A nil request is rejected with domain.ErrInvalidInput; every
	// other input, however degenerate, produces a well-formed report.
	Process(ctx context.Context, req *domain.AnalysisRequest) (*domain.Report, error)

	// ProcessBatch applies Process to each item independently and
	// returns reports in input order. Items do not share state and a
	// degenerate item does not stop the batch.
	ProcessBatch(ctx context.Context, items []domain.AnalysisRequest) ([]domain.Report, error)
}
