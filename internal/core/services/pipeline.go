package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
	"github.com/custodia-labs/textpipe-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textpipe-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.PipelineService = (*Pipeline)(nil)

// previewLimit is the character budget of the report's data preview.
const previewLimit = 100

// Pipeline composes the extractor and reviewer into the full
// extract-then-review flow. Data flows one direction; there is no
// shared mutable state between calls.
type Pipeline struct {
	extractor *Extractor
	reviewer  *Reviewer
}

// NewPipeline creates a pipeline over the given extractor and reviewer.
func NewPipeline(extractor *Extractor, reviewer *Reviewer) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		reviewer:  reviewer,
	}
}

// Process analyses a single request and assembles the report.
func (p *Pipeline) Process(_ context.Context, req *domain.AnalysisRequest) (*domain.Report, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput
	}

	sourceName := req.SourceName
	if sourceName == "" {
		sourceName = domain.DefaultSourceName
	}

	logger.Debug("extracting %q (%d bytes)", sourceName, len(req.Text))
	extraction := p.extractor.Extract(req.Text, sourceName)

	review := p.reviewer.Review(extraction)
	logger.Debug("review of %q: status=%s score=%.2f",
		sourceName, review.OverallStatus, review.PointByPointValidation.Summary.Score)

	return &domain.Report{
		ID: uuid.New().String(),
		Input: domain.ReportInput{
			SourceName:  sourceName,
			DataPreview: preview(req.Text),
		},
		Extraction:     extraction,
		Review:         review,
		PipelineStatus: domain.PipelineStatusCompleted,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// ProcessBatch applies Process to each item independently, in order.
func (p *Pipeline) ProcessBatch(ctx context.Context, items []domain.AnalysisRequest) ([]domain.Report, error) {
	reports := make([]domain.Report, 0, len(items))

	for i := range items {
		report, err := p.Process(ctx, &items[i])
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	return reports, nil
}

// preview returns the first previewLimit characters of the raw input,
// marking truncation with an ellipsis.
func preview(data string) string {
	runes := []rune(data)
	if len(runes) <= previewLimit {
		return data
	}
	return string(runes[:previewLimit]) + "..."
}
