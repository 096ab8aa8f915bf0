package mcp

import (
	"context"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// mockPipelineService is a mock implementation of driving.PipelineService.
type mockPipelineService struct {
	report  *domain.Report
	reports []domain.Report
	err     error
}

func (m *mockPipelineService) Process(
	_ context.Context,
	_ *domain.AnalysisRequest,
) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockPipelineService) ProcessBatch(
	_ context.Context,
	_ []domain.AnalysisRequest,
) ([]domain.Report, error) {
	return m.reports, m.err
}

// mockReportStore is a mock implementation of driven.ReportStore.
type mockReportStore struct {
	saved     []*domain.Report
	report    *domain.Report
	summaries []domain.ReportSummary
	err       error
}

func (m *mockReportStore) SaveReport(_ context.Context, report *domain.Report) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, report)
	return nil
}

func (m *mockReportStore) GetReport(_ context.Context, _ string) (*domain.Report, error) {
	return m.report, m.err
}

func (m *mockReportStore) ListReports(_ context.Context, _ int) ([]domain.ReportSummary, error) {
	return m.summaries, m.err
}

func (m *mockReportStore) DeleteReport(_ context.Context, _ string) error {
	return m.err
}
