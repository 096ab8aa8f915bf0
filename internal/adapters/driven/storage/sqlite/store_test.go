package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

func testReport(id, sourceName string, wordCount int, createdAt time.Time) *domain.Report {
	return &domain.Report{
		ID: id,
		Input: domain.ReportInput{
			SourceName:  sourceName,
			DataPreview: "some text",
		},
		Extraction: domain.ExtractionRecord{
			Text: domain.TextStats{
				Raw:       "some text",
				Cleaned:   "some text",
				WordCount: wordCount,
			},
			Metadata: domain.SourceMetadata{
				SourceName: sourceName,
			},
		},
		Review: domain.ReviewRecord{
			OverallStatus: domain.StatusValid,
		},
		PipelineStatus: domain.PipelineStatusCompleted,
		CreatedAt:      createdAt,
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewStore(tmpDir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(tmpDir, "reports.db"), store.Path())

	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestStore_SaveAndGetReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := testReport("report-1", "input.txt", 12, time.Now().UTC().Truncate(time.Second))

	err := store.SaveReport(ctx, report)
	require.NoError(t, err)

	got, err := store.GetReport(ctx, "report-1")
	require.NoError(t, err)

	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, "input.txt", got.Input.SourceName)
	assert.Equal(t, 12, got.Extraction.Text.WordCount)
	assert.Equal(t, domain.StatusValid, got.Review.OverallStatus)
	assert.Equal(t, domain.PipelineStatusCompleted, got.PipelineStatus)
}

func TestStore_SaveReport_Nil(t *testing.T) {
	store := newTestStore(t)

	err := store.SaveReport(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStore_SaveReport_Overwrite(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	report := testReport("report-1", "first.txt", 3, time.Now().UTC())
	require.NoError(t, store.SaveReport(ctx, report))

	report.Input.SourceName = "second.txt"
	report.Extraction.Text.WordCount = 7
	require.NoError(t, store.SaveReport(ctx, report))

	got, err := store.GetReport(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "second.txt", got.Input.SourceName)
	assert.Equal(t, 7, got.Extraction.Text.WordCount)

	summaries, err := store.ListReports(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestStore_GetReport_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetReport(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_ListReports_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, store.SaveReport(ctx, testReport("old", "old.txt", 1, base.Add(-2*time.Hour))))
	require.NoError(t, store.SaveReport(ctx, testReport("new", "new.txt", 2, base)))
	require.NoError(t, store.SaveReport(ctx, testReport("mid", "mid.txt", 3, base.Add(-time.Hour))))

	summaries, err := store.ListReports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, summaries, 3)

	assert.Equal(t, "new", summaries[0].ID)
	assert.Equal(t, "mid", summaries[1].ID)
	assert.Equal(t, "old", summaries[2].ID)

	assert.Equal(t, "new.txt", summaries[0].SourceName)
	assert.Equal(t, domain.StatusValid, summaries[0].Status)
	assert.Equal(t, 2, summaries[0].WordCount)
}

func TestStore_ListReports_Limit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"a", "b", "c", "d"} {
		report := testReport(id, id+".txt", i, base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, store.SaveReport(ctx, report))
	}

	summaries, err := store.ListReports(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "d", summaries[0].ID)
	assert.Equal(t, "c", summaries[1].ID)
}

func TestStore_ListReports_Empty(t *testing.T) {
	store := newTestStore(t)

	summaries, err := store.ListReports(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestStore_DeleteReport(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveReport(ctx, testReport("report-1", "input.txt", 1, time.Now().UTC())))

	err := store.DeleteReport(ctx, "report-1")
	require.NoError(t, err)

	_, err = store.GetReport(ctx, "report-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteReport_NotFound(t *testing.T) {
	store := newTestStore(t)

	err := store.DeleteReport(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_Reopen(t *testing.T) {
	tmpDir := t.TempDir()
	ctx := context.Background()

	store1, err := NewStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.SaveReport(ctx, testReport("report-1", "input.txt", 4, time.Now().UTC())))
	require.NoError(t, store1.Close())

	// Reopening re-runs migrations against the existing schema
	store2, err := NewStore(tmpDir)
	require.NoError(t, err)
	defer store2.Close()

	got, err := store2.GetReport(ctx, "report-1")
	require.NoError(t, err)
	assert.Equal(t, "input.txt", got.Input.SourceName)
}
