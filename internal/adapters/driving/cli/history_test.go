package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

// useTestDataDir points the history store at a throwaway directory.
func useTestDataDir(t *testing.T) {
	t.Helper()

	original := dataDir
	dataDir = t.TempDir()
	t.Cleanup(func() { dataDir = original })
}

func TestHistoryListCmd_Empty(t *testing.T) {
	wireTestPipeline(t)
	useTestDataDir(t)

	out, err := execute(t, "history", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "No stored reports.")
}

func TestHistory_SaveListShowDelete(t *testing.T) {
	wireTestPipeline(t)
	useTestDataDir(t)
	resetAnalyzeFlags(t)

	// Analyse and persist
	out, err := execute(t, "analyze",
		"--text", "Saved for later review. A second sentence.",
		"--name", "saved.txt",
		"--save")
	require.NoError(t, err)
	require.Contains(t, out, "Saved report ")

	// Pull the ID out of the confirmation line
	var reportID string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "Saved report ") {
			reportID = strings.TrimPrefix(line, "Saved report ")
		}
	}
	require.NotEmpty(t, reportID)

	// List shows it
	out, err = execute(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, reportID)
	assert.Contains(t, out, "saved.txt")

	// Show returns the full report
	out, err = execute(t, "history", "show", reportID)
	require.NoError(t, err)

	var report domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, reportID, report.ID)
	assert.Equal(t, "saved.txt", report.Input.SourceName)

	// Delete removes it
	out, err = execute(t, "history", "delete", reportID)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted report "+reportID)

	out, err = execute(t, "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No stored reports.")
}

func TestHistoryShowCmd_NotFound(t *testing.T) {
	wireTestPipeline(t)
	useTestDataDir(t)

	_, err := execute(t, "history", "show", "missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryDeleteCmd_NotFound(t *testing.T) {
	wireTestPipeline(t)
	useTestDataDir(t)

	_, err := execute(t, "history", "delete", "missing-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
