package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe-cli/internal/core/domain"
)

func resetBatchFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		batchJSON = false
		batchSave = false
	})
}

func writeBatchFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestBatchCmd_JSON_PreservesOrder(t *testing.T) {
	wireTestPipeline(t)
	resetBatchFlags(t)

	dir := t.TempDir()
	first := writeBatchFile(t, dir, "first.txt", "One sentence here.")
	second := writeBatchFile(t, dir, "second.txt", "Another short sentence. And one more.")

	out, err := execute(t, "batch", first, second, "--json")
	require.NoError(t, err)

	var reports []domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, "first.txt", reports[0].Input.SourceName)
	assert.Equal(t, "second.txt", reports[1].Input.SourceName)
	assert.NotEqual(t, reports[0].ID, reports[1].ID)
}

func TestBatchCmd_LineOutput(t *testing.T) {
	wireTestPipeline(t)
	resetBatchFlags(t)

	dir := t.TempDir()
	path := writeBatchFile(t, dir, "only.txt", "A single file in the batch.")

	out, err := execute(t, "batch", path)
	require.NoError(t, err)

	assert.Contains(t, out, "only.txt")
	assert.Contains(t, out, string(domain.StatusValid))
}

func TestBatchCmd_EmptyFileDoesNotStopBatch(t *testing.T) {
	wireTestPipeline(t)
	resetBatchFlags(t)

	dir := t.TempDir()
	empty := writeBatchFile(t, dir, "empty.txt", "")
	full := writeBatchFile(t, dir, "full.txt", "Plenty of words in this second file.")

	out, err := execute(t, "batch", empty, full, "--json")
	require.NoError(t, err)

	var reports []domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)

	assert.Equal(t, domain.StatusInvalid, reports[0].Review.OverallStatus)
	assert.Equal(t, domain.StatusValid, reports[1].Review.OverallStatus)
}

func TestBatchCmd_MissingFile(t *testing.T) {
	wireTestPipeline(t)
	resetBatchFlags(t)

	_, err := execute(t, "batch", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
