package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/textpipe-cli/internal/core/services"
)

// wireTestPipeline installs a real pipeline so commands run without
// touching the user's config directory.
func wireTestPipeline(t *testing.T) {
	t.Helper()

	original := pipelineService
	pipelineService = services.NewPipeline(services.NewExtractor(), services.NewReviewer())
	t.Cleanup(func() { pipelineService = original })
}

// execute runs the root command with the given args and returns its
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "textpipe", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, expected := range []string{"analyze", "batch", "history", "watch", "mcp", "config", "version"} {
		assert.True(t, names[expected], "missing subcommand %s", expected)
	}
}
