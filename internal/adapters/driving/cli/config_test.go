package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textpipe-cli/internal/adapters/driven/config/file"
)

// wireTestConfigStore installs a config store backed by a throwaway
// directory.
func wireTestConfigStore(t *testing.T) {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	original := configStore
	configStore = store
	t.Cleanup(func() { configStore = original })
}

func TestConfigListCmd_Defaults(t *testing.T) {
	wireTestPipeline(t)
	wireTestConfigStore(t)

	out, err := execute(t, "config", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "min_words = (default)")
	assert.Contains(t, out, "min_chars = (default)")
	assert.Contains(t, out, "supported_formats = (default)")
}

func TestConfigSetCmd_IntegerKeys(t *testing.T) {
	wireTestPipeline(t)
	wireTestConfigStore(t)

	out, err := execute(t, "config", "set", "min_words", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set min_words = 5")

	out, err = execute(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "min_words = 5")
}

func TestConfigSetCmd_SupportedFormats(t *testing.T) {
	wireTestPipeline(t)
	wireTestConfigStore(t)

	_, err := execute(t, "config", "set", "supported_formats", "txt, JSON ,md")
	require.NoError(t, err)

	assert.Equal(t, []string{"txt", "json", "md"}, configStore.GetStringSlice(file.KeySupportedFormats))
}

func TestConfigSetCmd_RejectsBadValues(t *testing.T) {
	wireTestPipeline(t)
	wireTestConfigStore(t)

	_, err := execute(t, "config", "set", "min_words", "zero")
	assert.Error(t, err)

	_, err = execute(t, "config", "set", "min_words", "0")
	assert.Error(t, err)

	_, err = execute(t, "config", "set", "unknown_key", "value")
	assert.Error(t, err)
}
