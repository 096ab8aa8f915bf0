package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textpipe-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rule table overrides",
	Long: `Reads and writes the textpipe configuration file. Recognised options:

  min_words          minimum word-count threshold (integer)
  min_chars          minimum char-count threshold (integer)
  supported_formats  recognised format tags (comma-separated list)`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the current configuration",
	RunE:  runConfigList,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("%s %s\n", label("Config file:"), configStore.Path())

	for _, key := range []string{file.KeyMinWords, file.KeyMinChars} {
		if v := configStore.GetInt(key); v > 0 {
			cmd.Printf("  %s = %d\n", key, v)
		} else {
			cmd.Printf("  %s = (default)\n", key)
		}
	}
	if formats := configStore.GetStringSlice(file.KeySupportedFormats); len(formats) > 0 {
		cmd.Printf("  %s = %s\n", file.KeySupportedFormats, strings.Join(formats, ","))
	} else {
		cmd.Printf("  %s = (default)\n", file.KeySupportedFormats)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]

	switch key {
	case file.KeyMinWords, file.KeyMinChars:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer", key)
		}
		if err := configStore.Set(key, n); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}

	case file.KeySupportedFormats:
		formats := strings.Split(value, ",")
		for i := range formats {
			formats[i] = strings.TrimSpace(strings.ToLower(formats[i]))
		}
		if err := configStore.Set(key, formats); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}

	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
