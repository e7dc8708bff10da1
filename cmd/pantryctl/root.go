// Root command for the pantryctl CLI.
package main

import (
	"github.com/recipebuddy/notion-ingredient-client/internal/config"
	"github.com/recipebuddy/notion-ingredient-client/pkg/logging"
	"github.com/spf13/cobra"
)

// Version is the pantryctl release version.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagJSON      bool
	flagConfigDir string
)

// settings holds the configuration loaded by PersistentPreRunE so all
// subcommands can use it.
var settings config.Settings

var rootCmd = &cobra.Command{
	Use:     "pantryctl",
	Short:   "pantryctl fetches and validates a Notion ingredient database",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = config.Load(flagConfigDir)
		if err != nil {
			return err
		}

		logging.Setup(logging.Config{
			Level:  logging.LogLevel(settings.LogLevel),
			Pretty: settings.LogPretty,
			Output: cmd.ErrOrStderr(),
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", ".", "directory containing pantryctl.yaml")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(versionCmd)
}
