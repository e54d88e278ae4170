package cmd

import (
	"fmt"
	"os"

	"save-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir holds config.ini, .env and, by default, the history database.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "save-sync",
	Short: "Game save synchronizer",
	Long: `save-sync keeps a game's world saves in step with a remote storage folder.
Pull fetches newer saves, push publishes local ones; whatever gets replaced
is kept as a timestamped backup on the side that changes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console logger: configuration may be what failed to load.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", ".", "Directory containing config.ini and .env")
}
