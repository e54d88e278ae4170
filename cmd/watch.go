package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Push automatically whenever the world is saved",
	Long: `Watches the save directory and pushes once a tracked file has been quiet
for watch.debounce_seconds. With watch.interval_seconds set, also pushes on
that interval. Stops on Ctrl+C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		watcher, err := a.service.Watcher()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := watcher.Run(ctx); err != nil {
			return err
		}
		a.log.Info("Watcher stopped", zap.String("dir", a.cfg.General.SaveFilePath))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(watchCmd)
}
