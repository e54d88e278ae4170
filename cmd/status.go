package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what a pull and a push would do",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()

		status, err := a.service.Status(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "World %s (%s)\n  local:  %s\n  remote: %s\n\n", status.World, status.Profile, status.Dir, status.Folder)
		printPlan(out, status.Pull)
		fmt.Fprintln(out)
		printPlan(out, status.Push)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(statusCmd)
}
