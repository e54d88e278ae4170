package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"save-sync/core/reconcile"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var dryRun bool

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download newer saves from remote storage",
	Long: `Compares every tracked save file with its live remote object and downloads
the ones that differ. A local file about to be overwritten is first copied
to a backup next to it (world_<marker>.db).

Examples:
  # Pull now
  save-sync pull

  # Show what would be downloaded
  save-sync pull --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, reconcile.DirectionPull)
	},
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload local saves to remote storage",
	Long: `Compares every tracked save file with its live remote object and uploads
the ones that differ. A remote object about to be replaced is first renamed
to a backup name, so earlier versions stay in the folder.

Examples:
  # Push now
  save-sync push

  # Show what would be uploaded
  save-sync push --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSync(cmd, reconcile.DirectionPush)
	},
}

func init() {
	for _, c := range []*cobra.Command{pullCmd, pushCmd} {
		c.Flags().BoolVar(&dryRun, "dry-run", false, "Print the plan without transferring anything")
		RootCmd.AddCommand(c)
	}
}

func runSync(cmd *cobra.Command, direction reconcile.Direction) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()

	if dryRun {
		plan, err := a.service.Plan(ctx, direction)
		if err != nil {
			return err
		}
		printPlan(out, plan)
		fmt.Fprintln(out, "Dry-run: no changes were made.")
		return nil
	}

	report, err := a.service.Sync(ctx, direction)
	if err != nil {
		return err
	}
	printReport(out, report)

	if report.Failed() > 0 {
		return errors.New(report.Summary())
	}
	return nil
}

func printPlan(w io.Writer, plan *reconcile.Plan) {
	fmt.Fprintf(w, "%s plan for %s (marker %s)\n", plan.Direction, plan.Profile, plan.Marker)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, a := range plan.Actions {
		reason := a.Reason
		if a.Err != nil {
			reason = a.Err.Error()
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", a.Name(), a.Type, reason)
	}
	_ = tw.Flush()

	s := plan.Summary
	fmt.Fprintf(w, "%d files, %d transfers, %d backups, %d unplanned\n", s.TotalFiles, s.Transfers, s.Backups, s.Unplanned)
}

func printReport(w io.Writer, report *reconcile.Report) {
	fmt.Fprintf(w, "%s %s (marker %s, %s)\n", report.Direction, report.Profile, report.Marker,
		report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range report.Files {
		detail := f.Reason
		switch {
		case f.Err != nil:
			detail = f.Err.Error()
		case f.Bytes > 0:
			detail = fmt.Sprintf("%s, %s", f.Reason, humanize.Bytes(uint64(f.Bytes)))
		}
		if f.Backup != "" {
			detail += ", backup " + f.Backup
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, f.Outcome, detail)
	}
	_ = tw.Flush()

	fmt.Fprintln(w, report.Summary())
}
