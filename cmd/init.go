package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"save-sync/core/config"
	"save-sync/core/remote"
	"save-sync/core/storage"

	"github.com/spf13/cobra"
)

var initRemote bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.ini and prepare remote storage",
	Long: `Writes config.ini with every default value into the config directory.
Fill in general.drive_folder_id, general.save_file_path and the storage
credentials before the first pull or push. An existing file is left untouched.

With --remote, also creates the storage bucket and the save folder when
they are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		path, err := config.WriteDefault(configDir)
		switch {
		case err == nil:
			fmt.Fprintf(out, "Wrote %s\n", path)
		case initRemote && fileExists(filepath.Join(configDir, config.FileName)):
			fmt.Fprintf(out, "Keeping existing %s\n", filepath.Join(configDir, config.FileName))
		default:
			return err
		}

		if !initRemote {
			return nil
		}
		return prepareRemote(cmd)
	},
}

func init() {
	initCmd.Flags().BoolVar(&initRemote, "remote", false, "Create the bucket and save folder if missing")
	RootCmd.AddCommand(initCmd)
}

func prepareRemote(cmd *cobra.Command) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	client, err := storage.NewClient(a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	status, err := remote.EnsureFolder(context.Background(), client, a.cfg.Storage, a.cfg.General.DriveFolderID, a.log)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Remote folder %s/%s ready: %t\n", a.cfg.Storage.Bucket, a.cfg.General.DriveFolderID, status.Ready())
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
