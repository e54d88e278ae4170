// Package backup copies local save files to decorated sibling paths before
// they are overwritten.
package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"save-sync/core/naming"

	"github.com/spf13/afero"
)

// ErrInvalidPath is returned when the source path has no file name.
var ErrInvalidPath = errors.New("invalid backup source path")

// Manager creates local backup copies.
type Manager struct {
	fs afero.Fs
}

// NewManager creates a backup manager operating on fsys.
func NewManager(fsys afero.Fs) *Manager {
	return &Manager{fs: fsys}
}

// BackupLocal copies path to a sibling file named by naming.BackupName and
// returns the backup path. An existing backup with the same name is replaced.
func (m *Manager) BackupLocal(path, marker string) (string, error) {
	parent, name := naming.SplitPath(path)
	if name == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	backupPath := filepath.Join(parent, naming.BackupName(name, marker))
	if err := m.copyFile(path, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

func (m *Manager) copyFile(src, dst string) error {
	in, err := m.fs.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open backup source: %w", err)
	}
	defer func() {
		_ = in.Close()
	}()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat backup source: %w", err)
	}

	out, err := m.fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy backup content: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close backup file: %w", err)
	}
	return nil
}
