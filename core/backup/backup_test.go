package backup

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_BackupLocal(t *testing.T) {
	t.Run("CopiesToDecoratedSibling", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/saves/world.db", []byte("content"), 0644))

		backupPath, err := NewManager(fsys).BackupLocal("/saves/world.db", "20240101120000")
		require.NoError(t, err)
		assert.Equal(t, "/saves/world_20240101120000.db", backupPath)

		data, err := afero.ReadFile(fsys, backupPath)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))

		original, err := afero.ReadFile(fsys, "/saves/world.db")
		require.NoError(t, err)
		assert.Equal(t, "content", string(original))
	})

	t.Run("ReplacesExistingBackup", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/saves/world.wld", []byte("new"), 0644))
		require.NoError(t, afero.WriteFile(fsys, "/saves/world_old.wld", []byte("previous backup"), 0644))

		backupPath, err := NewManager(fsys).BackupLocal("/saves/world.wld", "old")
		require.NoError(t, err)

		data, err := afero.ReadFile(fsys, backupPath)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("MissingSource", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		_, err := NewManager(fsys).BackupLocal("/saves/missing.db", "m")
		assert.Error(t, err)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		_, err := NewManager(afero.NewMemMapFs()).BackupLocal("", "m")
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("ReadOnlyDestination", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(base, "/saves/world.db", []byte("content"), 0644))

		_, err := NewManager(afero.NewReadOnlyFs(base)).BackupLocal("/saves/world.db", "m")
		assert.Error(t, err)
	})
}
