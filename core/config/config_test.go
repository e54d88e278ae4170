package config

import (
	"os"
	"path/filepath"
	"testing"

	"save-sync/core/naming"
	"save-sync/core/reconcile"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleINI = `[general]
drive_folder_id = saves/valheim
save_file_path  = ~/worlds
world_name      = Midgard
game_preset     = valheim
backup_style    = old
auto_update     = true

[storage]
endpoint = s3.local:9000
bucket   = game-saves

[watch]
interval_seconds = 60
`

func writeINI(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "None", cfg.General.DriveFolderID)
	assert.Equal(t, "valheim", cfg.General.GamePreset)
	assert.Equal(t, "saves", cfg.Storage.Bucket)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 300, cfg.Watch.IntervalSeconds)
	assert.False(t, cfg.General.AutoUpdate)
}

func TestLoadConfig_File(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })

	dir := t.TempDir()
	writeINI(t, dir, sampleINI)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "saves/valheim", cfg.General.DriveFolderID)
	assert.Equal(t, filepath.Join(home, "worlds"), cfg.General.SaveFilePath)
	assert.Equal(t, "Midgard", cfg.General.WorldName)
	assert.True(t, cfg.General.AutoUpdate)
	assert.Equal(t, "s3.local:9000", cfg.Storage.Endpoint)
	assert.Equal(t, "game-saves", cfg.Storage.Bucket)
	assert.Equal(t, 60, cfg.Watch.IntervalSeconds)

	style, err := cfg.BackupStyle()
	require.NoError(t, err)
	assert.Equal(t, naming.StyleOld, style)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeINI(t, dir, sampleINI)
	t.Setenv("GENERAL_WORLD_NAME", "FromEnv")
	t.Setenv("STORAGE_USE_SSL", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "FromEnv", cfg.General.WorldName)
	assert.True(t, cfg.Storage.UseSSL)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeINI(t, dir, "[general\nbroken")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteDefault(dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "Dedicated", cfg.General.WorldName)

	_, err = WriteDefault(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			General: General{
				DriveFolderID: "saves",
				SaveFilePath:  "/games/worlds",
				WorldName:     "world",
				BackupStyle:   "time",
			},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"None save path", func(c *Config) { c.General.SaveFilePath = "None" }},
		{"Empty save path", func(c *Config) { c.General.SaveFilePath = " " }},
		{"None folder", func(c *Config) { c.General.DriveFolderID = "None" }},
		{"Empty world", func(c *Config) { c.General.WorldName = "" }},
		{"No backup style", func(c *Config) { c.General.BackupStyle = "none" }},
		{"Unknown backup style", func(c *Config) { c.General.BackupStyle = "weekly" }},
		{"Empty bucket", func(c *Config) { c.Storage.Bucket = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			cfg.Storage.Bucket = "saves"
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), reconcile.ErrConfigInvalid)
		})
	}

	cfg := valid()
	cfg.Storage.Bucket = "saves"
	assert.NoError(t, cfg.Validate())
}
