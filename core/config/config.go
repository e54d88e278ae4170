package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"save-sync/core/database"
	"save-sync/core/logger"
	"save-sync/core/naming"
	"save-sync/core/reconcile"
	"save-sync/core/server"
	"save-sync/core/storage"
	"save-sync/core/watch"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// FileName is the configuration file looked up in the config directory.
	FileName = "config.ini"
	// unset is the placeholder the default file uses for values the user must fill in.
	unset = "None"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// General holds the save-set and remote folder settings.
	General General `mapstructure:"general"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the history database.
	Database database.Config `mapstructure:"database"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Watch holds configuration for automatic pushes.
	Watch watch.Config `mapstructure:"watch"`
}

// LoadConfig loads configuration from dir/config.ini, the .env file in dir
// and environment variables, in increasing order of precedence.
func LoadConfig(dir string) (*Config, error) {
	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := newViper()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		settings, err := decodeINI(data)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return nil, err
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	path, err := homedir.Expand(strings.TrimSpace(config.General.SaveFilePath))
	if err != nil {
		return nil, fmt.Errorf("failed to expand save_file_path: %w", err)
	}
	config.General.SaveFilePath = path

	return &config, nil
}

// WriteDefault writes a config.ini holding every default value into dir.
// It returns the file path and fails if the file already exists.
func WriteDefault(dir string) (string, error) {
	path := filepath.Join(dir, FileName)

	v := viper.New()
	bindValues(v, Config{}, "")

	data, err := encodeINI(v.AllSettings())
	if err != nil {
		return "", fmt.Errorf("failed to encode defaults: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Validate reports settings that make a sync impossible. Every error wraps
// reconcile.ErrConfigInvalid.
func (c *Config) Validate() error {
	var errs []error

	if isUnset(c.General.SaveFilePath) {
		errs = append(errs, errors.New("general.save_file_path is not set"))
	}
	if isUnset(c.General.DriveFolderID) {
		errs = append(errs, errors.New("general.drive_folder_id is not set"))
	}
	if isUnset(c.General.WorldName) {
		errs = append(errs, errors.New("general.world_name is not set"))
	}
	if _, err := c.BackupStyle(); err != nil {
		errs = append(errs, fmt.Errorf("general.backup_style: %w", err))
	}
	if strings.TrimSpace(c.Storage.Bucket) == "" {
		errs = append(errs, errors.New("storage.bucket is not set"))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", reconcile.ErrConfigInvalid, errors.Join(errs...))
}

// BackupStyle parses the configured backup style.
func (c *Config) BackupStyle() (naming.BackupStyle, error) {
	return naming.ParseBackupStyle(c.General.BackupStyle)
}

func isUnset(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == unset
}

func newViper() *viper.Viper {
	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. GENERAL_WORLD_NAME -> general.world_name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
