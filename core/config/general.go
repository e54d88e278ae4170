package config

// General holds the save-set and remote folder settings.
type General struct {
	// DriveFolderID is the remote folder holding the live saves and their backups.
	DriveFolderID string `mapstructure:"drive_folder_id" default:"None"`
	// SaveFilePath is the local save directory. A leading ~ is expanded.
	SaveFilePath string `mapstructure:"save_file_path" default:"~/AppData/LocalLow/IronGate/Valheim/worlds"`
	// WorldName is the world whose files are tracked.
	WorldName string `mapstructure:"world_name" default:"Dedicated"`
	// GamePreset selects the save layout (valheim, terraria).
	GamePreset string `mapstructure:"game_preset" default:"valheim"`
	// BackupStyle selects the backup marker (time, old).
	BackupStyle string `mapstructure:"backup_style" default:"time"`
	// AutoUpdate pushes local changes automatically while serving.
	AutoUpdate bool `mapstructure:"auto_update" default:"false"`
}
