// Package config loads the application configuration.
//
// Settings come from config.ini (INI sections general, storage, log,
// database, server and watch), then a .env file, then environment variables
// named SECTION_KEY (GENERAL_WORLD_NAME, STORAGE_ENDPOINT, ...). Defaults are
// declared with `default` struct tags on each section's Config type.
//
// Files are read and written as UTF-8.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
package config
