// Package database opens the gorm connection used for sync history.
//
// SQLite is the default: a single file next to config.ini, nothing to run.
// MySQL is available for a shared history across machines.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled", zap.Error(err))
//	}
package database
