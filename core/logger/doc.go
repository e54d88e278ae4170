// Package logger builds the zap logger used across the application.
//
// Level selects the preset (debug uses zap's development config) and the
// minimum level; Format picks console or json encoding. HTTP handlers use
// WithRayID so every log line of a request carries its ray id.
//
// # Usage
//
//	log, err := logger.New(&cfg.Log)
//	if err != nil {
//	    return err
//	}
//	log.Info("Sync finished", zap.Int("synced", report.Synced()))
package logger
