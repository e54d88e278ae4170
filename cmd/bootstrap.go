package cmd

import (
	"fmt"
	"path/filepath"

	"save-sync/core/config"
	"save-sync/core/database"
	"save-sync/core/history"
	"save-sync/core/logger"
	"save-sync/core/remote"
	syncfeature "save-sync/feature/sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	service *syncfeature.Service
}

// bootstrap loads configuration, builds the logger and wires the sync
// service. A history database that cannot be opened only disables history.
func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{cfg: cfg, log: l}

	var recorder syncfeature.Recorder
	if store, err := openHistory(cfg.Database); err != nil {
		l.Warn("Sync history disabled", zap.Error(err))
	} else {
		recorder = store
	}

	provider := remote.NewStaticProvider(cfg.Storage, afero.NewOsFs(), l)
	a.service = syncfeature.NewService(cfg, provider, recorder, l)
	return a, nil
}

func (a *app) close() {
	_ = a.log.Sync()
}

func openHistory(cfg database.Config) (*history.Store, error) {
	if cfg.Driver == database.DriverSQLite && cfg.Path != "" && !filepath.IsAbs(cfg.Path) {
		cfg.Path = filepath.Join(configDir, cfg.Path)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	store := history.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, err
	}
	return store, nil
}
