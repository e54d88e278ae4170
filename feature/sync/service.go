package sync

import (
	"context"
	"errors"
	"fmt"

	"save-sync/core/config"
	"save-sync/core/history"
	"save-sync/core/reconcile"
	"save-sync/core/remote"
	"save-sync/feature/autosync"
	"save-sync/feature/saveset"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ErrHistoryDisabled is returned by History when no history store is configured.
var ErrHistoryDisabled = errors.New("sync history is disabled")

// Recorder stores and lists completed runs.
type Recorder interface {
	Record(ctx context.Context, world string, report *reconcile.Report) (*history.Run, error)
	Recent(ctx context.Context, limit int) ([]history.Run, error)
}

// Status holds the pending work in both directions.
type Status struct {
	Profile string          `json:"profile"`
	World   string          `json:"world"`
	Dir     string          `json:"dir"`
	Folder  string          `json:"folder"`
	Pull    *reconcile.Plan `json:"pull"`
	Push    *reconcile.Plan `json:"push"`
}

// Service runs syncs for the configured save set.
type Service struct {
	cfg      *config.Config
	provider remote.Provider
	history  Recorder
	fs       afero.Fs
	clock    clockwork.Clock
	logger   *zap.Logger
}

// NewService creates a sync service. history may be nil.
func NewService(cfg *config.Config, provider remote.Provider, history Recorder, logger *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		provider: provider,
		history:  history,
		fs:       afero.NewOsFs(),
		clock:    clockwork.NewRealClock(),
		logger:   logger,
	}
}

// Profile validates the configuration and resolves the save set.
func (s *Service) Profile() (reconcile.Profile, error) {
	if err := s.cfg.Validate(); err != nil {
		return reconcile.Profile{}, err
	}
	return saveset.Resolve(s.cfg.General.GamePreset, s.cfg.General.WorldName)
}

// Pull downloads remote changes into the save directory.
func (s *Service) Pull(ctx context.Context) (*reconcile.Report, error) {
	return s.Sync(ctx, reconcile.DirectionPull)
}

// Push uploads local changes to the remote folder.
func (s *Service) Push(ctx context.Context) (*reconcile.Report, error) {
	return s.Sync(ctx, reconcile.DirectionPush)
}

// Sync runs one pull or push and records it.
func (s *Service) Sync(ctx context.Context, direction reconcile.Direction) (*reconcile.Report, error) {
	engine, profile, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	var report *reconcile.Report
	switch direction {
	case reconcile.DirectionPull:
		report, err = engine.Pull(ctx, profile)
	case reconcile.DirectionPush:
		report, err = engine.Push(ctx, profile)
	default:
		return nil, fmt.Errorf("%w: unknown direction %q", reconcile.ErrConfigInvalid, direction)
	}
	if err != nil {
		return nil, err
	}

	s.record(ctx, report)
	return report, nil
}

// Plan computes the actions of a pull or push without running them.
func (s *Service) Plan(ctx context.Context, direction reconcile.Direction) (*reconcile.Plan, error) {
	engine, profile, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}
	return engine.Plan(ctx, direction, profile)
}

// Status plans both directions.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	engine, profile, err := s.engine(ctx)
	if err != nil {
		return nil, err
	}

	pull, err := engine.Plan(ctx, reconcile.DirectionPull, profile)
	if err != nil {
		return nil, err
	}
	push, err := engine.Plan(ctx, reconcile.DirectionPush, profile)
	if err != nil {
		return nil, err
	}

	return &Status{
		Profile: profile.Name,
		World:   s.cfg.General.WorldName,
		Dir:     s.cfg.General.SaveFilePath,
		Folder:  s.cfg.General.DriveFolderID,
		Pull:    pull,
		Push:    push,
	}, nil
}

// History lists recent runs, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]history.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Recent(ctx, limit)
}

// Watcher returns an autosync watcher that pushes the configured save set.
func (s *Service) Watcher() (*autosync.Watcher, error) {
	profile, err := s.Profile()
	if err != nil {
		return nil, err
	}
	return autosync.NewWatcher(s.cfg.Watch, s.cfg.General.SaveFilePath, profile.Files, s.Push, s.clock, s.logger), nil
}

func (s *Service) engine(ctx context.Context) (*reconcile.Engine, reconcile.Profile, error) {
	profile, err := s.Profile()
	if err != nil {
		return nil, reconcile.Profile{}, err
	}

	style, err := s.cfg.BackupStyle()
	if err != nil {
		return nil, reconcile.Profile{}, fmt.Errorf("%w: %w", reconcile.ErrConfigInvalid, err)
	}

	store, err := s.provider.Client(ctx)
	if err != nil {
		return nil, reconcile.Profile{}, fmt.Errorf("failed to connect to remote storage: %w", err)
	}

	engine := reconcile.NewEngine(reconcile.Options{
		Store:    store,
		FS:       s.fs,
		Clock:    s.clock,
		Logger:   s.logger,
		LocalDir: s.cfg.General.SaveFilePath,
		FolderID: s.cfg.General.DriveFolderID,
		Style:    style,
	})
	return engine, profile, nil
}

func (s *Service) record(ctx context.Context, report *reconcile.Report) {
	// A joined report belongs to a run its initiator records.
	if s.history == nil || report.Joined {
		return
	}
	// Record even when the sync itself was cancelled.
	if _, err := s.history.Record(context.WithoutCancel(ctx), s.cfg.General.WorldName, report); err != nil {
		s.logger.Warn("Failed to record sync history", zap.Error(err))
	}
}
