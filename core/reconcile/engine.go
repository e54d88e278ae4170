package reconcile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"save-sync/core/backup"
	"save-sync/core/hash"
	"save-sync/core/naming"
	"save-sync/core/remote"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Options configures an Engine. Store, LocalDir and FolderID are required;
// the rest default to the real filesystem, MD5 hashing, the wall clock, a
// no-op logger and timestamp backups.
type Options struct {
	Store    remote.Store
	FS       afero.Fs
	Hasher   hash.Hasher
	Backups  *backup.Manager
	Clock    clockwork.Clock
	Logger   *zap.Logger
	LocalDir string
	FolderID string
	Style    naming.BackupStyle
}

// Engine synchronizes one local directory with one remote folder.
type Engine struct {
	store    remote.Store
	fs       afero.Fs
	hasher   hash.Hasher
	backups  *backup.Manager
	clock    clockwork.Clock
	logger   *zap.Logger
	localDir string
	folderID string
	style    naming.BackupStyle
}

// NewEngine creates a new sync engine.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		store:    opts.Store,
		fs:       opts.FS,
		hasher:   opts.Hasher,
		backups:  opts.Backups,
		clock:    opts.Clock,
		logger:   opts.Logger,
		localDir: opts.LocalDir,
		folderID: opts.FolderID,
		style:    opts.Style,
	}

	if e.fs == nil {
		e.fs = afero.NewOsFs()
	}
	if e.hasher == nil {
		e.hasher = hash.NewMD5Hasher(e.fs)
	}
	if e.backups == nil {
		e.backups = backup.NewManager(e.fs)
	}
	if e.clock == nil {
		e.clock = clockwork.NewRealClock()
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.style == "" {
		e.style = naming.StyleTime
	}

	return e
}

// Pull makes the local directory match the live remote objects, backing up
// local files before overwriting them. The returned error is only set when
// nothing could be attempted, or when ctx ends while the call waits on a run
// other callers still need; per-file failures are in the report.
func (e *Engine) Pull(ctx context.Context, profile Profile) (*Report, error) {
	return e.run(ctx, DirectionPull, profile)
}

// Push makes the live remote objects match the local directory, demoting
// differing remote objects to backup names before uploading.
func (e *Engine) Push(ctx context.Context, profile Profile) (*Report, error) {
	return e.run(ctx, DirectionPush, profile)
}

// Plan computes the actions a pull or push would take without changing
// anything. Unlike Pull and Push it fails outright when the listing fails.
func (e *Engine) Plan(ctx context.Context, direction Direction, profile Profile) (*Plan, error) {
	if err := e.validate(direction, profile); err != nil {
		return nil, err
	}

	plan, listErr := e.plan(ctx, direction, profile, e.style.MarkerFor(e.clock.Now()))
	if listErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrRemoteTransfer, listErr)
	}
	return plan, nil
}

func (e *Engine) run(ctx context.Context, direction Direction, profile Profile) (*Report, error) {
	if err := e.validate(direction, profile); err != nil {
		return nil, err
	}

	return e.exclusive(ctx, direction, profile, func(ctx context.Context) *Report {
		started := e.clock.Now()
		marker := e.style.MarkerFor(started)

		e.logger.Info("Starting sync",
			zap.String("direction", string(direction)),
			zap.String("profile", profile.Name),
			zap.String("dir", e.localDir),
			zap.String("folder", e.folderID),
			zap.String("marker", marker))

		plan, _ := e.plan(ctx, direction, profile, marker)
		report := e.apply(ctx, plan)
		report.StartedAt = started
		report.FinishedAt = e.clock.Now()

		e.logger.Info("Sync finished",
			zap.String("direction", string(direction)),
			zap.String("profile", profile.Name),
			zap.Int("synced", report.Synced()),
			zap.Int("failed", report.Failed()),
			zap.Int("transferred", report.Transferred()))
		return report
	})
}

func (e *Engine) validate(direction Direction, profile Profile) error {
	if direction != DirectionPull && direction != DirectionPush {
		return fmt.Errorf("%w: unknown direction %q", ErrConfigInvalid, direction)
	}
	if err := profile.Validate(); err != nil {
		return err
	}
	if e.store == nil {
		return fmt.Errorf("%w: no remote store", ErrConfigInvalid)
	}
	if e.localDir == "" {
		return fmt.Errorf("%w: local directory is empty", ErrConfigInvalid)
	}
	if e.folderID == "" {
		return fmt.Errorf("%w: remote folder id is empty", ErrConfigInvalid)
	}
	if e.style == naming.StyleNone {
		return fmt.Errorf("%w: backup style %q is not supported", ErrConfigInvalid, e.style)
	}
	return nil
}

// plan observes both sides and builds the plan. A listing failure is
// returned alongside a plan in which every action carries it.
func (e *Engine) plan(ctx context.Context, direction Direction, profile Profile, marker string) (*Plan, error) {
	locals, localErrs := e.inspectLocal(profile)

	listing, listErr := e.store.ListFolder(ctx, e.folderID)
	if listErr != nil {
		e.logger.Error("Failed to list remote folder",
			zap.String("folder", e.folderID),
			zap.Error(listErr))
	}

	live, ambiguous := matchLive(profile, listing)
	for name, ids := range ambiguous {
		e.logger.Warn("Multiple live remote objects, using the first",
			zap.String("file", name),
			zap.String("used", live[name].ID),
			zap.Strings("ignored", ids))
	}

	return buildPlan(direction, profile, marker, locals, localErrs, listing, listErr), listErr
}

// inspectLocal hashes every tracked file. Absent files get a nil hash; other
// read failures are collected per file.
func (e *Engine) inspectLocal(profile Profile) ([]LocalFileState, map[string]error) {
	tracked := profile.Tracked(e.localDir)
	states := make([]LocalFileState, 0, len(tracked))
	errs := make(map[string]error)

	for _, file := range tracked {
		state := LocalFileState{Name: file.Name, Path: file.LocalPath}

		digest, err := hash.Optional(e.hasher, file.LocalPath)
		if err != nil {
			errs[file.Name] = err
			states = append(states, state)
			continue
		}
		state.Hash = digest

		if digest != nil {
			info, err := e.fs.Stat(file.LocalPath)
			switch {
			case err == nil:
				state.Size = info.Size()
			case !errors.Is(err, fs.ErrNotExist):
				errs[file.Name] = err
			}
		}

		states = append(states, state)
	}

	return states, errs
}
