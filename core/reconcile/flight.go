package reconcile

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// dirSlots holds one single-slot channel per local directory.
	dirSlots sync.Map
	flights  singleflight.Group

	// activeMu guards active, the live flight per call key.
	activeMu  sync.Mutex
	flightSeq atomic.Uint64
)

var active = make(map[string]*flight)

// acquireDir blocks until no other sync is running against dir, or ctx ends.
func acquireDir(ctx context.Context, dir string) (func(), error) {
	slot, _ := dirSlots.LoadOrStore(filepath.Clean(dir), make(chan struct{}, 1))
	ch := slot.(chan struct{})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	select {
	case ch <- struct{}{}:
		return func() { <-ch }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// flight is the context a shared run executes under. It carries the values
// of the caller that created it and ends only once every caller waiting on
// the run has gone.
type flight struct {
	context.Context
	key string

	mu      sync.Mutex
	waiters []context.Context
	done    chan struct{}
	err     error
}

func newFlight(ctx context.Context, key string) *flight {
	return &flight{
		Context: context.WithoutCancel(ctx),
		key:     fmt.Sprintf("%s#%d", key, flightSeq.Add(1)),
		done:    make(chan struct{}),
	}
}

func (f *flight) Deadline() (time.Time, bool) { return time.Time{}, false }

func (f *flight) Done() <-chan struct{} { return f.done }

func (f *flight) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkLocked()
}

// checkLocked ends the flight once no waiter is left.
func (f *flight) checkLocked() error {
	if f.err != nil || len(f.waiters) == 0 {
		return f.err
	}
	for _, w := range f.waiters {
		if w.Err() == nil {
			return nil
		}
	}
	f.err = f.waiters[len(f.waiters)-1].Err()
	close(f.done)
	return f.err
}

// add registers ctx as a waiter. It fails once the flight has ended.
func (f *flight) add(ctx context.Context) (stop func() bool, ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.checkLocked() != nil {
		return nil, false
	}
	f.waiters = append(f.waiters, ctx)
	return context.AfterFunc(ctx, func() { _ = f.Err() }), true
}

// joinFlight returns the live flight for key, starting a new one when there
// is none, with ctx registered as a waiter.
func joinFlight(ctx context.Context, key string) (*flight, func() bool) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if f, ok := active[key]; ok {
		if stop, ok := f.add(ctx); ok {
			return f, stop
		}
	}

	f := newFlight(ctx, key)
	stop, _ := f.add(ctx)
	active[key] = f
	return f, stop
}

func finishFlight(key string, f *flight) {
	activeMu.Lock()
	defer activeMu.Unlock()

	if active[key] == f {
		delete(active, key)
	}
}

// exclusive runs fn while holding the directory slot. Identical concurrent
// calls (same direction, profile, directory and folder) share one run, which
// is cancelled only when every one of them has been cancelled. Callers that
// joined another caller's run get a copy of its report marked Joined.
func (e *Engine) exclusive(ctx context.Context, direction Direction, profile Profile, fn func(context.Context) *Report) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := strings.Join([]string{
		string(direction),
		profile.Name,
		strings.Join(profile.Files, ","),
		filepath.Clean(e.localDir),
		e.folderID,
	}, "|")

	f, stop := joinFlight(ctx, key)
	defer stop()

	ran := false
	ch := flights.DoChan(f.key, func() (any, error) {
		defer finishFlight(key, f)
		ran = true

		release, err := acquireDir(f, e.localDir)
		if err != nil {
			return nil, fmt.Errorf("waiting for %s: %w", e.localDir, err)
		}
		defer release()

		return fn(f), nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		if f.Err() == nil {
			return nil, fmt.Errorf("waiting for shared %s: %w", direction, ctx.Err())
		}
		// Every waiter is gone, so the run winds down and reports what it
		// managed before the cancellation.
		res = <-ch
	}
	if res.Err != nil {
		return nil, res.Err
	}

	report := res.Val.(*Report)
	if ran {
		return report, nil
	}

	e.logger.Debug("Joined in-flight sync",
		zap.String("direction", string(direction)),
		zap.String("profile", profile.Name))
	joined := *report
	joined.Joined = true
	return &joined, nil
}
