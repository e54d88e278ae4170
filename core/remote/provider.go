package remote

import (
	"context"
	"fmt"
	"sync"

	"save-sync/core/storage"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Provider hands out an authenticated Store.
type Provider interface {
	Client(ctx context.Context) (Store, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (Store, error)

// Client calls f.
func (f ProviderFunc) Client(ctx context.Context) (Store, error) {
	return f(ctx)
}

// StaticProvider builds one ObjectStore from static credentials and checks
// that the bucket exists. A failed attempt is retried on the next call.
type StaticProvider struct {
	cfg    storage.Config
	fs     afero.Fs
	logger *zap.Logger

	mu    sync.Mutex
	store Store
}

// NewStaticProvider creates a provider for cfg.
func NewStaticProvider(cfg storage.Config, fsys afero.Fs, logger *zap.Logger) *StaticProvider {
	return &StaticProvider{cfg: cfg, fs: fsys, logger: logger}
}

// Client returns the cached store, connecting on first use.
func (p *StaticProvider) Client(ctx context.Context) (Store, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.store != nil {
		return p.store, nil
	}

	client, err := storage.NewClient(p.cfg)
	if err != nil {
		return nil, err
	}

	store, err := connect(ctx, client, p.cfg.Bucket, p.fs, p.logger)
	if err != nil {
		return nil, err
	}
	p.store = store
	return store, nil
}

// connect verifies the bucket before handing out a store for it.
func connect(ctx context.Context, client storage.Client, bucket string, fsys afero.Fs, logger *zap.Logger) (Store, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}
	return NewObjectStore(client, bucket, fsys, logger), nil
}
