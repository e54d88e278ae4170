package mocks

import (
	"context"

	"save-sync/core/remote"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of remote.Store
type Store struct {
	mock.Mock
}

func (m *Store) ListFolder(ctx context.Context, folderID string) ([]remote.Object, error) {
	args := m.Called(ctx, folderID)
	if objects, ok := args.Get(0).([]remote.Object); ok {
		return objects, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Download(ctx context.Context, objectID, destPath string, progress remote.ProgressFunc) (int64, error) {
	args := m.Called(ctx, objectID, destPath, progress)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Store) Upload(ctx context.Context, meta remote.Metadata, localPath string) (string, error) {
	args := m.Called(ctx, meta, localPath)
	return args.String(0), args.Error(1)
}

func (m *Store) Rename(ctx context.Context, objectID, newName string) error {
	args := m.Called(ctx, objectID, newName)
	return args.Error(0)
}
