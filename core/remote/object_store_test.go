package remote

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"save-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(client *mocks.Client, fsys afero.Fs) *ObjectStore {
	return NewObjectStore(client, "saves", fsys, zap.NewNop())
}

func TestObjectStore_ListFolder(t *testing.T) {
	t.Run("StripsPrefixAndSkipsNested", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "saves", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "valheim/"
		})).Return(mocks.ObjectChannel(
			minio.ObjectInfo{Key: "valheim/", ETag: ""},
			minio.ObjectInfo{Key: "valheim/world.db", ETag: `"ABCDEF"`, Size: 12},
			minio.ObjectInfo{Key: "valheim/world_20230101.db", ETag: `"123"`, Size: 10},
			minio.ObjectInfo{Key: "valheim/archive/", ETag: ""},
		))

		objects, err := newTestStore(client, afero.NewMemMapFs()).ListFolder(context.Background(), "/valheim/")
		require.NoError(t, err)
		require.Len(t, objects, 2)
		assert.Equal(t, Object{ID: "valheim/world.db", Name: "world.db", Hash: "abcdef", Size: 12}, objects[0])
		assert.Equal(t, "world_20230101.db", objects[1].Name)
	})

	t.Run("ListingError", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "saves", mock.Anything).
			Return(mocks.ObjectChannel(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := newTestStore(client, afero.NewMemMapFs()).ListFolder(context.Background(), "valheim")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access denied")
	})
}

func TestObjectStore_Download(t *testing.T) {
	t.Run("WritesContentAndReportsProgress", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/saves/world.db", []byte("stale"), 0644))

		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "saves", "valheim/world.db", mock.Anything).
			Return(minio.ObjectInfo{Size: 5}, nil)
		client.On("GetObject", mock.Anything, "saves", "valheim/world.db", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("fresh"))), nil)

		var fractions []float64
		n, err := newTestStore(client, fsys).Download(context.Background(), "valheim/world.db", "/saves/world.db", func(f float64) {
			fractions = append(fractions, f)
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)

		data, err := afero.ReadFile(fsys, "/saves/world.db")
		require.NoError(t, err)
		assert.Equal(t, "fresh", string(data))

		require.NotEmpty(t, fractions)
		assert.Equal(t, 1.0, fractions[len(fractions)-1])
		for _, f := range fractions {
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 1.0)
		}
	})

	t.Run("CreatesMissingDirectory", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "saves", "w/world.wld", mock.Anything).Return(minio.ObjectInfo{Size: 3}, nil)
		client.On("GetObject", mock.Anything, "saves", "w/world.wld", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("abc"))), nil)

		_, err := newTestStore(client, fsys).Download(context.Background(), "w/world.wld", "/fresh/dir/world.wld", nil)
		require.NoError(t, err)

		exists, err := afero.Exists(fsys, "/fresh/dir/world.wld")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("StatErrorLeavesTargetUntouched", func(t *testing.T) {
		fsys := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fsys, "/saves/world.db", []byte("keep"), 0644))

		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "saves", "valheim/world.db", mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("network down"))

		_, err := newTestStore(client, fsys).Download(context.Background(), "valheim/world.db", "/saves/world.db", nil)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrLocalFile)

		data, _ := afero.ReadFile(fsys, "/saves/world.db")
		assert.Equal(t, "keep", string(data))
	})

	t.Run("ReadOnlyTargetIsLocalError", func(t *testing.T) {
		base := afero.NewMemMapFs()
		require.NoError(t, base.MkdirAll("/saves", 0755))

		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, "saves", "valheim/world.db", mock.Anything).Return(minio.ObjectInfo{Size: 1}, nil)
		client.On("GetObject", mock.Anything, "saves", "valheim/world.db", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("x"))), nil)

		_, err := newTestStore(client, afero.NewReadOnlyFs(base)).Download(context.Background(), "valheim/world.db", "/saves/world.db", nil)
		assert.ErrorIs(t, err, ErrLocalFile)
	})
}

func TestObjectStore_Upload(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/saves/world.fwl", []byte("descriptor"), 0644))

	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "saves", "valheim/world.fwl", mock.Anything, int64(10), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
		return opts.DisableMultipart
	})).Return(minio.UploadInfo{Key: "valheim/world.fwl"}, nil)

	id, err := newTestStore(client, fsys).Upload(context.Background(), Metadata{Name: "world.fwl", ParentFolderID: "valheim"}, "/saves/world.fwl")
	require.NoError(t, err)
	assert.Equal(t, "valheim/world.fwl", id)
	client.AssertExpectations(t)

	t.Run("MissingSource", func(t *testing.T) {
		_, err := newTestStore(new(mocks.Client), fsys).Upload(context.Background(), Metadata{Name: "x.db"}, "/saves/x.db")
		assert.ErrorIs(t, err, ErrLocalFile)
	})
}

func TestObjectStore_Rename(t *testing.T) {
	t.Run("CopiesThenRemoves", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything,
			minio.CopyDestOptions{Bucket: "saves", Object: "valheim/world_20240101.fwl"},
			minio.CopySrcOptions{Bucket: "saves", Object: "valheim/world.fwl"},
		).Return(minio.UploadInfo{}, nil)
		client.On("RemoveObject", mock.Anything, "saves", "valheim/world.fwl", mock.Anything).Return(nil)

		err := newTestStore(client, afero.NewMemMapFs()).Rename(context.Background(), "valheim/world.fwl", "world_20240101.fwl")
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("CopyFailureKeepsOriginal", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("CopyObject", mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, errors.New("quota"))

		err := newTestStore(client, afero.NewMemMapFs()).Rename(context.Background(), "world.wld", "world_old.wld")
		assert.Error(t, err)
		client.AssertNotCalled(t, "RemoveObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestConnect(t *testing.T) {
	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "saves").Return(false, nil)

		_, err := connect(context.Background(), client, "saves", afero.NewMemMapFs(), zap.NewNop())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("BucketPresent", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "saves").Return(true, nil)

		store, err := connect(context.Background(), client, "saves", afero.NewMemMapFs(), zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, store)
	})
}

func TestProgressWriter(t *testing.T) {
	var got []float64
	w := newProgressWriter(4, func(f float64) { got = append(got, f) })
	_, _ = w.Write([]byte("ab"))
	_, _ = w.Write([]byte("cd"))
	w.finish()
	assert.Equal(t, []float64{0.5, 1}, got)
}
