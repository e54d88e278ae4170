package remote

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"save-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ObjectStore implements Store over an S3-compatible bucket.
type ObjectStore struct {
	client storage.Client
	bucket string
	fs     afero.Fs
	logger *zap.Logger
}

// NewObjectStore creates a Store backed by bucket. Local files are read and
// written through fsys.
func NewObjectStore(client storage.Client, bucket string, fsys afero.Fs, logger *zap.Logger) *ObjectStore {
	return &ObjectStore{
		client: client,
		bucket: bucket,
		fs:     fsys,
		logger: logger,
	}
}

// ListFolder lists the objects directly under the folder prefix. Nested
// prefixes and folder marker objects are skipped.
func (s *ObjectStore) ListFolder(ctx context.Context, folderID string) ([]Object, error) {
	prefix := folderPrefix(folderID)

	var objects []Object
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list folder %q: %w", folderID, obj.Err)
		}

		name := strings.TrimPrefix(obj.Key, prefix)
		if name == "" || strings.Contains(name, "/") {
			continue
		}

		objects = append(objects, Object{
			ID:   obj.Key,
			Name: name,
			Hash: normalizeETag(obj.ETag),
			Size: obj.Size,
		})
	}

	return objects, nil
}

// Download streams the object into a temporary sibling of destPath and renames
// it into place once complete, so an interrupted transfer leaves destPath as it was.
func (s *ObjectStore) Download(ctx context.Context, objectID, destPath string, progress ProgressFunc) (int64, error) {
	info, err := s.client.StatObject(ctx, s.bucket, objectID, minio.StatObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to stat object %q: %w", objectID, err)
	}

	reader, err := s.client.GetObject(ctx, s.bucket, objectID, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("failed to get object %q: %w", objectID, err)
	}
	defer func() {
		_ = reader.Close()
	}()

	dir := filepath.Dir(destPath)
	if err := s.fs.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("%w: failed to create %q: %v", ErrLocalFile, dir, err)
	}

	tmp, err := afero.TempFile(s.fs, dir, "."+filepath.Base(destPath)+".download-*")
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create temp file: %v", ErrLocalFile, err)
	}
	tmpName := tmp.Name()

	pw := newProgressWriter(info.Size, progress)
	written, copyErr := io.Copy(io.MultiWriter(tmp, pw), reader)
	closeErr := tmp.Close()

	if copyErr != nil {
		_ = s.fs.Remove(tmpName)
		return written, fmt.Errorf("failed to download object %q: %w", objectID, copyErr)
	}
	if closeErr != nil {
		_ = s.fs.Remove(tmpName)
		return written, fmt.Errorf("%w: failed to close temp file: %v", ErrLocalFile, closeErr)
	}
	if err := s.fs.Rename(tmpName, destPath); err != nil {
		_ = s.fs.Remove(tmpName)
		return written, fmt.Errorf("%w: failed to move download into place: %v", ErrLocalFile, err)
	}

	pw.finish()
	s.logger.Debug("Downloaded object",
		zap.String("object", objectID),
		zap.String("dest", destPath),
		zap.Int64("bytes", written),
	)
	return written, nil
}

// Upload puts localPath as a single-part object so its ETag is the content MD5.
func (s *ObjectStore) Upload(ctx context.Context, meta Metadata, localPath string) (string, error) {
	file, err := s.fs.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open %q: %v", ErrLocalFile, localPath, err)
	}
	defer func() {
		_ = file.Close()
	}()

	stat, err := file.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: failed to stat %q: %v", ErrLocalFile, localPath, err)
	}

	key := folderPrefix(meta.ParentFolderID) + meta.Name
	_, err = s.client.PutObject(ctx, s.bucket, key, file, stat.Size(), minio.PutObjectOptions{
		ContentType:      "application/octet-stream",
		DisableMultipart: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %q: %w", key, err)
	}

	s.logger.Debug("Uploaded object", zap.String("object", key), zap.Int64("bytes", stat.Size()))
	return key, nil
}

// Rename copies the object to its new name within the same folder and
// deletes the original.
func (s *ObjectStore) Rename(ctx context.Context, objectID, newName string) error {
	newKey := newName
	if dir := path.Dir(objectID); dir != "." {
		newKey = dir + "/" + newName
	}

	dst := minio.CopyDestOptions{Bucket: s.bucket, Object: newKey}
	src := minio.CopySrcOptions{Bucket: s.bucket, Object: objectID}
	if _, err := s.client.CopyObject(ctx, dst, src); err != nil {
		return fmt.Errorf("failed to copy %q to %q: %w", objectID, newKey, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove %q after copy: %w", objectID, err)
	}

	s.logger.Debug("Renamed object", zap.String("from", objectID), zap.String("to", newKey))
	return nil
}

// folderPrefix turns a folder id into a key prefix ending in "/".
// An empty id addresses the bucket root.
func folderPrefix(folderID string) string {
	folderID = strings.Trim(folderID, "/")
	if folderID == "" {
		return ""
	}
	return folderID + "/"
}

func normalizeETag(etag string) string {
	return strings.ToLower(strings.Trim(etag, `"`))
}
