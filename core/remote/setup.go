package remote

import (
	"bytes"
	"context"
	"fmt"

	"save-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// FolderStatus reports whether the remote side of a save set is in place.
type FolderStatus struct {
	BucketExists bool `json:"bucket_exists"`
	FolderExists bool `json:"folder_exists"`
}

// Ready reports whether syncs can run against the folder.
func (s FolderStatus) Ready() bool {
	return s.BucketExists && s.FolderExists
}

// CheckFolder looks for the bucket and for any object under the folder prefix.
func CheckFolder(ctx context.Context, client storage.Client, bucket, folderID string) (FolderStatus, error) {
	var status FolderStatus

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return status, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return status, nil
	}
	status.BucketExists = true

	// Stop the listing once the first object is seen.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts := minio.ListObjectsOptions{
		Prefix:  folderPrefix(folderID),
		MaxKeys: 1,
	}
	for obj := range client.ListObjects(listCtx, bucket, opts) {
		if obj.Err != nil {
			return status, fmt.Errorf("failed to list folder %q: %w", folderID, obj.Err)
		}
		status.FolderExists = true
		break
	}

	return status, nil
}

// EnsureFolder creates the bucket and an empty folder marker when missing.
func EnsureFolder(ctx context.Context, client storage.Client, cfg storage.Config, folderID string, logger *zap.Logger) (FolderStatus, error) {
	status, err := CheckFolder(ctx, client, cfg.Bucket, folderID)
	if err != nil {
		return status, err
	}

	if !status.BucketExists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return status, fmt.Errorf("failed to create bucket %s: %w", cfg.Bucket, err)
		}
		status.BucketExists = true
		logger.Info("Created bucket", zap.String("bucket", cfg.Bucket))
	}

	if !status.FolderExists {
		marker := folderPrefix(folderID)
		if _, err := client.PutObject(ctx, cfg.Bucket, marker, bytes.NewReader(nil), 0, minio.PutObjectOptions{}); err != nil {
			return status, fmt.Errorf("failed to create folder %q: %w", folderID, err)
		}
		status.FolderExists = true
		logger.Info("Created folder", zap.String("bucket", cfg.Bucket), zap.String("folder", folderID))
	}

	return status, nil
}
