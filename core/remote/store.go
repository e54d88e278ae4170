package remote

import (
	"context"
	"errors"
)

// ErrLocalFile marks a Store failure caused by the local side of a transfer
// (reading the upload source or writing the download target).
var ErrLocalFile = errors.New("local file error")

// Object is one entry of a folder listing.
type Object struct {
	// ID identifies the object for Download and Rename.
	ID string `json:"id"`
	// Name is the object name within its folder.
	Name string `json:"name"`
	// Hash is the content checksum reported by the store.
	Hash string `json:"hash"`
	// Size is the content length in bytes.
	Size int64 `json:"size"`
}

// Metadata describes an object to create.
type Metadata struct {
	Name           string
	ParentFolderID string
}

// ProgressFunc receives transfer progress as a fraction in [0,1].
type ProgressFunc func(fraction float64)

// Store is the remote object-storage surface consumed by the engine.
type Store interface {
	// ListFolder returns the objects directly inside folderID.
	ListFolder(ctx context.Context, folderID string) ([]Object, error)
	// Download overwrites destPath with the object's content and returns the byte count.
	Download(ctx context.Context, objectID, destPath string, progress ProgressFunc) (int64, error)
	// Upload creates a new object from localPath and returns its id.
	Upload(ctx context.Context, meta Metadata, localPath string) (string, error)
	// Rename gives an existing object a new name in the same folder.
	Rename(ctx context.Context, objectID, newName string) error
}
