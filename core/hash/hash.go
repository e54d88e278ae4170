// Package hash computes content fingerprints of local save files.
//
// The digest is MD5, the same checksum the remote store reports for objects
// uploaded in a single part, so local and remote hashes compare directly.
// A missing file is reported as ErrNotFound: callers treat it as "absent
// locally", not as a failure.
package hash

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// ErrNotFound is returned when the file to hash does not exist.
var ErrNotFound = errors.New("file not found")

// Hasher provides an abstraction for file hashing operations.
type Hasher interface {
	// HashFile computes the hash of the file at the given path.
	HashFile(path string) (string, error)
}

// MD5Hasher implements Hasher using MD5 over an afero filesystem.
type MD5Hasher struct {
	fs afero.Fs
}

// NewMD5Hasher creates a new MD5Hasher reading from fsys.
func NewMD5Hasher(fsys afero.Fs) *MD5Hasher {
	return &MD5Hasher{fs: fsys}
}

// HashFile computes the MD5 hex digest of the file at the given path.
func (h *MD5Hasher) HashFile(path string) (string, error) {
	file, err := h.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	hasher := md5.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Optional hashes path and reports absence as a nil digest instead of an error.
func Optional(h Hasher, path string) (*string, error) {
	digest, err := h.HashFile(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &digest, nil
}
