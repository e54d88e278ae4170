package reconcile

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"sync"

	"save-sync/core/remote"

	"github.com/spf13/afero"
)

// memoryStore is an in-memory remote.Store whose local side is an afero Fs.
type memoryStore struct {
	mu      sync.Mutex
	fs      afero.Fs
	objects map[string]memoryObject
	seq     int

	listErr   error
	renameErr error
	uploadErr error

	// onDownload runs after every successful download.
	onDownload func(objectID string)
	renames    []string
	uploads    []string
}

type memoryObject struct {
	folder  string
	name    string
	content []byte
}

func newMemoryStore(fsys afero.Fs) *memoryStore {
	return &memoryStore{fs: fsys, objects: make(map[string]memoryObject)}
}

func (s *memoryStore) put(folder, name, content string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("obj-%03d", s.seq)
	s.objects[id] = memoryObject{folder: folder, name: name, content: []byte(content)}
	return id
}

// live returns the content of the first object named name in folder.
func (s *memoryStore) live(folder, name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.sortedIDs() {
		obj := s.objects[id]
		if obj.folder == folder && obj.name == name {
			return string(obj.content), true
		}
	}
	return "", false
}

func (s *memoryStore) names(folder string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	for _, obj := range s.objects {
		if obj.folder == folder {
			names = append(names, obj.name)
		}
	}
	sort.Strings(names)
	return names
}

func (s *memoryStore) sortedIDs() []string {
	ids := make([]string, 0, len(s.objects))
	for id := range s.objects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *memoryStore) ListFolder(_ context.Context, folderID string) ([]remote.Object, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, s.listErr
	}

	var objects []remote.Object
	for _, id := range s.sortedIDs() {
		obj := s.objects[id]
		if obj.folder != folderID {
			continue
		}
		objects = append(objects, remote.Object{
			ID:   id,
			Name: obj.name,
			Hash: md5Hex(string(obj.content)),
			Size: int64(len(obj.content)),
		})
	}
	return objects, nil
}

func (s *memoryStore) Download(_ context.Context, objectID, destPath string, progress remote.ProgressFunc) (int64, error) {
	s.mu.Lock()
	obj, ok := s.objects[objectID]
	hook := s.onDownload
	s.mu.Unlock()

	if !ok {
		return 0, fmt.Errorf("object %s not found", objectID)
	}
	if err := s.fs.MkdirAll(path.Dir(destPath), 0o755); err != nil {
		return 0, fmt.Errorf("%w: %w", remote.ErrLocalFile, err)
	}
	if err := afero.WriteFile(s.fs, destPath, obj.content, 0o644); err != nil {
		return 0, fmt.Errorf("%w: %w", remote.ErrLocalFile, err)
	}
	if progress != nil {
		progress(1)
	}
	if hook != nil {
		hook(objectID)
	}
	return int64(len(obj.content)), nil
}

func (s *memoryStore) Upload(_ context.Context, meta remote.Metadata, localPath string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}

	content, err := afero.ReadFile(s.fs, localPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", remote.ErrLocalFile, err)
	}

	id := s.put(meta.ParentFolderID, meta.Name, string(content))

	s.mu.Lock()
	s.uploads = append(s.uploads, meta.Name)
	s.mu.Unlock()
	return id, nil
}

func (s *memoryStore) Rename(_ context.Context, objectID, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.renameErr != nil {
		return s.renameErr
	}

	obj, ok := s.objects[objectID]
	if !ok {
		return fmt.Errorf("object %s not found", objectID)
	}
	obj.name = newName
	s.objects[objectID] = obj
	s.renames = append(s.renames, newName)
	return nil
}

func md5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}
