package reconcile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LiveMatcher decides whether a remote object name is the live object for a
// tracked file name.
type LiveMatcher func(tracked, candidate string) bool

// Profile declares which files make up one save set and how their live remote
// objects are recognised.
type Profile struct {
	// Name identifies the profile in logs and reports.
	Name string
	// Files lists the tracked file names, in processing order.
	Files []string
	// Paired marks save sets whose files are only meaningful together.
	Paired bool
	// IsLive selects the live remote object. Nil means exact name equality.
	IsLive LiveMatcher
}

// Validate checks that the profile can drive a sync.
func (p Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: profile name is empty", ErrConfigInvalid)
	}
	if len(p.Files) == 0 {
		return fmt.Errorf("%w: profile %s tracks no files", ErrConfigInvalid, p.Name)
	}

	seen := make(map[string]struct{}, len(p.Files))
	for _, name := range p.Files {
		if name == "" || strings.ContainsAny(name, `/\`) {
			return fmt.Errorf("%w: profile %s has invalid file name %q", ErrConfigInvalid, p.Name, name)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: profile %s tracks %q twice", ErrConfigInvalid, p.Name, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Tracked resolves the profile's files against a local directory.
func (p Profile) Tracked(dir string) []TrackedFile {
	files := make([]TrackedFile, 0, len(p.Files))
	for _, name := range p.Files {
		files = append(files, TrackedFile{Name: name, LocalPath: filepath.Join(dir, name)})
	}
	return files
}

func (p Profile) isLive(tracked, candidate string) bool {
	if p.IsLive == nil {
		return tracked == candidate
	}
	return p.IsLive(tracked, candidate)
}
