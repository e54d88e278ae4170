package reconcile

import (
	"errors"
	"fmt"

	"save-sync/core/remote"
)

var (
	// ErrConfigInvalid marks configuration that must be fixed before any sync runs.
	ErrConfigInvalid = errors.New("invalid configuration")
	// ErrLocalIO marks a local read, write or copy failure.
	ErrLocalIO = errors.New("local I/O error")
	// ErrRemoteTransfer marks a failed list, download, upload or rename call.
	ErrRemoteTransfer = errors.New("remote transfer error")
)

// FileError is the failure of one tracked file. It matches both its Kind and
// its cause with errors.Is.
type FileError struct {
	Name string
	Op   string
	Kind error
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", e.Name, e.Op, e.Err)
}

func (e *FileError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// transferError classifies an error returned by a remote.Store call.
func transferError(name, op string, err error) *FileError {
	kind := ErrRemoteTransfer
	if errors.Is(err, remote.ErrLocalFile) {
		kind = ErrLocalIO
	}
	return &FileError{Name: name, Op: op, Kind: kind, Err: err}
}
