package reconcile

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Outcome is what happened to one tracked file.
type Outcome string

const (
	// OutcomeUnchanged means no transfer was needed.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeDownloaded means the local file now holds the remote content.
	OutcomeDownloaded Outcome = "downloaded"
	// OutcomeUploaded means a new live remote object holds the local content.
	OutcomeUploaded Outcome = "uploaded"
	// OutcomeFailed means an error stopped the file; see FileResult.Err.
	OutcomeFailed Outcome = "failed"
	// OutcomeCancelled means the call was cancelled before the file started.
	OutcomeCancelled Outcome = "cancelled"
)

// FileResult records the handling of one tracked file.
type FileResult struct {
	Name       string     `json:"name"`
	Action     ActionType `json:"action"`
	Outcome    Outcome    `json:"outcome"`
	Reason     string     `json:"reason"`
	LocalHash  string     `json:"local_hash,omitempty"`
	RemoteHash string     `json:"remote_hash,omitempty"`
	// Backup is the local backup path (pull) or the remote backup name (push).
	Backup string `json:"backup,omitempty"`
	Bytes  int64  `json:"bytes"`
	Error  string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

// Failed reports whether the file did not complete.
func (r FileResult) Failed() bool {
	return r.Outcome == OutcomeFailed || r.Outcome == OutcomeCancelled
}

// Report is the partial-result summary of one pull or push.
type Report struct {
	Direction  Direction    `json:"direction"`
	Profile    string       `json:"profile"`
	Marker     string       `json:"marker"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Files      []FileResult `json:"files"`

	// Joined is set when the call shared an identical run already in
	// progress instead of starting its own.
	Joined bool `json:"joined,omitempty"`
}

// Total returns the number of tracked files handled.
func (r *Report) Total() int {
	return len(r.Files)
}

// Synced counts files that finished without error, transferred or not.
func (r *Report) Synced() int {
	n := 0
	for _, f := range r.Files {
		if !f.Failed() {
			n++
		}
	}
	return n
}

// Failed counts files that failed or were cancelled.
func (r *Report) Failed() int {
	return r.Total() - r.Synced()
}

// Transferred counts files whose content moved.
func (r *Report) Transferred() int {
	n := 0
	for _, f := range r.Files {
		if f.Outcome == OutcomeDownloaded || f.Outcome == OutcomeUploaded {
			n++
		}
	}
	return n
}

// Backups counts backups made, local or remote.
func (r *Report) Backups() int {
	n := 0
	for _, f := range r.Files {
		if f.Backup != "" {
			n++
		}
	}
	return n
}

// Err joins the per-file errors, or returns nil when every file succeeded.
func (r *Report) Err() error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errors.Join(errs...)
}

// Summary renders "N of M files synced" plus the failures, if any.
func (r *Report) Summary() string {
	s := fmt.Sprintf("%d of %d files synced", r.Synced(), r.Total())
	if r.Failed() == 0 {
		return s
	}

	failures := make([]string, 0, r.Failed())
	for _, f := range r.Files {
		if f.Failed() {
			failures = append(failures, f.Error)
		}
	}
	return s + ", failures: " + strings.Join(failures, "; ")
}

func (r *Report) add(result FileResult) {
	if result.Err != nil {
		result.Error = result.Err.Error()
	}
	r.Files = append(r.Files, result)
}
