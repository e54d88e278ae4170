package reconcile

import (
	"save-sync/core/remote"
)

// Direction names the side that receives content.
type Direction string

const (
	// DirectionPull copies remote content to the local directory.
	DirectionPull Direction = "pull"
	// DirectionPush copies local content to the remote folder.
	DirectionPush Direction = "push"
)

// TrackedFile is one file belonging to a save set.
type TrackedFile struct {
	Name      string `json:"name"`
	LocalPath string `json:"local_path"`
}

// LocalFileState is the local side of a tracked file. Hash is nil when the
// file does not exist.
type LocalFileState struct {
	Name string  `json:"name"`
	Path string  `json:"path"`
	Hash *string `json:"hash,omitempty"`
	Size int64   `json:"size"`
}

// Exists reports whether the file is present locally.
func (s LocalFileState) Exists() bool {
	return s.Hash != nil
}

// MatchedPair joins the local state of a tracked file with its live remote
// object, if any.
type MatchedPair struct {
	Local  LocalFileState `json:"local"`
	Remote *remote.Object `json:"remote,omitempty"`
}

// InSync reports whether both sides exist with identical content.
func (p MatchedPair) InSync() bool {
	return p.Local.Exists() && p.Remote != nil && *p.Local.Hash == p.Remote.Hash
}

// ActionType represents the work planned for one tracked file.
type ActionType string

const (
	// ActionNone leaves the file alone.
	ActionNone ActionType = "none"
	// ActionDownload fetches the remote object into an absent local file.
	ActionDownload ActionType = "download"
	// ActionBackupDownload backs up the local file, then downloads over it.
	ActionBackupDownload ActionType = "backup_download"
	// ActionUpload creates the live remote object from the local file.
	ActionUpload ActionType = "upload"
	// ActionRenameUpload demotes the live remote object to a backup name,
	// then uploads the local file as the new live object.
	ActionRenameUpload ActionType = "rename_upload"
)

// Transfers reports whether the action moves content.
func (t ActionType) Transfers() bool {
	return t != ActionNone
}

// Action represents the planned operation for one tracked file.
type Action struct {
	Type   ActionType  `json:"type"`
	Pair   MatchedPair `json:"pair"`
	Reason string      `json:"reason"`

	// Err is set when the file could not be planned (for example an
	// unreadable local file). Such actions are reported as failures.
	Err error `json:"-"`
}

// Name returns the tracked file name.
func (a Action) Name() string {
	return a.Pair.Local.Name
}

// Plan contains the per-file actions of one pull or push.
type Plan struct {
	Direction Direction   `json:"direction"`
	Profile   string      `json:"profile"`
	Marker    string      `json:"marker"`
	Actions   []Action    `json:"actions"`
	Summary   PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate counts for a plan.
type PlanSummary struct {
	TotalFiles int `json:"total_files"`
	Transfers  int `json:"transfers"`
	Backups    int `json:"backups"`
	Unplanned  int `json:"unplanned"`
}
