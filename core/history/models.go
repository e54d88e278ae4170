package history

import "time"

// Run is one recorded pull or push.
type Run struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	Direction   string       `gorm:"size:8;index" json:"direction"`
	Profile     string       `gorm:"size:32" json:"profile"`
	World       string       `gorm:"size:255" json:"world"`
	Marker      string       `gorm:"size:32" json:"marker"`
	StartedAt   time.Time    `gorm:"index" json:"started_at"`
	FinishedAt  time.Time    `json:"finished_at"`
	Synced      int          `json:"synced"`
	Failed      int          `json:"failed"`
	Transferred int          `json:"transferred"`
	Summary     string       `gorm:"type:text" json:"summary"`
	Files       []FileRecord `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"files"`
}

// TableName overrides the table name used by Run to `sync_runs`.
func (Run) TableName() string {
	return "sync_runs"
}

// FileRecord is the outcome of one tracked file within a Run.
type FileRecord struct {
	ID      uint   `gorm:"primaryKey" json:"-"`
	RunID   string `gorm:"size:36;index" json:"-"`
	Name    string `gorm:"size:255" json:"name"`
	Action  string `gorm:"size:16" json:"action"`
	Outcome string `gorm:"size:16" json:"outcome"`
	Reason  string `gorm:"size:255" json:"reason"`
	Backup  string `gorm:"size:1024" json:"backup,omitempty"`
	Bytes   int64  `json:"bytes"`
	Error   string `gorm:"type:text" json:"error,omitempty"`
}

// TableName overrides the table name used by FileRecord to `sync_files`.
func (FileRecord) TableName() string {
	return "sync_files"
}
