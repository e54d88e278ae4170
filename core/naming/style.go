package naming

import (
	"fmt"
	"strings"
	"time"
)

// BackupStyle selects how backup markers are generated.
type BackupStyle string

const (
	// StyleTime decorates backups with a timestamp marker.
	StyleTime BackupStyle = "time"
	// StyleOld decorates backups with the fixed OldMarker token.
	StyleOld BackupStyle = "old"
	// StyleNone is reserved for a future no-backup mode.
	StyleNone BackupStyle = "none"
)

// ParseBackupStyle accepts the configured value case-insensitively.
// An empty value selects StyleTime.
func ParseBackupStyle(s string) (BackupStyle, error) {
	switch BackupStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", StyleTime:
		return StyleTime, nil
	case StyleOld:
		return StyleOld, nil
	case StyleNone:
		return StyleNone, fmt.Errorf("backup style %q is reserved and not supported", s)
	default:
		return "", fmt.Errorf("unknown backup style %q", s)
	}
}

// MarkerFor returns the marker this style uses for a sync started at t.
func (s BackupStyle) MarkerFor(t time.Time) string {
	if s == StyleOld {
		return OldMarker
	}
	return Marker(t)
}
