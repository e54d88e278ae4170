package naming

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Separator joins parent segments returned by SplitPath.
const Separator = "//"

// OldMarker is the fixed token used by the "old" backup style.
const OldMarker = "old"

// markerLayout is the second-resolution part of a timestamp marker;
// microseconds are appended separately.
const markerLayout = "20060102150405"

var pathSplitter = regexp.MustCompile(`[\\/]`)

// SplitPath splits a path on either '/' or '\' and rejoins the parent
// segments with Separator. An empty path yields two empty strings.
func SplitPath(path string) (string, string) {
	if path == "" {
		return "", ""
	}

	tokens := pathSplitter.Split(path, -1)
	if len(tokens) == 0 {
		return "", ""
	}

	name := tokens[len(tokens)-1]
	parent := strings.Join(tokens[:len(tokens)-1], Separator)
	return parent, name
}

// BackupName inserts marker into fileName before its extension.
// The first dot is the extension boundary: "a.b.c" becomes "a_marker.b.c".
func BackupName(fileName, marker string) string {
	base, ext, found := strings.Cut(fileName, ".")
	if !found {
		return fmt.Sprintf("%s_%s", base, marker)
	}
	return fmt.Sprintf("%s_%s.%s", base, marker, ext)
}

// Marker formats t as YYYYMMDDhhmmss followed by six digits of microseconds.
func Marker(t time.Time) string {
	return fmt.Sprintf("%s%06d", t.Format(markerLayout), t.Nanosecond()/int(time.Microsecond))
}
