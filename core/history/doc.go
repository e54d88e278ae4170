// Package history records completed sync runs in the database.
//
// Each pull or push becomes one Run row with a FileRecord per tracked file,
// so the history command and the /sync/history endpoint can show what moved,
// which backups were made and what failed.
package history
