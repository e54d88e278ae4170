// Package naming holds the pure path and file-name helpers shared by the local
// backup manager and the remote store.
//
// The decorated backup names produced here are the de facto wire format on the
// remote side: live objects carry the tracked file name, backups carry the same
// name with a marker spliced in before the extension.
//
//	naming.BackupName("world.db", "20240101120000") // world_20240101120000.db
//	naming.BackupName("README", "old")              // README_old
package naming
