// Package reconcile keeps a small set of local save files in step with a
// remote folder, in either direction.
//
// # Pull and Push
//
// Pull brings the remote "live" objects down, Push sends local files up. In
// both directions the only change criterion is the content hash: equal hashes
// mean nothing happens, different hashes mean the destination is backed up
// and then overwritten. Backups are never skipped:
//
//   - pull copies the local file to a decorated sibling (world_<marker>.db)
//     before downloading over it;
//   - push renames the previous live object to the decorated name before
//     uploading the new one.
//
// One marker is computed per call, so every backup made by that call shares it.
//
// # Profiles
//
// The engine knows nothing about games. A Profile lists the tracked file names
// and decides which remote object is the live one for each name; everything
// else in the folder is treated as history and never used as a source or target.
//
// # Plans, reports and failures
//
// Each call first builds a Plan (one Action per tracked file) and then applies
// it file by file. A failing file is recorded in the Report and the remaining
// files still run; only an invalid profile stops a call up front. Context
// cancellation stops before the next file, never in the middle of one.
//
// # Concurrency
//
// Calls touching the same local directory are serialized process-wide, and
// identical concurrent calls are collapsed into one run. That run stops only
// when every caller waiting on it has been cancelled; callers other than the
// one that started it get a copy of its report with Joined set.
//
//	engine := reconcile.NewEngine(reconcile.Options{
//	    Store:    store,
//	    LocalDir: cfg.General.SaveFilePath,
//	    FolderID: cfg.General.DriveFolderID,
//	})
//	report, err := engine.Pull(ctx, profile)
//	fmt.Println(report.Summary())
package reconcile
