// Package saveset defines the save layouts the synchronizer knows about.
//
// A save set is a reconcile.Profile value: the tracked file names for one
// world plus the rule that picks each file's live remote object. Two layouts
// are built in:
//
//   - Valheim: a paired world descriptor and database (world.fwl, world.db).
//   - Terraria: a single world file (world.wld).
//
// Only an object named exactly like a tracked file is live. Backups such as
// world_20230101.db or world.db.old never match, while digits inside the
// world name itself are fine.
//
// # Usage
//
//	profile, err := saveset.Resolve(cfg.General.GamePreset, cfg.General.WorldName)
//	if err != nil {
//	    return err
//	}
//	report, err := engine.Pull(ctx, profile)
package saveset
