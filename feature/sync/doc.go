// Package sync wires configuration, the remote store and the reconcile
// engine into the operations the CLI and the HTTP API expose: pull, push,
// status (both plans, nothing transferred) and history.
//
// Every operation validates the configuration first; an invalid setup fails
// with reconcile.ErrConfigInvalid before any remote call. Completed runs are
// recorded in the history store when one is configured.
//
// # Routes
//
//	POST /sync/pull      pull now (?dry_run=true returns the plan)
//	POST /sync/push      push now (?dry_run=true returns the plan)
//	GET  /sync/status    pull and push plans
//	GET  /sync/history   recent runs (?limit=N)
package sync
