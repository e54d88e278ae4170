package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"save-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestPrintPlan(t *testing.T) {
	plan := &reconcile.Plan{
		Direction: reconcile.DirectionPull,
		Profile:   "valheim",
		Marker:    "20230101120000000123",
		Actions: []reconcile.Action{
			{Type: reconcile.ActionNone, Reason: "up to date", Pair: reconcile.MatchedPair{Local: reconcile.LocalFileState{Name: "world.fwl"}}},
			{Type: reconcile.ActionBackupDownload, Reason: "content differs", Pair: reconcile.MatchedPair{Local: reconcile.LocalFileState{Name: "world.db"}}},
		},
		Summary: reconcile.PlanSummary{TotalFiles: 2, Transfers: 1, Backups: 1},
	}

	var buf bytes.Buffer
	printPlan(&buf, plan)

	out := buf.String()
	assert.Contains(t, out, "pull plan for valheim (marker 20230101120000000123)")
	assert.Contains(t, out, "world.db")
	assert.Contains(t, out, "backup_download")
	assert.Contains(t, out, "2 files, 1 transfers, 1 backups, 0 unplanned")
}

func TestPrintReport(t *testing.T) {
	started := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	report := &reconcile.Report{
		Direction:  reconcile.DirectionPush,
		Profile:    "valheim",
		Marker:     "old",
		StartedAt:  started,
		FinishedAt: started.Add(1500 * time.Millisecond),
		Files: []reconcile.FileResult{
			{Name: "world.fwl", Outcome: reconcile.OutcomeUploaded, Reason: "content differs", Bytes: 2048, Backup: "world_old.fwl"},
			{Name: "world.db", Outcome: reconcile.OutcomeFailed, Error: "upload world.db: boom", Err: errors.New("upload world.db: boom")},
		},
	}

	var buf bytes.Buffer
	printReport(&buf, report)

	out := buf.String()
	assert.Contains(t, out, "push valheim (marker old, 1.5s)")
	assert.Contains(t, out, "content differs, 2.0 kB, backup world_old.fwl")
	assert.Contains(t, out, "upload world.db: boom")
	assert.Contains(t, out, "1 of 2 files synced, failures: upload world.db: boom")
}
