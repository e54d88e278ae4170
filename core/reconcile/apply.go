package reconcile

import (
	"context"
	"fmt"

	"save-sync/core/naming"
	"save-sync/core/remote"

	"go.uber.org/zap"
)

// apply executes a plan file by file. Failures are recorded and the next
// file is attempted; cancellation marks the remaining files cancelled.
func (e *Engine) apply(ctx context.Context, plan *Plan) *Report {
	report := &Report{
		Direction: plan.Direction,
		Profile:   plan.Profile,
		Marker:    plan.Marker,
		Files:     make([]FileResult, 0, len(plan.Actions)),
	}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			report.add(FileResult{
				Name:    action.Name(),
				Action:  action.Type,
				Outcome: OutcomeCancelled,
				Reason:  action.Reason,
				Err:     &FileError{Name: action.Name(), Op: string(action.Type), Kind: ErrRemoteTransfer, Err: err},
			})
			continue
		}

		result := e.applyAction(ctx, plan, action)
		e.logResult(plan.Direction, result)
		report.add(result)
	}

	return report
}

func (e *Engine) applyAction(ctx context.Context, plan *Plan, action Action) FileResult {
	pair := action.Pair
	result := FileResult{
		Name:    action.Name(),
		Action:  action.Type,
		Outcome: OutcomeUnchanged,
		Reason:  action.Reason,
	}
	if pair.Local.Hash != nil {
		result.LocalHash = *pair.Local.Hash
	}
	if pair.Remote != nil {
		result.RemoteHash = pair.Remote.Hash
	}

	if action.Err != nil {
		result.Outcome = OutcomeFailed
		result.Err = action.Err
		return result
	}

	switch action.Type {
	case ActionNone:
		return result

	case ActionBackupDownload:
		backupPath, err := e.backups.BackupLocal(pair.Local.Path, plan.Marker)
		if err != nil {
			return failed(result, &FileError{Name: result.Name, Op: "backup", Kind: ErrLocalIO, Err: err})
		}
		result.Backup = backupPath
		e.logger.Info("Backed up local file",
			zap.String("file", result.Name),
			zap.String("backup", backupPath))
		fallthrough

	case ActionDownload:
		n, err := e.store.Download(ctx, pair.Remote.ID, pair.Local.Path, e.progress(result.Name, "download"))
		if err != nil {
			return failed(result, transferError(result.Name, "download", err))
		}
		result.Outcome = OutcomeDownloaded
		result.Bytes = n
		result.LocalHash = pair.Remote.Hash

	case ActionRenameUpload:
		backupName := naming.BackupName(result.Name, plan.Marker)
		if err := e.store.Rename(ctx, pair.Remote.ID, backupName); err != nil {
			return failed(result, transferError(result.Name, "rename", err))
		}
		result.Backup = backupName
		e.logger.Info("Renamed remote file",
			zap.String("file", result.Name),
			zap.String("backup", backupName))
		fallthrough

	case ActionUpload:
		if _, err := e.store.Upload(ctx, remote.Metadata{Name: result.Name, ParentFolderID: e.folderID}, pair.Local.Path); err != nil {
			return failed(result, transferError(result.Name, "upload", err))
		}
		result.Outcome = OutcomeUploaded
		result.Bytes = pair.Local.Size
		result.RemoteHash = result.LocalHash

	default:
		return failed(result, fmt.Errorf("unknown action %q", action.Type))
	}

	return result
}

func failed(result FileResult, err error) FileResult {
	result.Outcome = OutcomeFailed
	result.Err = err
	return result
}

func (e *Engine) progress(name, op string) remote.ProgressFunc {
	return func(fraction float64) {
		e.logger.Debug("Transfer progress",
			zap.String("file", name),
			zap.String("op", op),
			zap.Int("percent", int(fraction*100)))
	}
}

func (e *Engine) logResult(direction Direction, result FileResult) {
	fields := []zap.Field{
		zap.String("direction", string(direction)),
		zap.String("file", result.Name),
		zap.String("action", string(result.Action)),
		zap.String("outcome", string(result.Outcome)),
		zap.String("reason", result.Reason),
	}

	switch result.Outcome {
	case OutcomeFailed:
		e.logger.Error("File sync failed", append(fields, zap.Error(result.Err))...)
	case OutcomeUnchanged:
		e.logger.Debug("File unchanged", fields...)
	default:
		e.logger.Info("File synced", append(fields, zap.Int64("bytes", result.Bytes))...)
	}
}
