package reconcile

import (
	"fmt"

	"save-sync/core/remote"
)

// matchLive picks, for every tracked name, the first listed object the profile
// accepts as live. Further accepted objects are returned as ambiguous so the
// caller can log them; they are never used.
func matchLive(profile Profile, listing []remote.Object) (map[string]*remote.Object, map[string][]string) {
	live := make(map[string]*remote.Object, len(profile.Files))
	ambiguous := make(map[string][]string)

	for _, tracked := range profile.Files {
		for i := range listing {
			obj := &listing[i]
			if !profile.isLive(tracked, obj.Name) {
				continue
			}
			if _, taken := live[tracked]; taken {
				ambiguous[tracked] = append(ambiguous[tracked], obj.ID)
				continue
			}
			live[tracked] = obj
		}
	}

	return live, ambiguous
}

// buildPlan turns observed local and remote state into per-file actions.
// localErrs holds files whose local state could not be read; listErr, when
// set, fails every file.
func buildPlan(
	direction Direction,
	profile Profile,
	marker string,
	locals []LocalFileState,
	localErrs map[string]error,
	listing []remote.Object,
	listErr error,
) *Plan {
	live, _ := matchLive(profile, listing)

	pairs := make([]MatchedPair, 0, len(locals))
	for _, local := range locals {
		pairs = append(pairs, MatchedPair{Local: local, Remote: live[local.Name]})
	}

	actions := make([]Action, 0, len(pairs))
	for _, pair := range pairs {
		name := pair.Local.Name

		switch {
		case listErr != nil:
			actions = append(actions, Action{
				Type:   ActionNone,
				Pair:   pair,
				Reason: "remote listing failed",
				Err:    &FileError{Name: name, Op: "list", Kind: ErrRemoteTransfer, Err: listErr},
			})
		case localErrs[name] != nil:
			actions = append(actions, Action{
				Type:   ActionNone,
				Pair:   pair,
				Reason: "local file unreadable",
				Err:    &FileError{Name: name, Op: "hash", Kind: ErrLocalIO, Err: localErrs[name]},
			})
		case direction == DirectionPull:
			actions = append(actions, decidePull(profile, pair, siblingExists(pairs, name)))
		default:
			actions = append(actions, decidePush(pair))
		}
	}

	return &Plan{
		Direction: direction,
		Profile:   profile.Name,
		Marker:    marker,
		Actions:   actions,
		Summary:   summarize(actions),
	}
}

// decidePull applies the pull decision table to one file.
func decidePull(profile Profile, pair MatchedPair, siblingPresent bool) Action {
	action := Action{Type: ActionNone, Pair: pair}

	switch {
	case pair.Remote == nil && pair.Local.Exists():
		action.Reason = "no remote copy"
	case pair.Remote == nil:
		action.Reason = "absent on both sides"
	case !pair.Local.Exists():
		action.Type = ActionDownload
		action.Reason = "missing locally"
		if profile.Paired && siblingPresent {
			action.Reason = "restore missing pair member"
		}
	case pair.InSync():
		action.Reason = "up to date"
	default:
		action.Type = ActionBackupDownload
		action.Reason = fmt.Sprintf("content differs (local %s, remote %s)", short(*pair.Local.Hash), short(pair.Remote.Hash))
	}

	return action
}

// decidePush applies the push decision table to one file.
func decidePush(pair MatchedPair) Action {
	action := Action{Type: ActionNone, Pair: pair}

	switch {
	case !pair.Local.Exists():
		action.Reason = "missing locally"
	case pair.Remote == nil:
		action.Type = ActionUpload
		action.Reason = "no remote copy"
	case pair.InSync():
		action.Reason = "up to date"
	default:
		action.Type = ActionRenameUpload
		action.Reason = fmt.Sprintf("content differs (local %s, remote %s)", short(*pair.Local.Hash), short(pair.Remote.Hash))
	}

	return action
}

func siblingExists(pairs []MatchedPair, name string) bool {
	for _, p := range pairs {
		if p.Local.Name != name && p.Local.Exists() {
			return true
		}
	}
	return false
}

func summarize(actions []Action) PlanSummary {
	summary := PlanSummary{TotalFiles: len(actions)}
	for _, a := range actions {
		if a.Err != nil {
			summary.Unplanned++
			continue
		}
		if a.Type.Transfers() {
			summary.Transfers++
		}
		if a.Type == ActionBackupDownload || a.Type == ActionRenameUpload {
			summary.Backups++
		}
	}
	return summary
}

func short(h string) string {
	if len(h) > 8 {
		return h[:8]
	}
	return h
}
