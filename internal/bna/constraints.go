package bna

import (
	"agentcrm-backend/internal/actions"
	"agentcrm-backend/internal/plans"
	"agentcrm-backend/internal/users"
)

// filterHard drops candidates that are not currently legal to recommend.
// A nil user means the directory had no record: the result is empty so
// the caller degrades to supportive guidance instead of recommending
// against unknown state.
func filterHard(pool []Candidate, plan plans.DailyPlan, user *users.User) []Candidate {
	if user == nil {
		return nil
	}
	out := make([]Candidate, 0, len(pool))
	for _, candidate := range pool {
		if isCompleted(candidate, plan) {
			continue
		}
		// The plan should already have removed the unlock step for
		// full-access users; this guards against a stale snapshot.
		if candidate.Type == actions.TypeUnlockFullAccess && user.FullAccess {
			continue
		}
		if candidate.Category == actions.CategoryOps && user.OnboardingState != users.StateOnboarded {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func isCompleted(candidate Candidate, plan plans.DailyPlan) bool {
	key, ok := actions.KeyForType(candidate.Type)
	if !ok {
		return false
	}
	return plan.IsCompleted(key)
}
