// Package plans exposes the daily-plan snapshots computed by the
// onboarding subsystem. Which steps are required versus completed is
// decided over there; this package only reads the result.
package plans

import (
	"context"

	"agentcrm-backend/internal/actions"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "daily plan not found" }

// DailyPlan is a per-user snapshot. Both lists arrive already filtered
// for prerequisite satisfaction.
type DailyPlan struct {
	UserID           string        `json:"userId"`
	RequiredActions  []actions.Key `json:"requiredActions"`
	CompletedActions []actions.Key `json:"completedActions"`
}

// LastCompleted returns the most recently completed action key, if any.
// The completed list is append-ordered by the plan subsystem.
func (p DailyPlan) LastCompleted() (actions.Key, bool) {
	if len(p.CompletedActions) == 0 {
		return "", false
	}
	return p.CompletedActions[len(p.CompletedActions)-1], true
}

// IsCompleted reports whether the key appears in the completed list.
func (p DailyPlan) IsCompleted(key actions.Key) bool {
	for _, k := range p.CompletedActions {
		if k == key {
			return true
		}
	}
	return false
}

type Repo interface {
	GetByUser(ctx context.Context, userID string) (DailyPlan, error)
	Upsert(ctx context.Context, plan DailyPlan) error
}
