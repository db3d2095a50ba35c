package bna

import (
	"agentcrm-backend/internal/actions"
	"agentcrm-backend/internal/contacts"
	"agentcrm-backend/internal/plans"
)

// followUpLimit bounds how many CRM follow-up candidates enter one pool.
const followUpLimit = 10

// buildPool assembles candidates from the daily plan and the follow-up
// backlog. Plan-derived candidates always precede CRM-derived ones, and
// sequence indices respect discovery order. Pure: no I/O, no mutation of
// inputs.
func buildPool(plan plans.DailyPlan, followUps []contacts.Contact) []Candidate {
	pool := make([]Candidate, 0, len(plan.RequiredActions)+len(followUps))
	seq := 0

	for _, key := range plan.RequiredActions {
		t, ok := actions.TypeForKey(key)
		if !ok {
			// System milestones have no user-facing action.
			continue
		}
		pool = append(pool, newCandidate(t, seq))
		seq++
	}

	for i, contact := range followUps {
		if i >= followUpLimit {
			break
		}
		candidate := newCandidate(actions.TypeFollowUpContact, seq)
		candidate.TargetID = contact.ID
		candidate.TargetName = contact.FullName
		pool = append(pool, candidate)
		seq++
	}

	return pool
}
