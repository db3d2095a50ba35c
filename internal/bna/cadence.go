package bna

import "agentcrm-backend/internal/actions"

// earlyCadenceCutoff is the last day of the onboarding-focused window.
// Through this day Ops work is deferred so new agents stay on their
// plan; from the next day on every category is in play.
const earlyCadenceCutoff = 3

// isCadenceAligned reports whether a candidate's category fits the
// current program day. Blockers are always aligned.
func isCadenceAligned(candidate Candidate, day int) bool {
	switch candidate.Category {
	case actions.CategoryBlocker:
		return true
	case actions.CategoryRequired:
		return true
	default:
		return day > earlyCadenceCutoff
	}
}

// filterCadence applies the day-based bias. Filter first, fall back to
// all: timing alone must never stall progress, so an empty result
// returns the input unchanged.
func filterCadence(pool []Candidate, day int) []Candidate {
	out := make([]Candidate, 0, len(pool))
	for _, candidate := range pool {
		if isCadenceAligned(candidate, day) {
			out = append(out, candidate)
		}
	}
	if len(out) == 0 {
		return pool
	}
	return out
}
