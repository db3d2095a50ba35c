package bna

import "agentcrm-backend/internal/actions"

// Candidate is an ephemeral, per-resolution view of one potentially
// recommendable action. Metadata fields are copied from the static
// catalog at build time and never mutated afterward; Seq records
// discovery order and is the final tie-break.
type Candidate struct {
	Type         actions.ActionType
	Category     actions.Category
	Band         actions.Band
	UnblockScore int
	TargetID     string
	TargetName   string
	Seq          int
}

func newCandidate(t actions.ActionType, seq int) Candidate {
	meta := actions.MetadataFor(t)
	return Candidate{
		Type:         t,
		Category:     meta.Category,
		Band:         meta.Band,
		UnblockScore: meta.UnblockScore,
		Seq:          seq,
	}
}
