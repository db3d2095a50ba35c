package bna

import (
	"fmt"
	"sort"
	"strings"

	"agentcrm-backend/internal/actions"
)

// pickWinner reduces a non-empty candidate list to exactly one winner.
// Each step keeps only the candidates sharing the best value present:
// category, then band, then unblock score, then lowest sequence index.
func pickWinner(pool []Candidate) Candidate {
	if len(pool) == 0 {
		panic("bna: pickWinner called with empty pool")
	}

	survivors := keepBest(pool, func(c Candidate) int { return c.Category.Rank() })
	survivors = keepBest(survivors, func(c Candidate) int { return c.Band.Rank() })
	survivors = keepBest(survivors, func(c Candidate) int { return c.UnblockScore })

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Seq < survivors[j].Seq
	})
	return survivors[0]
}

func keepBest(pool []Candidate, value func(Candidate) int) []Candidate {
	best := value(pool[0])
	for _, candidate := range pool[1:] {
		if v := value(candidate); v > best {
			best = v
		}
	}
	out := make([]Candidate, 0, len(pool))
	for _, candidate := range pool {
		if value(candidate) == best {
			out = append(out, candidate)
		}
	}
	return out
}

// reasonFor derives the coarse reason code for a winner. Category wins
// for blockers and required work; Ops winners are distinguished by
// whether the current day aligned them or the fallback rescued them.
func reasonFor(winner Candidate, day int) ReasonCode {
	switch winner.Category {
	case actions.CategoryBlocker:
		return ReasonBlocker
	case actions.CategoryRequired:
		return ReasonRequired
	default:
		if isCadenceAligned(winner, day) {
			return ReasonCadenceAligned
		}
		return ReasonOps
	}
}

// Explanations are keyed by reason code, not action type, so they stay
// stable as the metadata table evolves.
func explanationFor(reason ReasonCode, day int) string {
	switch reason {
	case ReasonBlocker:
		return "This item is blocking your progress, so it comes before anything else."
	case ReasonRequired:
		return "This is the highest-impact required step on your plan right now."
	case ReasonCadenceAligned:
		return fmt.Sprintf("Day %d of your program is a good time for outreach work like this.", day)
	default:
		return "Nothing on your plan is due today, so this follow-up is the best use of the moment."
	}
}

// buildAction renders the winner into the actionable recommendation
// variant, filling the CTA template with the contact name when present.
func buildAction(winner Candidate, day int) Recommendation {
	meta := actions.MetadataFor(winner.Type)
	reason := reasonFor(winner, day)

	cta := meta.CTA
	if strings.Contains(cta, "%s") {
		name := winner.TargetName
		if name == "" {
			name = "this contact"
		}
		cta = fmt.Sprintf(cta, name)
	}

	return actionRecommendation(Action{
		Type:     winner.Type,
		TargetID: winner.TargetID,
		Reason:   reason,
		CTA:      cta,
		Context: ActionContext{
			Category:       winner.Category,
			Band:           winner.Band,
			UnblockScore:   winner.UnblockScore,
			CadenceAligned: isCadenceAligned(winner, day),
			Explanation:    explanationFor(reason, day),
		},
	})
}
