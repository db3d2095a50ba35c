// Package bna implements the Best Next Action resolver: a deterministic
// engine that reduces a user's competing onboarding, compliance, and CRM
// follow-up candidates to exactly one recommendation, or to a supportive
// message when nothing is currently recommendable.
package bna

import "agentcrm-backend/internal/actions"

// Kind discriminates the two recommendation variants.
type Kind string

const (
	KindAction   Kind = "action"
	KindGuidance Kind = "guidance"
)

// ReasonCode explains the category of reasoning behind an actionable
// recommendation. It is deliberately coarse so copy stays stable as the
// metadata table evolves.
type ReasonCode string

const (
	ReasonBlocker        ReasonCode = "blocker"
	ReasonRequired       ReasonCode = "required"
	ReasonCadenceAligned ReasonCode = "cadence_aligned"
	ReasonOps            ReasonCode = "ops"
)

// GuidanceReason explains why no action was recommended.
type GuidanceReason string

const (
	GuidanceWaitingOnApproval  GuidanceReason = "waiting_on_approval"
	GuidanceNoActionsAvailable GuidanceReason = "no_actions_available"
	GuidanceSystemLimit        GuidanceReason = "system_limit"
)

// Action is the actionable variant of a recommendation.
type Action struct {
	Type     actions.ActionType `json:"type"`
	TargetID string             `json:"targetId,omitempty"`
	Reason   ReasonCode         `json:"reason"`
	CTA      string             `json:"cta"`
	Context  ActionContext      `json:"context"`
}

// ActionContext carries the decision inputs for UI and audit.
type ActionContext struct {
	Category       actions.Category `json:"category"`
	Band           actions.Band     `json:"band"`
	UnblockScore   int              `json:"unblockScore"`
	CadenceAligned bool             `json:"cadenceAligned"`
	Explanation    string           `json:"explanation"`
}

// Guidance is the non-actionable variant.
type Guidance struct {
	Reason  GuidanceReason  `json:"reason"`
	Message string          `json:"message"`
	Context GuidanceContext `json:"context"`
}

// GuidanceContext carries state for caller-side UI continuity.
type GuidanceContext struct {
	OnboardingState  string      `json:"onboardingState"`
	LastCompletedKey actions.Key `json:"lastCompletedKey,omitempty"`
	BlockingReason   string      `json:"blockingReason,omitempty"`
}

// Recommendation is a tagged union: exactly one of Action or Guidance is
// set, matching Kind.
type Recommendation struct {
	Kind     Kind      `json:"kind"`
	Action   *Action   `json:"action,omitempty"`
	Guidance *Guidance `json:"guidance,omitempty"`
}

func actionRecommendation(a Action) Recommendation {
	return Recommendation{Kind: KindAction, Action: &a}
}

func guidanceRecommendation(g Guidance) Recommendation {
	return Recommendation{Kind: KindGuidance, Guidance: &g}
}
