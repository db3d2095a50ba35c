package bna

import (
	"agentcrm-backend/internal/plans"
	"agentcrm-backend/internal/users"
)

// buildGuidance produces the non-actionable variant when no candidate
// survived the hard constraints. A missing user degrades to a generic
// system-limit message rather than an error.
func buildGuidance(user *users.User, plan plans.DailyPlan) Recommendation {
	if user == nil {
		return guidanceRecommendation(Guidance{
			Reason:  GuidanceSystemLimit,
			Message: "We couldn't load your account right now. Please contact support if this keeps happening.",
		})
	}

	ctx := GuidanceContext{OnboardingState: user.OnboardingState}
	if key, ok := plan.LastCompleted(); ok {
		ctx.LastCompletedKey = key
	}

	switch user.OnboardingState {
	case users.StatePendingApproval:
		ctx.BlockingReason = user.BlockingReason
		return guidanceRecommendation(Guidance{
			Reason:  GuidanceWaitingOnApproval,
			Message: "Your application is under review. We'll let you know as soon as it's approved.",
			Context: ctx,
		})
	case users.StateOnboarded:
		return guidanceRecommendation(Guidance{
			Reason:  GuidanceNoActionsAvailable,
			Message: "You're all caught up. Nothing needs your attention right now.",
			Context: ctx,
		})
	default:
		return guidanceRecommendation(Guidance{
			Reason:  GuidanceNoActionsAvailable,
			Message: "Great progress. There's nothing new on your plan at the moment.",
			Context: ctx,
		})
	}
}
