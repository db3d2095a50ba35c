package users

import "time"

// Onboarding states are coarse on purpose: the resolver and guidance
// copy only ever branch on these three values.
const (
	StatePendingApproval = "pending_approval"
	StateInProgress      = "in_progress"
	StateOnboarded       = "onboarded"
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	Role            string    `json:"role"`
	OnboardingState string    `json:"onboardingState"`
	FullAccess      bool      `json:"fullAccess"`
	BlockingReason  string    `json:"blockingReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
