// Package actions holds the static catalog of recommendable actions:
// the closed ActionType set, per-type metadata, and the mapping between
// onboarding-plan step keys and action types.
package actions

// ActionType identifies a single recommendable action.
type ActionType string

const (
	TypeUploadLicense      ActionType = "upload_license"
	TypeSignAgreement      ActionType = "sign_agreement"
	TypeScheduleExam       ActionType = "schedule_exam"
	TypeCompleteProfile    ActionType = "complete_profile"
	TypeWatchOrientation   ActionType = "watch_orientation"
	TypeSetUpDirectDeposit ActionType = "set_up_direct_deposit"
	TypeFollowUpContact    ActionType = "follow_up_contact"
	TypeUnlockFullAccess   ActionType = "unlock_full_access"
)

// All lists every action type the engine can recommend. The order is
// stable and used by the init-time metadata check.
func All() []ActionType {
	return []ActionType{
		TypeUploadLicense,
		TypeSignAgreement,
		TypeScheduleExam,
		TypeCompleteProfile,
		TypeWatchOrientation,
		TypeSetUpDirectDeposit,
		TypeFollowUpContact,
		TypeUnlockFullAccess,
	}
}

// Category ranks actions by precedence. Blocker always outranks
// Required, which always outranks Ops.
type Category string

const (
	CategoryBlocker  Category = "blocker"
	CategoryRequired Category = "required"
	CategoryOps      Category = "ops"
)

// Rank returns the precedence rank of a category, higher wins.
func (c Category) Rank() int {
	switch c {
	case CategoryBlocker:
		return 3
	case CategoryRequired:
		return 2
	case CategoryOps:
		return 1
	default:
		return 0
	}
}

// Band is the secondary priority tier within a category.
type Band string

const (
	BandHigh Band = "high"
	BandMed  Band = "med"
	BandLow  Band = "low"
)

// Rank returns the priority rank of a band, higher wins.
func (b Band) Rank() int {
	switch b {
	case BandHigh:
		return 3
	case BandMed:
		return 2
	case BandLow:
		return 1
	default:
		return 0
	}
}
