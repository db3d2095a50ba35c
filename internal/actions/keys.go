package actions

// Key is a step identifier used by the daily-plan subsystem. A subset of
// keys correspond to recommendable actions; the rest are system
// milestones (account creation, license verification checks) that the
// resolver never surfaces.
type Key string

const (
	KeyUploadLicense      Key = "upload_license"
	KeySignAgreement      Key = "sign_agreement"
	KeyExamScheduled      Key = "exam_scheduled"
	KeyProfileCompleted   Key = "profile_completed"
	KeyOrientationWatched Key = "orientation_watched"
	KeyDirectDepositSet   Key = "direct_deposit_set"
	KeyUnlockFullAccess   Key = "unlock_full_access"

	// Milestone keys with no recommendable action behind them.
	KeyAccountCreated Key = "account_created"
	KeyLicensedCheck  Key = "licensed_check"
)

var keyToType = map[Key]ActionType{
	KeyUploadLicense:      TypeUploadLicense,
	KeySignAgreement:      TypeSignAgreement,
	KeyExamScheduled:      TypeScheduleExam,
	KeyProfileCompleted:   TypeCompleteProfile,
	KeyOrientationWatched: TypeWatchOrientation,
	KeyDirectDepositSet:   TypeSetUpDirectDeposit,
	KeyUnlockFullAccess:   TypeUnlockFullAccess,
}

var typeToKey = func() map[ActionType]Key {
	out := make(map[ActionType]Key, len(keyToType))
	for k, t := range keyToType {
		out[t] = k
	}
	return out
}()

// TypeForKey resolves a plan key to its action type. Milestone keys
// return ok=false and are skipped by the candidate pool builder.
func TypeForKey(k Key) (ActionType, bool) {
	t, ok := keyToType[k]
	return t, ok
}

// KeyForType is the reverse mapping. CRM-derived types such as
// TypeFollowUpContact have no plan key and return ok=false.
func KeyForType(t ActionType) (Key, bool) {
	k, ok := typeToKey[t]
	return k, ok
}
