package actions

import "fmt"

// Metadata is the immutable per-type record the resolver copies into
// candidates. UnblockScore estimates how many later actions completing
// this one makes available (0..5).
type Metadata struct {
	Category     Category
	Band         Band
	UnblockScore int
	CTA          string
}

// MetadataFor returns the static metadata for an action type. An unknown
// type means the catalog and the enum are out of sync, which is a
// configuration bug, so it panics rather than guessing.
func MetadataFor(t ActionType) Metadata {
	switch t {
	case TypeUploadLicense:
		return Metadata{
			Category:     CategoryBlocker,
			Band:         BandHigh,
			UnblockScore: 4,
			CTA:          "Upload your insurance license to keep your onboarding moving",
		}
	case TypeSignAgreement:
		return Metadata{
			Category:     CategoryBlocker,
			Band:         BandHigh,
			UnblockScore: 3,
			CTA:          "Review and sign your producer agreement",
		}
	case TypeScheduleExam:
		return Metadata{
			Category:     CategoryRequired,
			Band:         BandHigh,
			UnblockScore: 5,
			CTA:          "Schedule your licensing exam",
		}
	case TypeCompleteProfile:
		return Metadata{
			Category:     CategoryRequired,
			Band:         BandMed,
			UnblockScore: 2,
			CTA:          "Finish filling out your agent profile",
		}
	case TypeWatchOrientation:
		return Metadata{
			Category:     CategoryRequired,
			Band:         BandLow,
			UnblockScore: 1,
			CTA:          "Watch the new agent orientation video",
		}
	case TypeSetUpDirectDeposit:
		return Metadata{
			Category:     CategoryRequired,
			Band:         BandMed,
			UnblockScore: 1,
			CTA:          "Set up direct deposit so commissions can be paid out",
		}
	case TypeFollowUpContact:
		return Metadata{
			Category:     CategoryOps,
			Band:         BandMed,
			UnblockScore: 0,
			CTA:          "Reach out to %s, it has been a while since your last touch",
		}
	case TypeUnlockFullAccess:
		return Metadata{
			Category:     CategoryRequired,
			Band:         BandHigh,
			UnblockScore: 5,
			CTA:          "Unlock full platform access to start working your book",
		}
	default:
		panic(fmt.Sprintf("actions: no metadata for action type %q", t))
	}
}

// init verifies the catalog is internally consistent so a drifted table
// fails at process start instead of mid-request.
func init() {
	for _, t := range All() {
		meta := MetadataFor(t)
		if meta.UnblockScore < 0 || meta.UnblockScore > 5 {
			panic(fmt.Sprintf("actions: unblock score out of range for %q: %d", t, meta.UnblockScore))
		}
		if meta.CTA == "" {
			panic(fmt.Sprintf("actions: empty CTA for %q", t))
		}
	}
}
