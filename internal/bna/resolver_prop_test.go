package bna

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"pgregory.net/rapid"

	"agentcrm-backend/internal/actions"
	"agentcrm-backend/internal/contacts"
	"agentcrm-backend/internal/plans"
	"agentcrm-backend/internal/users"
)

var planKeys = []actions.Key{
	actions.KeyUploadLicense,
	actions.KeySignAgreement,
	actions.KeyExamScheduled,
	actions.KeyProfileCompleted,
	actions.KeyOrientationWatched,
	actions.KeyDirectDepositSet,
	actions.KeyUnlockFullAccess,
	actions.KeyAccountCreated,
	actions.KeyLicensedCheck,
}

func drawWorld(t *rapid.T) (plans.DailyPlan, users.User, []contacts.Contact, int) {
	plan := plans.DailyPlan{
		UserID:           "user-1",
		RequiredActions:  rapid.SliceOfN(rapid.SampledFrom(planKeys), 0, 9).Draw(t, "required"),
		CompletedActions: rapid.SliceOfN(rapid.SampledFrom(planKeys), 0, 9).Draw(t, "completed"),
	}
	user := users.User{
		ID: "user-1",
		OnboardingState: rapid.SampledFrom([]string{
			users.StatePendingApproval,
			users.StateInProgress,
			users.StateOnboarded,
		}).Draw(t, "state"),
		FullAccess: rapid.Bool().Draw(t, "fullAccess"),
	}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	numContacts := rapid.IntRange(0, 12).Draw(t, "numContacts")
	list := make([]contacts.Contact, 0, numContacts)
	for i := 0; i < numContacts; i++ {
		list = append(list, contacts.Contact{
			ID:             fmt.Sprintf("contact-%02d", i),
			UserID:         "user-1",
			PipelineStage:  contacts.StageNeedsFollowUp,
			LastActivityAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	day := rapid.IntRange(1, 14).Draw(t, "day")
	return plan, user, list, day
}

func TestResolveDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plan, user, list, day := drawWorld(t)
		r := newResolver(plan, user, list, day)

		first, err := r.Resolve(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("first Resolve: %v", err)
		}
		second, err := r.Resolve(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("second Resolve: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("resolution not deterministic: %+v vs %+v", first, second)
		}
	})
}

func TestResolveExactlyOneVariantProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plan, user, list, day := drawWorld(t)
		r := newResolver(plan, user, list, day)

		rec, err := r.Resolve(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		switch rec.Kind {
		case KindAction:
			if rec.Action == nil || rec.Guidance != nil {
				t.Fatalf("action variant malformed: %+v", rec)
			}
		case KindGuidance:
			if rec.Guidance == nil || rec.Action != nil {
				t.Fatalf("guidance variant malformed: %+v", rec)
			}
		default:
			t.Fatalf("unknown kind %q", rec.Kind)
		}
	})
}

func TestResolveWinnerInvariantsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plan, user, list, day := drawWorld(t)
		r := newResolver(plan, user, list, day)

		rec, err := r.Resolve(context.Background(), "user-1", "")
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if rec.Kind != KindAction {
			return
		}
		winner := rec.Action

		// A completed plan step must never be recommended.
		if key, ok := actions.KeyForType(winner.Type); ok && plan.IsCompleted(key) {
			t.Fatalf("recommended completed action %s", winner.Type)
		}

		// A blocker present among legal candidates always wins.
		legal := filterHard(buildPool(plan, list), plan, &user)
		for _, candidate := range legal {
			if candidate.Category == actions.CategoryBlocker &&
				winner.Context.Category != actions.CategoryBlocker {
				t.Fatalf("blocker candidate present but %s won", winner.Type)
			}
		}

		// Follow-up winners must target a real contact.
		if winner.Type == actions.TypeFollowUpContact {
			found := false
			for _, contact := range list {
				if contact.ID == winner.TargetID {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("follow-up target %q not in contact list", winner.TargetID)
			}
		}
	})
}
