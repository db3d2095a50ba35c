package bna

import (
	"context"
	"errors"
	"testing"
	"time"

	"agentcrm-backend/internal/actions"
	"agentcrm-backend/internal/cadence"
	"agentcrm-backend/internal/contacts"
	"agentcrm-backend/internal/plans"
	"agentcrm-backend/internal/users"
)

type fakePlans struct {
	plan plans.DailyPlan
	err  error
}

func (f fakePlans) GetByUser(ctx context.Context, userID string) (plans.DailyPlan, error) {
	if f.err != nil {
		return plans.DailyPlan{}, f.err
	}
	return f.plan, nil
}

type fakeUsers struct {
	user users.User
	err  error
}

func (f fakeUsers) GetByID(ctx context.Context, userID string) (users.User, error) {
	if f.err != nil {
		return users.User{}, f.err
	}
	return f.user, nil
}

type fakeContacts struct {
	list []contacts.Contact
	err  error
}

func (f fakeContacts) ListNeedsFollowUp(ctx context.Context, userID string, limit int) ([]contacts.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.list) > limit {
		return f.list[:limit], nil
	}
	return f.list, nil
}

func newResolver(plan plans.DailyPlan, user users.User, list []contacts.Contact, day int) *Resolver {
	return &Resolver{
		Plans:    fakePlans{plan: plan},
		Users:    fakeUsers{user: user},
		Contacts: fakeContacts{list: list},
		Cadence:  cadence.Fixed(day),
	}
}

func staleContacts(n int) []contacts.Contact {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	out := make([]contacts.Contact, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, contacts.Contact{
			ID:             "contact-" + string(rune('a'+i)),
			UserID:         "user-1",
			FullName:       "Contact " + string(rune('A'+i)),
			PipelineStage:  contacts.StageNeedsFollowUp,
			LastActivityAt: base.Add(time.Duration(i) * 24 * time.Hour),
		})
	}
	return out
}

func TestResolveExamBeatsFollowUpsOnEarlyDay(t *testing.T) {
	plan := plans.DailyPlan{
		UserID:          "user-1",
		RequiredActions: []actions.Key{actions.KeyExamScheduled},
	}
	user := users.User{ID: "user-1", OnboardingState: users.StateOnboarded}

	r := newResolver(plan, user, staleContacts(3), 2)
	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindAction || rec.Action == nil {
		t.Fatalf("expected actionable recommendation, got %+v", rec)
	}
	if rec.Action.Type != actions.TypeScheduleExam {
		t.Fatalf("expected schedule exam to win, got %s", rec.Action.Type)
	}
	if rec.Action.Reason != ReasonRequired {
		t.Fatalf("expected required reason, got %s", rec.Action.Reason)
	}
}

func TestResolveOnboardedNoCandidates(t *testing.T) {
	user := users.User{ID: "user-1", OnboardingState: users.StateOnboarded}
	r := newResolver(plans.DailyPlan{UserID: "user-1"}, user, nil, 5)

	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindGuidance || rec.Guidance.Reason != GuidanceNoActionsAvailable {
		t.Fatalf("expected no-actions-available guidance, got %+v", rec)
	}
}

func TestResolvePendingApproval(t *testing.T) {
	user := users.User{
		ID:              "user-1",
		OnboardingState: users.StatePendingApproval,
		BlockingReason:  "license verification pending",
	}
	r := newResolver(plans.DailyPlan{UserID: "user-1"}, user, nil, 1)

	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindGuidance || rec.Guidance.Reason != GuidanceWaitingOnApproval {
		t.Fatalf("expected waiting-on-approval guidance, got %+v", rec)
	}
	if rec.Guidance.Context.BlockingReason != "license verification pending" {
		t.Fatalf("expected blocking reason, got %q", rec.Guidance.Context.BlockingReason)
	}
}

func TestResolveOldestContactWinsLateDay(t *testing.T) {
	user := users.User{ID: "user-1", OnboardingState: users.StateOnboarded}
	list := staleContacts(2)
	r := newResolver(plans.DailyPlan{UserID: "user-1"}, user, list, 4)

	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindAction || rec.Action.Type != actions.TypeFollowUpContact {
		t.Fatalf("expected follow-up recommendation, got %+v", rec)
	}
	if rec.Action.TargetID != list[0].ID {
		t.Fatalf("expected oldest contact %s, got %s", list[0].ID, rec.Action.TargetID)
	}
	if rec.Action.Reason != ReasonCadenceAligned {
		t.Fatalf("expected cadence-aligned reason on day 4, got %s", rec.Action.Reason)
	}
}

func TestResolveCadenceFallbackNeverReturnsGuidance(t *testing.T) {
	// Only Ops candidates on an early day: cadence filtering would empty
	// the set, so the fallback must still produce an action.
	user := users.User{ID: "user-1", OnboardingState: users.StateOnboarded}
	r := newResolver(plans.DailyPlan{UserID: "user-1"}, user, staleContacts(1), 2)

	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindAction {
		t.Fatalf("expected action via cadence fallback, got %+v", rec)
	}
	if rec.Action.Reason != ReasonOps {
		t.Fatalf("expected ops reason for rescued candidate, got %s", rec.Action.Reason)
	}
}

func TestResolveCompletedExcluded(t *testing.T) {
	plan := plans.DailyPlan{
		UserID:           "user-1",
		RequiredActions:  []actions.Key{actions.KeyUploadLicense, actions.KeyProfileCompleted},
		CompletedActions: []actions.Key{actions.KeyUploadLicense},
	}
	user := users.User{ID: "user-1", OnboardingState: users.StateInProgress}
	r := newResolver(plan, user, nil, 1)

	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindAction || rec.Action.Type != actions.TypeCompleteProfile {
		t.Fatalf("expected completed action excluded, got %+v", rec)
	}
}

func TestResolveIdempotent(t *testing.T) {
	plan := plans.DailyPlan{
		UserID:          "user-1",
		RequiredActions: []actions.Key{actions.KeyUploadLicense, actions.KeyExamScheduled},
	}
	user := users.User{ID: "user-1", OnboardingState: users.StateInProgress}
	r := newResolver(plan, user, nil, 3)

	first, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first.Action.Type != second.Action.Type ||
		first.Action.TargetID != second.Action.TargetID ||
		first.Action.Reason != second.Action.Reason {
		t.Fatalf("resolution not idempotent: %+v vs %+v", first.Action, second.Action)
	}
}

func TestResolveUIContextHasNoEffect(t *testing.T) {
	plan := plans.DailyPlan{
		UserID:          "user-1",
		RequiredActions: []actions.Key{actions.KeyExamScheduled},
	}
	user := users.User{ID: "user-1", OnboardingState: users.StateInProgress}
	r := newResolver(plan, user, nil, 1)

	plain, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	withContext, err := r.Resolve(context.Background(), "user-1", "dashboard_card")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if plain.Action.Type != withContext.Action.Type || plain.Action.Reason != withContext.Action.Reason {
		t.Fatalf("ui context changed the decision: %+v vs %+v", plain.Action, withContext.Action)
	}
}

func TestResolveMissingUserDegradesToGuidance(t *testing.T) {
	r := &Resolver{
		Plans:    fakePlans{plan: plans.DailyPlan{RequiredActions: []actions.Key{actions.KeyExamScheduled}}},
		Users:    fakeUsers{err: users.ErrNotFound},
		Contacts: fakeContacts{},
		Cadence:  cadence.Fixed(1),
	}
	rec, err := r.Resolve(context.Background(), "missing", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindGuidance || rec.Guidance.Reason != GuidanceSystemLimit {
		t.Fatalf("expected system-limit guidance for missing user, got %+v", rec)
	}
}

func TestResolveMissingPlanStillServesFollowUps(t *testing.T) {
	r := &Resolver{
		Plans:    fakePlans{err: plans.ErrNotFound},
		Users:    fakeUsers{user: users.User{ID: "user-1", OnboardingState: users.StateOnboarded}},
		Contacts: fakeContacts{list: staleContacts(1)},
		Cadence:  cadence.Fixed(6),
	}
	rec, err := r.Resolve(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rec.Kind != KindAction || rec.Action.Type != actions.TypeFollowUpContact {
		t.Fatalf("expected follow-up despite missing plan, got %+v", rec)
	}
}

func TestResolveCadenceFailureFailsCall(t *testing.T) {
	r := &Resolver{
		Plans:    fakePlans{},
		Users:    fakeUsers{user: users.User{ID: "user-1", OnboardingState: users.StateInProgress}},
		Contacts: fakeContacts{},
		Cadence:  failingDay{},
	}
	if _, err := r.Resolve(context.Background(), "user-1", ""); err == nil {
		t.Fatalf("expected error when cadence lookup fails")
	}
}

func TestResolveContactFailureFailsCall(t *testing.T) {
	r := &Resolver{
		Plans:    fakePlans{},
		Users:    fakeUsers{user: users.User{ID: "user-1", OnboardingState: users.StateOnboarded}},
		Contacts: fakeContacts{err: errors.New("crm unavailable")},
		Cadence:  cadence.Fixed(1),
	}
	if _, err := r.Resolve(context.Background(), "user-1", ""); err == nil {
		t.Fatalf("expected error when contact lookup fails")
	}
}

type failingDay struct{}

func (failingDay) Day(ctx context.Context) (int, error) {
	return 0, errors.New("cadence store unavailable")
}
