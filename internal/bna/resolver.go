package bna

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"agentcrm-backend/internal/cadence"
	"agentcrm-backend/internal/contacts"
	"agentcrm-backend/internal/plans"
	"agentcrm-backend/internal/users"
)

// PlanProvider is the read side of the daily-plan subsystem.
type PlanProvider interface {
	GetByUser(ctx context.Context, userID string) (plans.DailyPlan, error)
}

// UserDirectory looks up coarse onboarding state and access flags.
type UserDirectory interface {
	GetByID(ctx context.Context, userID string) (users.User, error)
}

// ContactDirectory lists a user's needs-follow-up contacts, oldest
// last-activity first.
type ContactDirectory interface {
	ListNeedsFollowUp(ctx context.Context, userID string, limit int) ([]contacts.Contact, error)
}

// Resolver composes the four pure stages (build, hard filter, cadence
// filter, tie-break) over data fetched from the external collaborators.
// It is stateless; every call allocates fresh candidates, so concurrent
// resolutions are safe.
type Resolver struct {
	Plans    PlanProvider
	Users    UserDirectory
	Contacts ContactDirectory
	Cadence  cadence.Provider
}

// Resolve picks the best next action for a user, or a supportive message
// when nothing is recommendable. uiContext is audit metadata only and
// never influences the decision. Missing user or plan data degrades to
// guidance; transient collaborator failures fail the whole call so the
// infrastructure layer can retry.
func (r *Resolver) Resolve(ctx context.Context, userID string, uiContext string) (Recommendation, error) {
	_ = uiContext // carried by the caller for audit, unused here on purpose

	if r.Plans == nil || r.Users == nil || r.Contacts == nil || r.Cadence == nil {
		return Recommendation{}, errors.New("bna: resolver not fully configured")
	}

	var (
		plan      plans.DailyPlan
		user      *users.User
		followUps []contacts.Contact
		day       int
	)

	// The four fetches are independent of one another; only the filter
	// stages depend on their results.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := r.Plans.GetByUser(gctx, userID)
		if err != nil {
			if errors.Is(err, plans.ErrNotFound) {
				plan = plans.DailyPlan{UserID: userID}
				return nil
			}
			return fmt.Errorf("fetch daily plan: %w", err)
		}
		plan = p
		return nil
	})
	g.Go(func() error {
		u, err := r.Users.GetByID(gctx, userID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("fetch user: %w", err)
		}
		user = &u
		return nil
	})
	g.Go(func() error {
		list, err := r.Contacts.ListNeedsFollowUp(gctx, userID, followUpLimit)
		if err != nil {
			return fmt.Errorf("fetch follow-up contacts: %w", err)
		}
		followUps = list
		return nil
	})
	g.Go(func() error {
		d, err := r.Cadence.Day(gctx)
		if err != nil {
			return fmt.Errorf("fetch cadence day: %w", err)
		}
		day = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return Recommendation{}, err
	}

	pool := buildPool(plan, followUps)
	legal := filterHard(pool, plan, user)
	if len(legal) == 0 {
		return buildGuidance(user, plan), nil
	}
	aligned := filterCadence(legal, day)
	return buildAction(pickWinner(aligned), day), nil
}
