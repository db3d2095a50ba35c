package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// Upsert persists directory changes pushed by the onboarding system
// (state transitions, access grants).
func (s *Service) Upsert(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	if user.OnboardingState == "" {
		user.OnboardingState = StateInProgress
	}
	switch user.OnboardingState {
	case StatePendingApproval, StateInProgress, StateOnboarded:
	default:
		return errors.New("unknown onboarding state " + user.OnboardingState)
	}
	return s.Repo.Upsert(ctx, user)
}
