package recommendations

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"agentcrm-backend/internal/bna"
	"agentcrm-backend/internal/queue"
	"agentcrm-backend/internal/shared/metrics"
	"agentcrm-backend/internal/shared/telemetry"
)

// ActionResolver is the decision engine the service fronts.
type ActionResolver interface {
	Resolve(ctx context.Context, userID string, uiContext string) (bna.Recommendation, error)
}

// Service resolves recommendations and manages their audit lifecycle.
// Persistence and queue publication are best-effort: the caller always
// gets the recommendation when resolution itself succeeded.
type Service struct {
	Resolver ActionResolver
	Repo     Repo
	Queue    queue.Client
	Now      func() time.Time
}

func NewService(resolver ActionResolver, repo Repo, q queue.Client) *Service {
	return &Service{
		Resolver: resolver,
		Repo:     repo,
		Queue:    q,
		Now:      time.Now,
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Next resolves the best next action for a user, records an audit entry,
// and publishes a presented event. Audit failures are logged, never
// surfaced.
func (s *Service) Next(ctx context.Context, userID, uiContext, requestID string) (Record, bna.Recommendation, error) {
	if s == nil || s.Resolver == nil {
		return Record{}, bna.Recommendation{}, errors.New("recommendations service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return Record{}, bna.Recommendation{}, errors.New("user id is required")
	}

	started := s.now()
	rec, err := s.Resolver.Resolve(ctx, userID, uiContext)
	if err != nil {
		metrics.IncResolveFailed()
		return Record{}, bna.Recommendation{}, err
	}
	metrics.ObserveResolveDurationMs(float64(time.Since(started).Microseconds()) / 1000.0)
	switch rec.Kind {
	case bna.KindAction:
		metrics.IncResolveActionable()
	default:
		metrics.IncResolveGuidance()
	}

	now := s.now()
	payload, err := json.Marshal(rec)
	if err != nil {
		return Record{}, bna.Recommendation{}, err
	}

	record := Record{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        now.Truncate(24 * time.Hour),
		UIContext:   uiContext,
		Payload:     payload,
		Status:      StatusPresented,
		PresentedAt: now,
		UpdatedAt:   now,
	}

	if s.Repo != nil {
		if err := s.Repo.Create(ctx, record); err != nil {
			telemetry.Error("recommendations.audit_failed", map[string]any{
				"user_id":           userID,
				"recommendation_id": record.ID,
				"error":             err.Error(),
			})
		}
	}
	s.publish(ctx, record, rec, requestID)

	return record, rec, nil
}

// UpdateStatus moves a recommendation through its lifecycle and publishes
// the change for downstream CRM sync.
func (s *Service) UpdateStatus(ctx context.Context, userID, id string, status Status, requestID string) (Record, error) {
	if s == nil || s.Repo == nil {
		return Record{}, errors.New("recommendations service not configured")
	}
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(id) == "" {
		return Record{}, errors.New("user id and recommendation id are required")
	}

	record, err := s.Repo.UpdateStatus(ctx, userID, id, status)
	if err != nil {
		return Record{}, err
	}

	var rec bna.Recommendation
	if err := json.Unmarshal(record.Payload, &rec); err != nil {
		telemetry.Error("recommendations.payload_decode_failed", map[string]any{
			"recommendation_id": record.ID,
			"error":             err.Error(),
		})
	}
	s.publish(ctx, record, rec, requestID)

	return record, nil
}

// ListByUser returns a user's recommendation history, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("recommendations service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

func (s *Service) publish(ctx context.Context, record Record, rec bna.Recommendation, requestID string) {
	if s.Queue == nil {
		return
	}
	event := queue.Event{
		RecommendationID: record.ID,
		UserID:           record.UserID,
		Kind:             string(rec.Kind),
		Reason:           reasonOf(rec),
		Status:           string(record.Status),
		RequestID:        requestID,
		EmittedAt:        s.now().Format(time.RFC3339),
		Version:          1,
	}
	if err := s.Queue.Send(ctx, event); err != nil {
		telemetry.Error("recommendations.publish_failed", map[string]any{
			"recommendation_id": record.ID,
			"status":            string(record.Status),
			"error":             err.Error(),
		})
	}
}

func reasonOf(rec bna.Recommendation) string {
	switch rec.Kind {
	case bna.KindAction:
		if rec.Action != nil {
			return string(rec.Action.Reason)
		}
	case bna.KindGuidance:
		if rec.Guidance != nil {
			return string(rec.Guidance.Reason)
		}
	}
	return ""
}
