package contacts

import "context"

type Repo interface {
	Create(ctx context.Context, contact Contact) error
	// ListNeedsFollowUp returns contacts in the needs-follow-up stage for
	// a user, oldest last-activity first, capped at limit.
	ListNeedsFollowUp(ctx context.Context, userID string, limit int) ([]Contact, error)
}
