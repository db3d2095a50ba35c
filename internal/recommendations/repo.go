package recommendations

import "context"

var (
	ErrNotFound          = errNotFound{}
	ErrInvalidTransition = errInvalidTransition{}
)

type errNotFound struct{}

func (errNotFound) Error() string { return "recommendation not found" }

type errInvalidTransition struct{}

func (errInvalidTransition) Error() string { return "invalid status transition" }

type Repo interface {
	Create(ctx context.Context, record Record) error
	GetByID(ctx context.Context, userID, id string) (Record, error)
	UpdateStatus(ctx context.Context, userID, id string, status Status) (Record, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Record, error)
}
