package queue

import "context"

// Client publishes recommendation audit events to a queue backend.
type Client interface {
	Send(ctx context.Context, event Event) error
}
