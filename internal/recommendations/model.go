// Package recommendations persists one audit record per resolution and
// tracks its presentation lifecycle. The resolver never reads these
// records to make a decision; they exist for traceability and UI state.
package recommendations

import (
	"encoding/json"
	"time"
)

type Status string

const (
	StatusPresented Status = "presented"
	StatusAccepted  Status = "accepted"
	StatusDismissed Status = "dismissed"
	StatusCompleted Status = "completed"
)

// ParseStatus validates a client-supplied status value.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case StatusPresented, StatusAccepted, StatusDismissed, StatusCompleted:
		return Status(raw), true
	default:
		return "", false
	}
}

// CanTransition reports whether a lifecycle move is legal. Dismissed and
// completed are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPresented:
		return to == StatusAccepted || to == StatusDismissed || to == StatusCompleted
	case StatusAccepted:
		return to == StatusCompleted || to == StatusDismissed
	default:
		return false
	}
}

// Record is one persisted recommendation. Date is the UTC calendar day
// of the resolution; Payload is the serialized recommendation as
// returned to the caller.
type Record struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Date        time.Time       `json:"date"`
	UIContext   string          `json:"uiContext,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	Status      Status          `json:"status"`
	PresentedAt time.Time       `json:"presentedAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
