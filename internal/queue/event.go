package queue

import "encoding/json"

// Event is the payload published for downstream CRM sync whenever a
// recommendation is presented or changes lifecycle status.
type Event struct {
	RecommendationID string `json:"recommendationId"`
	UserID           string `json:"userId"`
	Kind             string `json:"kind"`
	Reason           string `json:"reason"`
	Status           string `json:"status"`
	RequestID        string `json:"requestId,omitempty"`
	EmittedAt        string `json:"emittedAt"`
	Version          int    `json:"version"`
}

// EncodeEvent returns the JSON representation of an event.
func EncodeEvent(event Event) ([]byte, error) {
	return json.Marshal(event)
}

// DecodeEvent parses a JSON payload into an Event.
func DecodeEvent(payload []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}
