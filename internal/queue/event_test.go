package queue

import "testing"

func TestEventRoundTrip(t *testing.T) {
	event := Event{
		RecommendationID: "rec-1",
		UserID:           "user-1",
		Kind:             "action",
		Reason:           "blocker",
		Status:           "presented",
		RequestID:        "req-1",
		EmittedAt:        "2026-08-24T12:00:00Z",
		Version:          1,
	}

	payload, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	decoded, err := DecodeEvent(payload)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}
	if decoded != event {
		t.Fatalf("round trip mismatch: %+v vs %+v", decoded, event)
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}
