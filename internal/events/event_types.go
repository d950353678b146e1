package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSnapshotRefreshed EventType = "snapshot_refreshed"
	EventSnapshotFailed    EventType = "snapshot_failed"
	EventPreferencesSaved  EventType = "preferences_saved"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType EventType, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// SnapshotRefreshedPayload payload.
type SnapshotRefreshedPayload struct {
	Tickets  int   `json:"tickets"`
	Users    int   `json:"users"`
	Duration int64 `json:"duration_ms"`
}

// SnapshotFailedPayload payload.
type SnapshotFailedPayload struct {
	Reason string `json:"reason"`
}

// PreferencesSavedPayload payload.
type PreferencesSavedPayload struct {
	ViewerID string `json:"viewer_id"`
	Grouping string `json:"grouping"`
	Ordering string `json:"ordering"`
}
