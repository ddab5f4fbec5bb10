package event

import (
	"encoding/json"
	"time"
)

// TimestampLayout matches the ISO-8601 form browsers produce (millisecond precision, UTC).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the wire representation of an Event pushed to clients.
type Envelope struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	ListID    string `json:"listId"`
	UserID    string `json:"userId,omitempty"`
	Timestamp string `json:"timestamp"`
}

func ToEnvelope(e Event) Envelope {
	return Envelope{
		Type:      string(e.Type),
		Data:      e.Data,
		ListID:    e.ListID.String(),
		UserID:    e.ActorID.String(),
		Timestamp: e.Timestamp.UTC().Format(TimestampLayout),
	}
}

// Encode serializes the event as one JSON record without trailing newline.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(ToEnvelope(e))
}

// ParseTimestamp is the inverse of the envelope timestamp formatting.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampLayout, s)
}
