package event

import (
	"encoding/json"
	"list-sync/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncode_Envelope_Shape(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 14, 10, 30, 0, 123_000_000, time.FixedZone("CET", 3600))
	listID := domain.NewListID()

	// When
	frame, err := Encode(Event{
		Type:      ListDeleted,
		ListID:    listID,
		Data:      ListDeletedPayload{ListID: listID.String()},
		ActorID:   "alice",
		Target:    "ignored",
		Timestamp: at,
	})

	// Then
	req.NoError(err)
	var raw map[string]any
	req.NoError(json.Unmarshal(frame, &raw))
	req.Equal(map[string]any{
		"type":      "list:deleted",
		"data":      map[string]any{"listId": listID.String()},
		"listId":    listID.String(),
		"userId":    "alice",
		"timestamp": "2026-03-14T09:30:00.123Z",
	}, raw)
}

func TestEncode_Omits_Absent_Fields(t *testing.T) {
	req := require.New(t)
	at := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	// When
	frame, err := Encode(NewPing(at))

	// Then
	req.NoError(err)
	req.JSONEq(`{"type":"ping","listId":"global","timestamp":"2026-03-14T09:00:00.000Z"}`, string(frame))

	parsed, err := ParseTimestamp("2026-03-14T09:00:00.000Z")
	req.NoError(err)
	req.True(at.Equal(parsed))
}

func TestType_IsDeletion(t *testing.T) {
	req := require.New(t)

	req.True(TodoDeleted.IsDeletion())
	req.True(ListDeleted.IsDeletion())
	req.False(MemberRemoved.IsDeletion())
	req.False(ListUpdated.IsDeletion())
}
