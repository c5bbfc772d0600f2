package chat

import (
	"testing"
	"time"

	redis_models "SportHub/models/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func msg(id, eventID, text string) redis_models.ChatMessage {
	return redis_models.ChatMessage{ID: id, EventID: eventID, UserID: "u1", Username: "ana", Text: text}
}

func TestJoinLeaveLifecycle(t *testing.T) {
	s := NewSession()

	_, joined := s.Current()
	assert.False(t, joined)

	assert.Equal(t, "", s.Join("ev1"))
	current, joined := s.Current()
	assert.True(t, joined)
	assert.Equal(t, "ev1", current)

	// Re-joining the same room is a no-op
	assert.Equal(t, "", s.Join("ev1"))

	// Joining another room reports the old one so it gets left first
	assert.Equal(t, "ev1", s.Join("ev2"))
	current, _ = s.Current()
	assert.Equal(t, "ev2", current)

	assert.True(t, s.Leave("ev2"))
	_, joined = s.Current()
	assert.False(t, joined)

	// Leaving again, or leaving a never-joined room, is harmless
	assert.False(t, s.Leave("ev2"))
	assert.False(t, s.Leave("ev9"))
}

func TestHistoryReplacesAccumulatedMessages(t *testing.T) {
	s := NewSession()
	s.Join("ev1")

	// Messages may arrive before the history replay does
	s.ApplyMessage(msg("x1", "ev1", "early"))
	s.ApplyMessage(msg("x2", "ev1", "earlier still"))

	require.True(t, s.ApplyHistory("ev1", []redis_models.ChatMessage{
		msg("m1", "ev1", "first"),
		msg("m2", "ev1", "second"),
	}))
	require.True(t, s.ApplyMessage(msg("m3", "ev1", "third")))

	messages := s.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
	assert.Equal(t, "m3", messages[2].ID)
}

func TestMessagesForOtherRoomsAreDropped(t *testing.T) {
	s := NewSession()
	s.Join("ev1")

	assert.False(t, s.ApplyMessage(msg("m1", "ev2", "wrong room")))
	assert.False(t, s.ApplyHistory("ev2", []redis_models.ChatMessage{msg("m2", "ev2", "hi")}))
	assert.Empty(t, s.Messages())
}

func TestLeaveStopsApplyingMessages(t *testing.T) {
	s := NewSession()
	s.Join("ev1")
	s.ApplyMessage(msg("m1", "ev1", "hello"))
	s.Leave("ev1")

	// The view is gone; nothing may be applied to it anymore
	assert.False(t, s.ApplyMessage(msg("m2", "ev1", "late")))
	assert.Empty(t, s.Messages())
}

func TestDuplicateDeliveriesAreKept(t *testing.T) {
	s := NewSession()
	s.Join("ev1")

	// No dedup by id: a redelivered message shows up twice
	s.ApplyMessage(msg("m1", "ev1", "hello"))
	s.ApplyMessage(msg("m1", "ev1", "hello"))
	assert.Len(t, s.Messages(), 2)
}

func TestNewOutgoingRejectsEmptyText(t *testing.T) {
	s := NewSession()
	s.Join("ev1")

	_, err := s.NewOutgoing("u1", "ana", "", "", time.Time{})
	assert.ErrorIs(t, err, ErrEmptyMessage)

	_, err = s.NewOutgoing("u1", "ana", "", "   \t\n", time.Time{})
	assert.ErrorIs(t, err, ErrEmptyMessage)
}

func TestNewOutgoingRequiresJoinedRoom(t *testing.T) {
	s := NewSession()
	_, err := s.NewOutgoing("u1", "ana", "", "hello", time.Time{})
	assert.ErrorIs(t, err, ErrNotInRoom)
}

func TestNewOutgoingTrimsAndStamps(t *testing.T) {
	s := NewSession()
	s.Join("ev1")

	sent := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out, err := s.NewOutgoing("u1", "ana", "a.png", "  hello  ", sent)
	require.NoError(t, err)

	assert.Equal(t, "hello", out.Text)
	assert.Equal(t, "ev1", out.EventID)
	assert.Equal(t, "u1", out.UserID)
	assert.Equal(t, sent, out.Timestamp)
	assert.NotEmpty(t, out.ID)

	// Missing client clock falls back to the server clock
	out2, err := s.NewOutgoing("u1", "ana", "", "hi", time.Time{})
	require.NoError(t, err)
	assert.False(t, out2.Timestamp.IsZero())
}

func TestLeaveCurrentTearsDownUnconditionally(t *testing.T) {
	s := NewSession()
	assert.Equal(t, "", s.LeaveCurrent())

	s.Join("ev1")
	s.ApplyMessage(msg("m1", "ev1", "hello"))
	assert.Equal(t, "ev1", s.LeaveCurrent())
	_, joined := s.Current()
	assert.False(t, joined)
}
