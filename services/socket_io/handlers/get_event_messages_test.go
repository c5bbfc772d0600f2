package handlers

import (
	"testing"

	"SportHub/services/chat"

	"github.com/stretchr/testify/assert"
)

func TestCanReplayHistoryRequiresJoinedRoom(t *testing.T) {
	session := chat.NewSession()

	// An idle session gets no history for anything
	assert.False(t, canReplayHistory(session, "ev1"))

	session.Join("ev1")
	assert.True(t, canReplayHistory(session, "ev1"))

	// Joining one room grants nothing for another event's history
	assert.False(t, canReplayHistory(session, "ev2"))

	// Leaving revokes the replay again
	session.Leave("ev1")
	assert.False(t, canReplayHistory(session, "ev1"))
}
