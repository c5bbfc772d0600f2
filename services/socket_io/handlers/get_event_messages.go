package handlers

import (
	"SportHub/services/chat"
	"SportHub/services/metrics"
	"SportHub/services/redis"
	socketio_types "SportHub/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// canReplayHistory reports whether a connection may receive an event's
// chat history: only the room the session is currently joined to. Joining
// is where the participant check happens, so a joined room is always one
// the user was allowed into.
func canReplayHistory(session *chat.Session, eventID string) bool {
	current, joined := session.Current()
	return joined && current == eventID
}

// HandleGetEventMessages replays an event's full chat history to the
// requesting client. The client replaces its message list wholesale with
// the "eventMessages" payload, so the reply is always the complete history
// in arrival order, never a delta. History is only served for the room the
// connection has joined; any other event id is rejected.
func HandleGetEventMessages(redisClient *redis.RedisClient, client *socket.Socket,
	db *gorm.DB, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		metrics.IncWSEvent("getEventMessages")

		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing event id"})
			return
		}
		eventID, ok := args[0].(string)
		if !ok || eventID == "" {
			client.Emit("error", gin.H{"error": "Invalid event id"})
			return
		}

		session, exists := sio.GetSession(username)
		if !exists || !canReplayHistory(session, eventID) {
			log.Printf("[CHAT-HISTORY-ERROR] User %s requested history of %s without joining it", username, eventID)
			client.Emit("error", gin.H{"error": "You must join the event chat before requesting its history"})
			return
		}

		messages, err := redisClient.GetEventMessages(eventID)
		if err != nil {
			log.Printf("[CHAT-HISTORY-ERROR] Error fetching history for %s: %v", eventID, err)
			client.Emit("error", gin.H{"error": "Error fetching chat history"})
			return
		}

		// Keep the server-side view of this connection in sync with what
		// the client is about to display.
		session.ApplyHistory(eventID, messages)

		log.Printf("[CHAT-HISTORY] Replaying %d messages of event %s to %s",
			len(messages), eventID, username)
		client.Emit("eventMessages", messages)
	}
}
