package handlers

import (
	"SportHub/services/metrics"
	"SportHub/services/redis"
	socketio_types "SportHub/services/socket_io/types"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleLeaveEventChat unsubscribes a client from an event's chat room.
// Leaving exactly undoes one join; leaving a room that was never joined is
// a harmless no-op, so the client can fire this unconditionally on
// navigation away.
func HandleLeaveEventChat(redisClient *redis.RedisClient, client *socket.Socket,
	db *gorm.DB, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		metrics.IncWSEvent("leaveEventChat")

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
		if exists && session.Leave(eventID) {
			log.Printf("[CHAT-LEAVE] User %s left event chat %s", username, eventID)
		}
		client.Leave(socket.Room(eventID))

		if err := redisClient.DeletePresence(username); err != nil {
			log.Printf("[CHAT-LEAVE] Error deleting presence for %s: %v", username, err)
		}
	}
}
