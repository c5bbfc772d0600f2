package handlers

import (
	"SportHub/services/metrics"
	"SportHub/services/redis"
	socketio_types "SportHub/services/socket_io/types"
	"SportHub/utils"
	"log"
	"time"

	redis_models "SportHub/models/redis"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleJoinEventChat subscribes a client to an event's chat room.
// Joining is idempotent-safe: re-joining the current room is a no-op, and
// joining a different room leaves the old one first so a connection is
// never subscribed to two rooms at once.
func HandleJoinEventChat(redisClient *redis.RedisClient, client *socket.Socket,
	db *gorm.DB, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[CHAT-JOIN] User: %s, Args: %v, Socket ID: %s", username, args, client.Id())
		metrics.IncWSEvent("joinEventChat")

		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing event id"})
			return
		}
		eventID, ok := args[0].(string)
		if !ok || eventID == "" {
			client.Emit("error", gin.H{"error": "Invalid event id"})
			return
		}

		// 1. The event must exist
		if _, err := utils.CheckEventExists(db, eventID); err != nil {
			log.Printf("[CHAT-JOIN-ERROR] Event not found: %s", eventID)
			client.Emit("error", gin.H{"error": "Event not found"})
			return
		}

		// 2. Only participants may enter the room
		isParticipant, err := utils.IsParticipant(db, eventID, username)
		if err != nil {
			log.Printf("[CHAT-JOIN-ERROR] Error checking participation: %v", err)
			client.Emit("error", gin.H{"error": "Error joining event chat"})
			return
		}
		if !isParticipant {
			client.Emit("error", gin.H{"error": "You must join the event before entering its chat"})
			return
		}

		session, exists := sio.GetSession(username)
		if !exists {
			client.Emit("error", gin.H{"error": "No active session"})
			return
		}

		// 3. One room per connection: unsubscribe from the old room first
		if previous := session.Join(eventID); previous != "" {
			client.Leave(socket.Room(previous))
			log.Printf("[CHAT-JOIN] User %s left previous room %s", username, previous)
		}
		client.Join(socket.Room(eventID))

		// 4. Mark presence
		presence := &redis_models.ParticipantPresence{
			Username: username,
			EventID:  eventID,
			Status:   redis_models.StatusInChat,
			LastPing: time.Now().Unix(),
			SocketID: string(client.Id()),
		}
		if err := redisClient.SavePresence(presence); err != nil {
			log.Printf("[CHAT-JOIN-ERROR] Error saving presence: %v", err)
		}

		log.Printf("[CHAT-JOIN-SUCCESS] User %s joined event chat %s", username, eventID)
		client.Emit("chatJoined", gin.H{"event_id": eventID})
	}
}
