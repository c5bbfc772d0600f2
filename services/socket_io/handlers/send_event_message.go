package handlers

import (
	models "SportHub/models/postgres"
	"SportHub/services/chat"
	"SportHub/services/metrics"
	"SportHub/services/redis"
	socketio_types "SportHub/services/socket_io/types"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// HandleSendEventMessage validates and broadcasts one chat message to the
// sender's room. There is no optimistic delivery: the sender sees their own
// message only through the room broadcast, like everyone else. Room order
// is arrival order at the server, not client send order.
func HandleSendEventMessage(redisClient *redis.RedisClient, client *socket.Socket,
	db *gorm.DB, username string, sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		metrics.IncWSEvent("sendEventMessage")

		if len(args) < 1 {
			client.Emit("error", gin.H{"error": "Missing message payload"})
			return
		}
		payload, ok := args[0].(map[string]interface{})
		if !ok {
			client.Emit("error", gin.H{"error": "Invalid message format"})
			return
		}

		text, _ := payload["text"].(string)
		userID, _ := payload["userId"].(string)
		if userID == "" {
			userID = username
		}

		session, exists := sio.GetSession(username)
		if !exists {
			client.Emit("error", gin.H{"error": "No active session"})
			return
		}

		// The payload's eventId must match the joined room.
		if eventID, joined := session.Current(); joined {
			if claimed, ok := payload["eventId"].(string); ok && claimed != "" && claimed != eventID {
				client.Emit("error", gin.H{"error": "You are not in this event's chat"})
				return
			}
		}

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			client.Emit("error", gin.H{"error": "Unknown user"})
			return
		}

		msg, err := session.NewOutgoing(userID, username, user.AvatarURL, text, parseTimestamp(payload["timestamp"]))
		if err != nil {
			switch err {
			case chat.ErrEmptyMessage:
				client.Emit("error", gin.H{"error": "Message text cannot be empty"})
			case chat.ErrNotInRoom:
				client.Emit("error", gin.H{"error": "You must join the event chat before sending messages"})
			default:
				client.Emit("error", gin.H{"error": err.Error()})
			}
			return
		}

		if err := redisClient.AppendEventMessage(msg); err != nil {
			log.Printf("[CHAT-SEND-ERROR] Error storing message: %v", err)
			client.Emit("error", gin.H{"error": "Error sending message"})
			return
		}

		// Mirror the broadcast into every connected session of the room,
		// sender included.
		for _, roomSession := range sio.SessionsInRoom(msg.EventID) {
			roomSession.ApplyMessage(*msg)
		}

		metrics.IncChatMessage()
		sio.Sio_server.To(socket.Room(msg.EventID)).Emit("eventMessage", msg)
		log.Printf("[CHAT-SEND] %s -> event %s (%d bytes)", username, msg.EventID, len(msg.Text))
	}
}

// parseTimestamp accepts the client clock as RFC3339 or epoch millis; a
// missing or unreadable value falls back to the server clock downstream.
func parseTimestamp(raw interface{}) time.Time {
	switch v := raw.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts
		}
	case float64:
		return time.UnixMilli(int64(v))
	}
	return time.Time{}
}
