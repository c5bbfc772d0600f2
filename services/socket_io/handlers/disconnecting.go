package handlers

import (
	"SportHub/services/metrics"
	"SportHub/services/redis"
	socketio_types "SportHub/services/socket_io/types"
	"log"

	"github.com/zishang520/socket.io/v2/socket"
)

// HandleDisconnecting tears a connection down: leave whatever room it was
// in, drop presence, forget the session. Runs unconditionally, even when no
// join was ever acknowledged.
func HandleDisconnecting(username string, sio *socketio_types.SocketServer,
	redisClient *redis.RedisClient) func(args ...interface{}) {
	return func(args ...interface{}) {
		log.Printf("[DISCONNECT] User disconnecting: %s", username)
		metrics.IncWSEvent("disconnecting")

		client, exists := sio.GetConnection(username)

		if session, ok := sio.GetSession(username); ok {
			if eventID := session.LeaveCurrent(); eventID != "" {
				if exists {
					client.Leave(socket.Room(eventID))
				}
				log.Printf("[DISCONNECT] User %s left event chat %s", username, eventID)
			}
		}

		if err := redisClient.DeletePresence(username); err != nil {
			log.Printf("[DISCONNECT] Error deleting presence for %s: %v", username, err)
		}

		// Finally remove connection from map
		sio.RemoveConnection(username)
		metrics.DecWSActive()
		log.Printf("[DISCONNECT-DONE] User disconnected: %s", username)
	}
}
