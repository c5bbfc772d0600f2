package socket_io

import (
	"SportHub/services/chat"
	"SportHub/services/metrics"
	"SportHub/services/redis"
	"SportHub/services/socket_io/handlers"

	socketio_types "SportHub/services/socket_io/types"
	socketio_utils "SportHub/services/socket_io/utils"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

func (sio *MySocketServer) Start(router *gin.Engine, db *gorm.DB, redisClient *redis.RedisClient) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the maps, otherwise it panics
	sio.UserConnections = make(map[string]*socket.Socket)
	sio.UserSessions = make(map[string]*chat.Session)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Check if the client is authenticated
		success, username, email := socketio_utils.VerifyUserConnection(client, db)
		if !success {
			return
		}

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(username, client)
		metrics.IncWSActive()

		fmt.Println("An individual just connected!: ", username, email)

		// Join the chat room of an event the user participates in
		client.On("joinEventChat", handlers.HandleJoinEventChat(redisClient, client, db, username, (*socketio_types.SocketServer)(sio)))

		// Replay the full message history of an event chat
		client.On("getEventMessages", handlers.HandleGetEventMessages(redisClient, client, db, username, (*socketio_types.SocketServer)(sio)))

		// Broadcast a message to every member of the room, sender included
		client.On("sendEventMessage", handlers.HandleSendEventMessage(redisClient, client, db, username, (*socketio_types.SocketServer)(sio)))

		// Leave the event chat room voluntarily
		client.On("leaveEventChat", handlers.HandleLeaveEventChat(redisClient, client, db, username, (*socketio_types.SocketServer)(sio)))

		// NOTE: will remove sio connection from map
		client.On("disconnecting", handlers.HandleDisconnecting(username, (*socketio_types.SocketServer)(sio), redisClient))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	fmt.Println("Socket server started")
}

// Close shuts the socket server down, dropping every connection.
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
