package socketio_utils

import (
	"SportHub/middleware"
	models "SportHub/models/postgres"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
	"gorm.io/gorm"
)

// VerifyUserConnection authenticates a freshly connected socket from its
// handshake auth data. Returns the user's username and email on success.
func VerifyUserConnection(client *socket.Socket, db *gorm.DB) (bool, string, string) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		fmt.Println("No auth data provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		client.Disconnect(true)
		return false, "", ""
	}

	token, ok := authData["token"].(string)
	if !ok || token == "" {
		fmt.Println("No token provided in handshake!")
		client.Emit("error", gin.H{"error": "Authentication failed: missing token"})
		client.Disconnect(true)
		return false, "", ""
	}

	email, err := middleware.ParseToken(token)
	if err != nil {
		fmt.Println("Invalid token in handshake:", err)
		client.Emit("error", gin.H{"error": "Authentication failed: invalid token"})
		client.Disconnect(true)
		return false, "", ""
	}

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		fmt.Println("Unknown user in handshake:", email)
		client.Emit("error", gin.H{"error": "Authentication failed: unknown user"})
		client.Disconnect(true)
		return false, "", ""
	}

	return true, user.Username, user.Email
}
