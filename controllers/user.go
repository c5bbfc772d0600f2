package controllers

import (
	"SportHub/middleware"
	models "SportHub/models/postgres"
	"SportHub/services/redis"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Health check
// @Description Returns pong
// @Tags meta
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// @Summary Backend health
// @Description Reports whether the chat store is reachable
// @Tags meta
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func Health(redisClient *redis.RedisClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := redisClient.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "chat store unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// @Summary Log in
// @Description Validates credentials, opens a cookie session and returns a bearer token
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} object{token=string,username=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /login [post]
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		email := c.PostForm("email")
		password := c.PostForm("password")

		// Minimum input sanitizing
		if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parameters can't be empty"})
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password!"})
			return
		}

		session.Set("Email", user.Email)
		if err := session.Save(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
			return
		}

		token, err := middleware.GenerateToken(user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token, "username": user.Username})
	}
}

// Logout from server, deletes the session associated with the Email key
// @Summary Log out
// @Tags users
// @Produce json
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/logout [delete]
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get("Email")
	// There is no session for the user, won't delete nothing
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session token"})
		return
	}

	session.Delete("Email")
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// @Summary Sign up
// @Description Registers a new user
// @Tags users
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 201 {object} object{username=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /signup [post]
func SignUp(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.PostForm("email"))
		username := strings.TrimSpace(c.PostForm("username"))
		password := c.PostForm("password")
		fullName := strings.TrimSpace(c.PostForm("fullName"))

		if email == "" || username == "" || len(password) < 8 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email, username and a password of at least 8 characters are required"})
			return
		}

		var existing models.User
		if err := db.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Email or username already in use"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}

		user := models.User{
			Email:        email,
			Username:     username,
			PasswordHash: string(hash),
			FullName:     fullName,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"username": user.Username})
	}
}

// @Summary Public profile
// @Description Returns a user's public info
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} object{username=string,full_name=string,avatar=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{username} [get]
func GetUserPublicInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		var user models.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"username":     user.Username,
			"full_name":    user.FullName,
			"avatar":       user.AvatarURL,
			"member_since": user.MemberSince,
		})
	}
}

// @Summary Private profile
// @Description Returns the authenticated user's info
// @Tags users
// @Produce json
// @Param Authorization header string true "Bearer JWT token"
// @Success 200 {object} object{email=string,username=string}
// @Failure 401 {object} object{error=string}
// @Router /auth/me [get]
// @Security ApiKeyAuth
func GetUserPrivateInfo(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := middleware.JWT_decoder(c)
		if err != nil {
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found: invalid email"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"email":        user.Email,
			"username":     user.Username,
			"full_name":    user.FullName,
			"avatar":       user.AvatarURL,
			"member_since": user.MemberSince,
		})
	}
}
