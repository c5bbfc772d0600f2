package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userkey = "Email"

func jwtSecret() []byte {
	return []byte(os.Getenv("KEY"))
}

// GenerateToken issues a signed bearer token carrying the user's email.
func GenerateToken(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ParseToken validates a bearer token and returns the email it carries.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret(), nil
		})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

// JWT_decoder extracts the authenticated email from the Authorization
// header, falling back to the cookie session. Aborts with 401 on failure.
func JWT_decoder(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header != "" {
		tokenString := strings.TrimPrefix(header, "Bearer ")
		email, err := ParseToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return "", err
		}
		return email, nil
	}

	session := sessions.Default(c)
	if email, ok := session.Get(userkey).(string); ok && email != "" {
		return email, nil
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	return "", errors.New("no credentials provided")
}

// AuthRequired is a simple middleware to check the session or bearer token.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if user := session.Get(userkey); user != nil {
		c.Next()
		return
	}

	header := c.GetHeader("Authorization")
	if header != "" {
		if _, err := ParseToken(strings.TrimPrefix(header, "Bearer ")); err == nil {
			c.Next()
			return
		}
	}

	// Abort the request with the appropriate error code
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
