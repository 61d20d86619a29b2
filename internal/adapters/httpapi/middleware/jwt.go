package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	userPort "chirp/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
)

var errUnexpectedSigning = errors.New("unexpected signing method")

// JWTAuthMiddleware verifies the Authorization header and stores the
// decoded identity in the gin context under "userID" and "username".
// The header must be exactly "Bearer <token>".
func JWTAuthMiddleware() gin.HandlerFunc {
	jwtKey := []byte(os.Getenv("JWT_SECRET"))

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be provided"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be 'Bearer [token]'"})
			return
		}

		claims := &userPort.Claims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigning
			}
			return jwtKey, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("username", claims.Username)
		c.Set("expiresAt", claims.ExpiresAt)
		c.Next()
	}
}

// IdentityFrom rebuilds the request identity set by JWTAuthMiddleware.
func IdentityFrom(c *gin.Context) (*userPort.Identity, bool) {
	userID, ok := c.Get("userID")
	if !ok {
		return nil, false
	}
	username, ok := c.Get("username")
	if !ok {
		return nil, false
	}
	ident := &userPort.Identity{
		UserID:   userID.(string),
		Username: username.(string),
	}
	if exp, ok := c.Get("expiresAt"); ok {
		ident.ExpiresAt = exp.(int64)
	}
	return ident, true
}
