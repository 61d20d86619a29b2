package user

import (
	"chirp/internal/core/user"

	"github.com/dgrijalva/jwt-go"
)

// UserRepository is the outbound port for user persistence.
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByUsernameOrEmail(username, email string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
}

// Claims is the JWT payload issued at login and decoded by the auth
// middleware. Username rides along because posts denormalize it.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// Identity is the verified caller principal for one request.
type Identity struct {
	UserID    string
	Username  string
	ExpiresAt int64
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
