package post

import (
	"errors"
	"time"

	"chirp/internal/core/user"

	"github.com/gofrs/uuid"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyBody    = errors.New("post body must not be empty")
	ErrNotAllowed   = errors.New("action not allowed")
)

type Post struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Body      string    `gorm:"type:text;not null"`
	Username  string    `gorm:"type:varchar(64);not null"` // denormalized author handle
	UserID    uuid.UUID `gorm:"type:char(36);not null"`
	User      user.User `gorm:"foreignkey:UserID"`
	Likes     []Like    `gorm:"foreignKey:PostID"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Like is one user's endorsement of a post. Uniqueness per (post, username)
// is enforced by the toggle logic, not by the schema.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	Username  string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// LikedBy reports whether username already appears in the post's likes.
func (p *Post) LikedBy(username string) bool {
	for _, l := range p.Likes {
		if l.Username == username {
			return true
		}
	}
	return false
}
