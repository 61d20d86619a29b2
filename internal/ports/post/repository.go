package post

import (
	"context"

	"chirp/internal/core/post"
)

// PostRepository is the outbound port for post persistence. FindAll and
// FindByID return posts with their likes loaded.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, like *post.Like) error
	RemoveLike(ctx context.Context, postID, username string) error
}

type PostDTO struct {
	ID        string    `json:"id"`
	Body      string    `json:"body"`
	Username  string    `json:"username"`
	UserID    string    `json:"userId"`
	CreatedAt string    `json:"createdAt"`
	Likes     []LikeDTO `json:"likes"`
	LikeCount int       `json:"likeCount"`
}

type LikeDTO struct {
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}
