package httpapi

import (
	"context"

	"chirp/internal/adapters/httpapi/middleware"
	"chirp/internal/events"
	postPort "chirp/internal/ports/post"
	userPort "chirp/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the use-case layer.
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	ListPosts(ctx context.Context) ([]*postPort.PostDTO, error)
	GetPost(ctx context.Context, id string) (*postPort.PostDTO, error)
	CreatePost(ctx context.Context, body string, ident *userPort.Identity) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, id string, ident *userPort.Identity) error
	ToggleLike(ctx context.Context, id string, ident *userPort.Identity) (*postPort.PostDTO, error)
}

type FeedUseCase interface {
	GetRecent(ctx context.Context, start, limit int64) ([]*postPort.PostDTO, error)
}

// SetupRoutes wires controllers; use cases and the broker come from main.
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	feedUC FeedUseCase,
	broker *events.Broker,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	fc := NewFeedController(feedUC)
	sc := NewSubscriptionController(broker)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	// Reads are public, mutations require a verified identity.
	r.GET("/posts", pc.ListPosts)
	r.GET("/posts/stream", sc.StreamNewPosts)
	r.GET("/posts/:id", pc.GetPost)
	r.POST("/posts", middleware.JWTAuthMiddleware(), pc.CreatePost)
	r.DELETE("/posts/:id", middleware.JWTAuthMiddleware(), pc.DeletePost)
	r.POST("/posts/:id/like", middleware.JWTAuthMiddleware(), pc.ToggleLike)

	r.GET("/feed", fc.GetRecent)

	return r
}
