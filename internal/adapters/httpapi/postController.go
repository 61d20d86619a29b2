package httpapi

import (
	"errors"
	"net/http"

	"chirp/internal/adapters/httpapi/middleware"
	"chirp/internal/core/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) ListPosts(c *gin.Context) {
	posts, err := ctl.pc.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	p, err := ctl.pc.GetPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no such post"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch post"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Body string `json:"body" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), req.Body, ident)
	if err != nil {
		if errors.Is(err, post.ErrEmptyBody) {
			c.JSON(http.StatusBadRequest, gin.H{"error": post.ErrEmptyBody.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), c.Param("id"), ident); err != nil {
		switch {
		case errors.Is(err, post.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no such post"})
		case errors.Is(err, post.ErrNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{"error": post.ErrNotAllowed.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	ident, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.ToggleLike(c.Request.Context(), c.Param("id"), ident)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": post.ErrPostNotFound.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not toggle like"})
		return
	}
	c.JSON(http.StatusOK, res)
}
