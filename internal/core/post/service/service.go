package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	postEntity "chirp/internal/core/post"
	"chirp/internal/events"
	feedPort "chirp/internal/ports/feed"
	postPort "chirp/internal/ports/post"
	userPort "chirp/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository postPort.PostRepository
	FeedRedis      feedPort.FeedRedis
	Broker         *events.Broker
	Logger         *zap.Logger
}

func NewPostService(
	postRepo postPort.PostRepository,
	feedRedis feedPort.FeedRedis,
	broker *events.Broker,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository: postRepo,
		FeedRedis:      feedRedis,
		Broker:         broker,
		Logger:         logger,
	}
}

// ListPosts returns every post, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, ToDTO(p))
	}
	return dtos, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*postPort.PostDTO, error) {
	p, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(p), nil
}

// CreatePost validates the body, persists the post under the caller's
// identity and publishes it to subscribers. The feed index is updated in
// the background by the feed worker listening on the broker.
func (s *PostService) CreatePost(ctx context.Context, body string, ident *userPort.Identity) (*postPort.PostDTO, error) {
	if strings.TrimSpace(body) == "" {
		return nil, postEntity.ErrEmptyBody
	}

	uid, err := uuid.FromString(ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	p := &postEntity.Post{
		ID:       uuid.Must(uuid.NewV4()),
		Body:     body,
		Username: ident.Username,
		UserID:   uid,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	dto := ToDTO(created)
	s.Broker.Publish(dto)

	s.Logger.Info("Created post",
		zap.String("postID", dto.ID), zap.String("username", dto.Username))
	return dto, nil
}

// DeletePost checks existence before ownership so a missing post reports
// not-found rather than not-allowed.
func (s *PostService) DeletePost(ctx context.Context, id string, ident *userPort.Identity) error {
	p, err := s.findPost(ctx, id)
	if err != nil {
		return err
	}

	if p.Username != ident.Username {
		return postEntity.ErrNotAllowed
	}

	if err := s.PostRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	// Best effort: the feed index tolerates stale ids, hydration skips them.
	if err := s.FeedRedis.RemovePost(ctx, id); err != nil {
		s.Logger.Warn("Could not remove post from feed index",
			zap.String("postID", id), zap.Error(err))
	}

	s.Logger.Info("Deleted post", zap.String("postID", id), zap.String("username", ident.Username))
	return nil
}

// ToggleLike removes the caller's like if present, otherwise adds one.
// Read-modify-write without a concurrency guard: concurrent toggles by the
// same user on the same post are last-write-wins.
func (s *PostService) ToggleLike(ctx context.Context, id string, ident *userPort.Identity) (*postPort.PostDTO, error) {
	p, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.LikedBy(ident.Username) {
		if err := s.PostRepository.RemoveLike(ctx, id, ident.Username); err != nil {
			return nil, fmt.Errorf("failed to remove like: %w", err)
		}
	} else {
		like := &postEntity.Like{
			ID:       uuid.Must(uuid.NewV4()),
			PostID:   p.ID,
			Username: ident.Username,
		}
		if err := s.PostRepository.AddLike(ctx, like); err != nil {
			return nil, fmt.Errorf("failed to add like: %w", err)
		}
	}

	updated, err := s.findPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDTO(updated), nil
}

// findPost resolves an id to a post. A malformed id is indistinguishable
// from a missing one as far as callers are concerned.
func (s *PostService) findPost(ctx context.Context, id string) (*postEntity.Post, error) {
	if _, err := uuid.FromString(id); err != nil {
		return nil, postEntity.ErrPostNotFound
	}

	p, err := s.PostRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, postEntity.ErrPostNotFound) {
			return nil, postEntity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}
	return p, nil
}

// ToDTO maps a post entity to its wire shape.
func ToDTO(p *postEntity.Post) *postPort.PostDTO {
	likes := make([]postPort.LikeDTO, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, postPort.LikeDTO{
			Username:  l.Username,
			CreatedAt: l.CreatedAt.Format(time.RFC3339),
		})
	}

	return &postPort.PostDTO{
		ID:        p.ID.String(),
		Body:      p.Body,
		Username:  p.Username,
		UserID:    p.UserID.String(),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		Likes:     likes,
		LikeCount: len(likes),
	}
}
