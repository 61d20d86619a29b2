package feedapp

import (
	"context"
	"testing"
	"time"

	postEntity "chirp/internal/core/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type stubFeedRedis struct {
	ids []string
}

func (s *stubFeedRedis) PushPost(ctx context.Context, postID string, createdAt time.Time) error {
	return nil
}

func (s *stubFeedRedis) RemovePost(ctx context.Context, postID string) error { return nil }

func (s *stubFeedRedis) RecentPostIDs(ctx context.Context, start, limit int64) ([]string, error) {
	end := start + limit
	if end > int64(len(s.ids)) {
		end = int64(len(s.ids))
	}
	if start >= int64(len(s.ids)) {
		return nil, nil
	}
	return s.ids[start:end], nil
}

type stubPostRepo struct {
	posts map[string]*postEntity.Post
}

func (s *stubPostRepo) Create(ctx context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	return p, nil
}

func (s *stubPostRepo) FindAll(ctx context.Context) ([]*postEntity.Post, error) { return nil, nil }

func (s *stubPostRepo) FindByID(ctx context.Context, id string) (*postEntity.Post, error) {
	if p, ok := s.posts[id]; ok {
		return p, nil
	}
	return nil, postEntity.ErrPostNotFound
}

func (s *stubPostRepo) Delete(ctx context.Context, id string) error { return nil }

func (s *stubPostRepo) AddLike(ctx context.Context, like *postEntity.Like) error { return nil }

func (s *stubPostRepo) RemoveLike(ctx context.Context, postID, username string) error { return nil }

func TestGetRecentSkipsStaleIDs(t *testing.T) {
	p1 := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Body: "one", Username: "alice"}
	p2 := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Body: "two", Username: "alice"}
	stale := uuid.Must(uuid.NewV4()).String()

	repo := &stubPostRepo{posts: map[string]*postEntity.Post{
		p1.ID.String(): p1,
		p2.ID.String(): p2,
	}}
	feed := &stubFeedRedis{ids: []string{p2.ID.String(), stale, p1.ID.String()}}

	svc := NewFeedService(feed, repo, zap.NewNop())

	posts, err := svc.GetRecent(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2 (stale id skipped)", len(posts))
	}
	if posts[0].ID != p2.ID.String() || posts[1].ID != p1.ID.String() {
		t.Errorf("feed order = [%s %s]", posts[0].Body, posts[1].Body)
	}
}

func TestGetRecentHonorsOffsetAndLimit(t *testing.T) {
	p := &postEntity.Post{ID: uuid.Must(uuid.NewV4()), Body: "one", Username: "alice"}
	repo := &stubPostRepo{posts: map[string]*postEntity.Post{p.ID.String(): p}}
	feed := &stubFeedRedis{ids: []string{p.ID.String()}}

	svc := NewFeedService(feed, repo, zap.NewNop())

	posts, err := svc.GetRecent(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("GetRecent: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("offset past end should yield empty feed, got %d posts", len(posts))
	}
}
