package feed

import (
	"context"
	"time"
)

// FeedRedis maintains the recency index of post ids. The index is derived
// state: losing it only empties the feed until new posts arrive.
type FeedRedis interface {
	PushPost(ctx context.Context, postID string, createdAt time.Time) error
	RemovePost(ctx context.Context, postID string) error
	RecentPostIDs(ctx context.Context, start, limit int64) ([]string, error)
}
