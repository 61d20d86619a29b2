package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const feedKey = "feed:recent"

// FeedRepositoryRedis keeps the recency index as a ZSET keyed by creation
// time, member = post id.
type FeedRepositoryRedis struct {
	Client *redis.Client
}

func NewFeedRepositoryRedis(client *redis.Client) *FeedRepositoryRedis {
	return &FeedRepositoryRedis{
		Client: client,
	}
}

func (r *FeedRepositoryRedis) PushPost(ctx context.Context, postID string, createdAt time.Time) error {
	z := &redis.Z{
		Score:  float64(createdAt.Unix()),
		Member: postID,
	}
	return r.Client.ZAdd(ctx, feedKey, z).Err()
}

func (r *FeedRepositoryRedis) RemovePost(ctx context.Context, postID string) error {
	return r.Client.ZRem(ctx, feedKey, postID).Err()
}

// RecentPostIDs returns ids newest first, starting at offset start.
func (r *FeedRepositoryRedis) RecentPostIDs(ctx context.Context, start, limit int64) ([]string, error) {
	return r.Client.ZRevRange(ctx, feedKey, start, start+limit-1).Result()
}
