package feedapp

import (
	"context"

	postapp "chirp/internal/core/post/service"
	feedPort "chirp/internal/ports/feed"
	postPort "chirp/internal/ports/post"

	"go.uber.org/zap"
)

// FeedService serves the recency feed: post ids come from the Redis index,
// the posts themselves from the store.
type FeedService struct {
	FeedRedis      feedPort.FeedRedis
	PostRepository postPort.PostRepository
	Logger         *zap.Logger
}

func NewFeedService(feedRedis feedPort.FeedRedis, postRepo postPort.PostRepository, logger *zap.Logger) *FeedService {
	return &FeedService{
		FeedRedis:      feedRedis,
		PostRepository: postRepo,
		Logger:         logger,
	}
}

// GetRecent hydrates up to limit posts starting at offset start. Ids that
// no longer resolve (deleted posts, rebuilt index) are skipped.
func (s *FeedService) GetRecent(ctx context.Context, start, limit int64) ([]*postPort.PostDTO, error) {
	postIDs, err := s.FeedRedis.RecentPostIDs(ctx, start, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]*postPort.PostDTO, 0, len(postIDs))
	for _, pid := range postIDs {
		p, err := s.PostRepository.FindByID(ctx, pid)
		if err != nil {
			s.Logger.Warn("Feed id did not resolve", zap.String("postID", pid), zap.Error(err))
			continue
		}
		posts = append(posts, postapp.ToDTO(p))
	}

	return posts, nil
}
