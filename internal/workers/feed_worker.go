package workers

import (
	"context"
	"time"

	"chirp/internal/events"
	feedPort "chirp/internal/ports/feed"

	"go.uber.org/zap"
)

// FeedWorker keeps the Redis recency index in step with post creation. It
// is one more subscriber on the new-post broker, so a Redis outage can
// never fail or slow a createPost request.
type FeedWorker struct {
	Broker    *events.Broker
	FeedRedis feedPort.FeedRedis
	Logger    *zap.Logger
}

func NewFeedWorker(broker *events.Broker, feedRedis feedPort.FeedRedis, logger *zap.Logger) *FeedWorker {
	return &FeedWorker{
		Broker:    broker,
		FeedRedis: feedRedis,
		Logger:    logger,
	}
}

// Run consumes new-post events until ctx is cancelled.
func (w *FeedWorker) Run(ctx context.Context) {
	w.Logger.Info("FeedWorker started")

	ch := w.Broker.Subscribe(ctx)
	for p := range ch {
		createdAt, err := time.Parse(time.RFC3339, p.CreatedAt)
		if err != nil {
			createdAt = time.Now()
		}

		if err := w.FeedRedis.PushPost(ctx, p.ID, createdAt); err != nil {
			w.Logger.Error("Could not push post to feed index",
				zap.String("postID", p.ID), zap.Error(err))
			continue
		}
		w.Logger.Info("Post indexed in feed", zap.String("postID", p.ID))
	}

	w.Logger.Info("FeedWorker stopped")
}
