package events

import (
	"context"
	"sync"

	postPort "chirp/internal/ports/post"

	"go.uber.org/zap"
)

// subscriberBuffer bounds how far a slow subscriber may lag before
// publishes start dropping for it.
const subscriberBuffer = 16

// Broker is the process-wide new-post notifier. It is constructed once in
// main and passed into whatever needs to publish or subscribe; events are
// in-memory only and are lost when no subscriber is listening.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]chan *postPort.PostDTO
	nextID uint64
	logger *zap.Logger
}

func NewBroker(logger *zap.Logger) *Broker {
	return &Broker{
		subs:   make(map[uint64]chan *postPort.PostDTO),
		logger: logger,
	}
}

// Publish fans the post out to every current subscriber. It never blocks:
// a subscriber whose buffer is full misses this event.
func (b *Broker) Publish(post *postPort.PostDTO) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- post:
		default:
			b.logger.Warn("Dropping event for slow subscriber",
				zap.Uint64("subscriberID", id), zap.String("postID", post.ID))
		}
	}
}

// Subscribe registers a new subscriber and returns its event channel. The
// channel starts at the point of subscription (no replay) and is closed
// when ctx is cancelled.
func (b *Broker) Subscribe(ctx context.Context) <-chan *postPort.PostDTO {
	ch := make(chan *postPort.PostDTO, subscriberBuffer)

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[id] = ch
	b.mu.Unlock()

	b.logger.Info("Subscriber connected", zap.Uint64("subscriberID", id))

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
		close(ch)
		b.logger.Info("Subscriber disconnected", zap.Uint64("subscriberID", id))
	}()

	return ch
}

func (b *Broker) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
