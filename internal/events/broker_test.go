package events

import (
	"context"
	"testing"
	"time"

	postPort "chirp/internal/ports/post"

	"go.uber.org/zap"
)

func testPost(id string) *postPort.PostDTO {
	return &postPort.PostDTO{ID: id, Body: "hello", Username: "alice"}
}

func TestSubscriberReceivesPublishedEvent(t *testing.T) {
	b := NewBroker(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := b.Subscribe(ctx)
	b.Publish(testPost("p1"))

	select {
	case got := <-ch:
		if got.ID != "p1" {
			t.Errorf("got post %q, want p1", got.ID)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	// Exactly one event was published.
	select {
	case got := <-ch:
		t.Errorf("unexpected second event %q", got.ID)
	default:
	}
}

func TestLateSubscriberGetsNoReplay(t *testing.T) {
	b := NewBroker(zap.NewNop())
	b.Publish(testPost("p1")) // zero subscribers, event is lost

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := b.Subscribe(ctx)

	select {
	case got := <-ch:
		t.Errorf("late subscriber received replayed event %q", got.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCancelUnsubscribesAndClosesChannel(t *testing.T) {
	b := NewBroker(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())

	ch := b.Subscribe(ctx)
	if got := b.SubscriberCount(); got != 1 {
		t.Fatalf("subscriber count = %d, want 1", got)
	}

	cancel()

	deadline := time.After(time.Second)
	for b.SubscriberCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("subscriber was not removed after cancellation")
		case <-time.After(5 * time.Millisecond):
		}
	}

	if _, ok := <-ch; ok {
		t.Error("channel should be closed after cancellation")
	}
}

func TestPublishNeverBlocksOnSlowSubscriber(t *testing.T) {
	b := NewBroker(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b.Subscribe(ctx) // nobody drains this channel

	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*2; i++ {
			b.Publish(testPost("p"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestEachSubscriberGetsOwnCopyOfEvents(t *testing.T) {
	b := NewBroker(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch1 := b.Subscribe(ctx)
	ch2 := b.Subscribe(ctx)
	b.Publish(testPost("p1"))

	for i, ch := range []<-chan *postPort.PostDTO{ch1, ch2} {
		select {
		case got := <-ch:
			if got.ID != "p1" {
				t.Errorf("subscriber %d got %q, want p1", i, got.ID)
			}
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d did not receive event", i)
		}
	}
}
