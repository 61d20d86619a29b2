package httpapi

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"chirp/internal/events"
	postPort "chirp/internal/ports/post"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func TestStreamNewPostsDeliversEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	broker := events.NewBroker(zap.NewNop())

	r := gin.New()
	r.GET("/posts/stream", NewSubscriptionController(broker).StreamNewPosts)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/posts/stream", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connecting to stream: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}

	// Publish only once the subscriber is registered.
	deadline := time.After(2 * time.Second)
	for broker.SubscriberCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("stream handler never subscribed")
		case <-time.After(5 * time.Millisecond):
		}
	}

	broker.Publish(&postPort.PostDTO{ID: "p1", Body: "hello", Username: "alice"})

	lines := make(chan string, 8)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	var sawEvent, sawData bool
	timeout := time.After(2 * time.Second)
	for !(sawEvent && sawData) {
		select {
		case line, ok := <-lines:
			if !ok {
				t.Fatal("stream closed before delivering the event")
			}
			if strings.HasPrefix(line, "event:") && strings.Contains(line, "newPost") {
				sawEvent = true
			}
			if strings.HasPrefix(line, "data:") && strings.Contains(line, `"id":"p1"`) {
				sawData = true
			}
		case <-timeout:
			t.Fatalf("did not receive newPost event (sawEvent=%v sawData=%v)", sawEvent, sawData)
		}
	}

	// Disconnecting tears the subscription down.
	cancel()
	deadline = time.After(2 * time.Second)
	for broker.SubscriberCount() != 0 {
		select {
		case <-deadline:
			t.Fatal("subscriber not removed after client disconnect")
		case <-time.After(5 * time.Millisecond):
		}
	}
}
