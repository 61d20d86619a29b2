package httpapi

import (
	"io"

	"chirp/internal/events"

	"github.com/gin-gonic/gin"
)

// SubscriptionController streams new-post events to clients over SSE.
type SubscriptionController struct {
	broker *events.Broker
}

func NewSubscriptionController(broker *events.Broker) *SubscriptionController {
	return &SubscriptionController{broker: broker}
}

// StreamNewPosts holds the connection open and emits one "newPost" SSE
// event per post created after the client connected. The subscription ends
// when the client disconnects.
func (ctl *SubscriptionController) StreamNewPosts(c *gin.Context) {
	ch := ctl.broker.Subscribe(c.Request.Context())

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		p, ok := <-ch
		if !ok {
			return false
		}
		c.SSEvent("newPost", p)
		return true
	})
}
