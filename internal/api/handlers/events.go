package handlers

import (
	"io"
	"time"

	"coach-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// StateChangedEvent is the server-sent event name emitted after every persisted mutation
const StateChangedEvent = "state-changed"

// Subscriber registers a callback for state changes
type Subscriber interface {
	Subscribe(fn func()) (unsubscribe func())
}

// EventsHandler streams state change notifications as server-sent events
type EventsHandler struct {
	subscriber Subscriber
	heartbeat  time.Duration
}

// NewEventsHandler creates a new events handler. A non-positive heartbeat defaults to 30s.
func NewEventsHandler(subscriber Subscriber, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &EventsHandler{
		subscriber: subscriber,
		heartbeat:  heartbeat,
	}
}

// Stream handles GET /events
// @Summary Subscribe to state changes
// @Description Server-sent events. A "state-changed" event (no payload beyond a timestamp) follows every persisted change; clients reload the state.
// @Tags events
// @Produce text/event-stream
// @Success 200 {string} string "event stream"
// @Router /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	// one pending signal is enough, clients reload the whole state anyway
	changed := make(chan struct{}, 1)
	unsubscribe := h.subscriber.Subscribe(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	log := logger.WithContext(c.Request.Context())
	log.Debug("event stream opened")
	defer log.Debug("event stream closed")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.SSEvent("ready", gin.H{"at": time.Now().UnixMilli()})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case <-changed:
			c.SSEvent(StateChangedEvent, gin.H{"at": time.Now().UnixMilli()})
			return true
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UnixMilli()})
			return true
		}
	})
}
