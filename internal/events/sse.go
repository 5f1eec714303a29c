package events

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/binhbb2204/Translation-Hub/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	TypeConnected       = "connected"
	TypeHeartbeat       = "heartbeat"
	TypeRatingSubmitted = "rating_submitted"
)

// Event is one SSE "data:" payload.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// Publisher is what request handlers need from the broker.
type Publisher interface {
	Publish(eventType, message string, data interface{})
}

// Broker fans events out to every open /events stream.
type Broker struct {
	mu        sync.RWMutex
	clients   map[string]chan []byte
	heartbeat time.Duration
	log       *logger.Logger
}

func NewBroker(heartbeat time.Duration) *Broker {
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	return &Broker{
		clients:   make(map[string]chan []byte),
		heartbeat: heartbeat,
		log:       logger.WithContext("component", "event_broker"),
	}
}

func (b *Broker) subscribe() (string, chan []byte) {
	id := uuid.NewString()
	ch := make(chan []byte, 10)

	b.mu.Lock()
	b.clients[id] = ch
	n := len(b.clients)
	b.mu.Unlock()

	metrics.SetEventSubscribers(n)
	b.log.Debug("subscriber_added", "subscriber_id", id, "subscribers", n)
	return id, ch
}

func (b *Broker) unsubscribe(id string) {
	b.mu.Lock()
	if ch, ok := b.clients[id]; ok {
		delete(b.clients, id)
		close(ch)
	}
	n := len(b.clients)
	b.mu.Unlock()

	metrics.SetEventSubscribers(n)
	b.log.Debug("subscriber_removed", "subscriber_id", id, "subscribers", n)
}

func newEvent(eventType, message string, data interface{}) ([]byte, error) {
	return json.Marshal(Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().Unix(),
	})
}

// ServeSSE streams events until the client goes away.
func (b *Broker) ServeSSE(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	id, messages := b.subscribe()
	defer b.unsubscribe(id)

	if hello, err := newEvent(TypeConnected, "Connected to rating events", nil); err == nil {
		writeEvent(c, hello)
	}

	ticker := time.NewTicker(b.heartbeat)
	defer ticker.Stop()

	done := c.Request.Context().Done()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if beat, err := newEvent(TypeHeartbeat, "", nil); err == nil {
				writeEvent(c, beat)
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}
			writeEvent(c, msg)
		}
	}
}

func writeEvent(c *gin.Context, payload []byte) {
	fmt.Fprintf(c.Writer, "data: %s\n\n", payload)
	c.Writer.Flush()
}

// Publish never blocks; a subscriber with a full buffer misses the event.
func (b *Broker) Publish(eventType, message string, data interface{}) {
	payload, err := newEvent(eventType, message, data)
	if err != nil {
		b.log.Error("event_marshal_failed", "type", eventType, "error", err.Error())
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.clients {
		select {
		case ch <- payload:
		default:
			b.log.Warn("subscriber_buffer_full", "subscriber_id", id, "type", eventType)
		}
	}
}

func (b *Broker) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
