package events

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var ev Event
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &ev))
		return ev
	}
}

func TestBroker_StreamsPublishedEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)
	broker := NewBroker(time.Hour)
	router := gin.New()
	router.GET("/events", broker.ServeSSE)

	srv := httptest.NewServer(router)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	hello := readEvent(t, reader)
	assert.Equal(t, TypeConnected, hello.Type)
	require.Eventually(t, func() bool { return broker.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	broker.Publish(TypeRatingSubmitted, "rating stored", map[string]int{"rating": 4})

	ev := readEvent(t, reader)
	assert.Equal(t, TypeRatingSubmitted, ev.Type)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, map[string]interface{}{"rating": float64(4)}, ev.Data)

	cancel()
	assert.Eventually(t, func() bool { return broker.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestBroker_HeartbeatAndFullBuffer(t *testing.T) {
	broker := NewBroker(0)
	assert.Equal(t, 30*time.Second, broker.heartbeat)

	id, ch := broker.subscribe()
	for i := 0; i < cap(ch)+5; i++ {
		broker.Publish(TypeRatingSubmitted, "x", nil)
	}
	assert.Len(t, ch, cap(ch))

	broker.unsubscribe(id)
	_, open := <-drain(ch)
	assert.False(t, open)
}

func drain(ch chan []byte) chan []byte {
	for len(ch) > 0 {
		<-ch
	}
	return ch
}
