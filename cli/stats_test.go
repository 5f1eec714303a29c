package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/ratingui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// slowTerminal stretches every write so overlapping renders would interleave.
type slowTerminal struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *slowTerminal) Write(p []byte) (int, error) {
	time.Sleep(time.Millisecond)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *slowTerminal) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func TestStatsFollow_OverlappingRefreshesDrawWholeFrames(t *testing.T) {
	srv := newRatingServer(t)
	term := &slowTerminal{}
	ctrl := ratingui.NewController(ratingui.NewHTTPClient(srv.URL, nil), ratingui.Form{},
		ratingui.WithRenderer(terminalRenderer{w: term}),
		ratingui.WithGranularitySource(ratingui.FixedGranularity("day")),
	)

	const refreshes = 5
	queue := make(chan ratingui.Event, refreshes)
	for i := 0; i < refreshes; i++ {
		queue <- ratingui.RefreshClicked()
	}
	close(queue)
	ctrl.Run(context.Background(), queue)

	require.Len(t, srv.stats, refreshes)
	frames, open := 0, false
	for _, line := range strings.Split(term.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "Average rating by day"):
			require.False(t, open, "a frame started inside another frame")
			open = true
		case line == "Insights":
			require.True(t, open, "insights drawn outside a frame")
			open = false
			frames++
		}
	}
	assert.False(t, open)
	assert.Equal(t, refreshes, frames)
}
