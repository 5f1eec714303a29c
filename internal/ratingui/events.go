package ratingui

import (
	"context"
	"fmt"
	"sync"
)

type EventKind string

const (
	EventStarClicked        EventKind = "star_clicked"
	EventSubmitClicked      EventKind = "submit_clicked"
	EventRefreshClicked     EventKind = "refresh_clicked"
	EventCredentialsToggled EventKind = "credentials_toggled"
)

// Event is one user interaction. Rank is set for star clicks, Checked for the
// credentials checkbox.
type Event struct {
	Kind    EventKind
	Rank    Rank
	Checked bool
}

func StarClicked(r Rank) Event         { return Event{Kind: EventStarClicked, Rank: r} }
func SubmitClicked() Event             { return Event{Kind: EventSubmitClicked} }
func RefreshClicked() Event            { return Event{Kind: EventRefreshClicked} }
func CredentialsToggled(on bool) Event { return Event{Kind: EventCredentialsToggled, Checked: on} }

func (e Event) async() bool {
	return e.Kind == EventSubmitClicked || e.Kind == EventRefreshClicked
}

// Handle dispatches one event to its registered handler and waits for it.
func (c *Controller) Handle(ctx context.Context, ev Event) error {
	h, ok := c.handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("no handler for event %q", ev.Kind)
	}
	return h(ctx, ev)
}

// Run consumes events until the channel closes or ctx ends. Star clicks and
// the credentials toggle are applied in order; submit and refresh are started
// without waiting, like a click handler that returns before its request
// completes. Run returns once every started request has finished.
func (c *Controller) Run(ctx context.Context, events <-chan Event) {
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if !ev.async() {
				if err := c.Handle(ctx, ev); err != nil {
					c.log.Debug("event_rejected", "event", string(ev.Kind), "error", err.Error())
				}
				continue
			}
			wg.Add(1)
			go func(ev Event) {
				defer wg.Done()
				// Outcomes are already surfaced through the notifier or the log.
				_ = c.Handle(ctx, ev)
			}(ev)
		}
	}
}
