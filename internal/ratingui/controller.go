package ratingui

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/binhbb2204/Translation-Hub/pkg/logger"
)

// Controller owns the rating widget state and runs the effects its transitions ask for.
//
// Overlapping submits or reloads are not prevented: each request applies its
// outcome when it completes, so the last one to finish wins.
type Controller struct {
	mu       sync.Mutex
	renderMu sync.Mutex
	state    State

	api         APIClient
	form        FormSource
	granularity GranularitySource
	notifier    Notifier
	renderer    ChartRenderer

	handlers map[EventKind]func(ctx context.Context, ev Event) error
	log      *logger.Logger
}

type Option func(*Controller)

// WithRenderer installs the chart renderer. Without one, loaded stats are only logged.
func WithRenderer(r ChartRenderer) Option {
	return func(c *Controller) { c.renderer = r }
}

func WithGranularitySource(g GranularitySource) Option {
	return func(c *Controller) { c.granularity = g }
}

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Controller) { c.log = l }
}

func NewController(api APIClient, form FormSource, opts ...Option) *Controller {
	c := &Controller{
		state: InitialState(),
		api:   api,
		form:  form,
		log:   logger.WithContext("component", "rating_ui"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.notifier == nil {
		c.notifier = logNotifier{log: c.log}
	}

	c.handlers = map[EventKind]func(context.Context, Event) error{
		EventStarClicked: func(_ context.Context, ev Event) error {
			return c.ClickStar(ev.Rank)
		},
		EventSubmitClicked: func(ctx context.Context, _ Event) error {
			return c.SubmitRating(ctx)
		},
		EventRefreshClicked: func(ctx context.Context, _ Event) error {
			return c.LoadRatingStats(ctx)
		},
		EventCredentialsToggled: func(_ context.Context, ev Event) error {
			c.ToggleCredentials(ev.Checked)
			return nil
		},
	}
	return c
}

// State returns a copy of the current widget state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Init is the page-ready hook: one stats load whose failure is only logged.
func (c *Controller) Init(ctx context.Context) {
	c.log.Debug("rating_ui_ready")
	_ = c.LoadRatingStats(ctx)
}

func (c *Controller) ClickStar(r Rank) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := SelectRating(c.state, r)
	if err != nil {
		c.log.Warn("invalid_star_rank", "rank", int(r))
		return err
	}
	c.state = next
	c.log.Debug("rating_selected", "rank", int(r), "filled", next.FilledCount())
	return nil
}

func (c *Controller) ToggleCredentials(useProfile bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = ToggleCredentials(c.state, useProfile)
}

// SubmitRating posts the stored rank with the current form. Exactly one attempt
// is made; every failure is returned as *SubmissionError after being shown.
func (c *Controller) SubmitRating(ctx context.Context) error {
	c.mu.Lock()
	submit, err := PrepareSubmit(c.state, c.form.CurrentForm())
	c.mu.Unlock()

	if err == nil {
		c.log.Info("submitting_rating", "rating", submit.Payload.Rating, "model_id", submit.Payload.ModelID)
		err = c.api.SubmitRating(ctx, submit.Payload)
	}

	if err != nil {
		subErr := toSubmissionError(err)
		c.log.Warn("rating_submission_failed", "error", subErr.Error(), "status", subErr.StatusCode)

		c.mu.Lock()
		next, effects := SubmitFailed(c.state, subErr)
		c.state = next
		c.mu.Unlock()

		c.run(ctx, effects)
		return subErr
	}

	c.mu.Lock()
	next, effects := SubmitSucceeded(c.state)
	c.state = next
	c.mu.Unlock()

	c.log.Info("rating_submitted", "rating", submit.Payload.Rating)
	c.run(ctx, effects)
	return nil
}

func toSubmissionError(err error) *SubmissionError {
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		return subErr
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return &SubmissionError{StatusCode: statusErr.StatusCode}
	}
	return &SubmissionError{Err: err}
}

func (c *Controller) currentGranularity() string {
	if c.granularity == nil {
		return DefaultGranularity
	}
	g, ok := c.granularity.Granularity()
	if !ok || g == "" {
		return DefaultGranularity
	}
	return g
}

// LoadRatingStats fetches stats and hands each slice to the renderer. Failures
// are logged and returned as *StatsLoadError; they are never shown to the user.
func (c *Controller) LoadRatingStats(ctx context.Context) error {
	granularity := c.currentGranularity()

	stats, err := c.api.RatingStats(ctx, granularity)
	if err != nil {
		loadErr := &StatsLoadError{Err: err}
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			loadErr.StatusCode = statusErr.StatusCode
		}
		c.log.Error("rating_stats_load_failed", "granularity", granularity, "error", loadErr.Error())
		return loadErr
	}

	if c.renderer == nil {
		c.log.Warn("chart_renderer_unavailable", "granularity", granularity)
		return nil
	}

	// Requests may overlap; the panels of one load are drawn together.
	c.renderMu.Lock()
	err = render(c.renderer, stats, granularity)
	c.renderMu.Unlock()
	if err != nil {
		loadErr := &StatsLoadError{Err: err}
		c.log.Error("rating_stats_load_failed", "granularity", granularity, "error", loadErr.Error())
		return loadErr
	}
	return nil
}

func render(r ChartRenderer, stats *StatsResponse, granularity string) error {
	if err := r.RenderTrend(stats.TimeSeries, granularity); err != nil {
		return fmt.Errorf("render trend: %w", err)
	}
	if err := r.RenderDistribution(stats.RatingDistribution); err != nil {
		return fmt.Errorf("render distribution: %w", err)
	}
	if err := r.RenderLanguagePairs(stats.LanguagePairs); err != nil {
		return fmt.Errorf("render language pairs: %w", err)
	}
	if err := r.RenderModels(stats.Models); err != nil {
		return fmt.Errorf("render models: %w", err)
	}
	if err := r.RenderInsights(stats.Insights); err != nil {
		return fmt.Errorf("render insights: %w", err)
	}
	return nil
}

// run executes effects outside the lock.
func (c *Controller) run(ctx context.Context, effects []Effect) {
	for _, e := range effects {
		switch eff := e.(type) {
		case NotifyEffect:
			c.notify(eff)
		case ReloadStatsEffect:
			_ = c.LoadRatingStats(ctx)
		}
	}
}

func (c *Controller) notify(n NotifyEffect) {
	if n.Kind == NotifySuccess {
		c.notifier.Success(n.Message)
		return
	}
	c.notifier.Failure(n.Message)
}

type logNotifier struct {
	log *logger.Logger
}

func (n logNotifier) Success(message string) { n.log.Info("notify_success", "message", message) }
func (n logNotifier) Failure(message string) { n.log.Warn("notify_failure", "message", message) }
