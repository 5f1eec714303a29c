package ratingui

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRank    = errors.New("invalid rank")
	ErrNoRankSelected = errors.New("no rating selected")
)

// SubmissionError is any failure of a rating submission. It is always shown to the user.
type SubmissionError struct {
	StatusCode int
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "rating submission failed"
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// StatsLoadError is any failure to load statistics. It is only ever logged.
type StatsLoadError struct {
	StatusCode int
	Err        error
}

func (e *StatsLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load rating stats: %v", e.Err)
	}
	return fmt.Sprintf("failed to load rating stats: HTTP %d", e.StatusCode)
}

func (e *StatsLoadError) Unwrap() error {
	return e.Err
}

// StatusError is returned by the HTTP client for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("unexpected status %s", e.Status)
}
