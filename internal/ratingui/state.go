package ratingui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

// Rank is the user's star choice. The zero value means nothing is selected.
type Rank int

const (
	NoRank   Rank = 0
	MinRank  Rank = models.MinRating
	MaxRank  Rank = models.MaxRating
	NumStars      = models.MaxRating
)

const (
	PromptLabel = "Please select a rating"
	// SuccessMessage is shown once a submission is accepted.
	SuccessMessage = "Rating submitted, thank you for your feedback!"
	failurePrefix  = "Rating submission failed: "
)

func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// ParseRank reads a star's rank attribute, e.g. data-rating="3".
func ParseRank(attr string) (Rank, error) {
	n, err := strconv.Atoi(strings.TrimSpace(attr))
	if err != nil {
		return NoRank, fmt.Errorf("%w: %q", ErrInvalidRank, attr)
	}
	r := Rank(n)
	if !r.Valid() {
		return NoRank, fmt.Errorf("%w: %d", ErrInvalidRank, n)
	}
	return r, nil
}

func RankLabel(r Rank) string {
	return fmt.Sprintf("%d/5 stars", int(r))
}

type StarState int

const (
	StarEmpty StarState = iota
	StarFilled
)

// Glyph is how a terminal draws the star.
func (s StarState) Glyph() string {
	if s == StarFilled {
		return "★"
	}
	return "☆"
}

// StarRow draws all five stars, e.g. "★★★☆☆".
func (s State) StarRow() string {
	row := ""
	for _, st := range s.Stars {
		row += st.Glyph()
	}
	return row
}

// State is everything the controller shows. It is a value; transitions return a new one.
type State struct {
	Stars         [NumStars]StarState
	Label         string
	SubmitEnabled bool
	StoredRank    Rank

	UseProfile       bool
	AccessKeyEnabled bool
	SecretKeyEnabled bool
}

func InitialState() State {
	return State{
		Label:            PromptLabel,
		AccessKeyEnabled: true,
		SecretKeyEnabled: true,
	}
}

// FilledCount is the number of filled stars.
func (s State) FilledCount() int {
	n := 0
	for _, st := range s.Stars {
		if st == StarFilled {
			n++
		}
	}
	return n
}

// Effect describes a side effect a transition asks the controller to perform.
type Effect interface {
	effect()
}

type NotifyKind int

const (
	NotifySuccess NotifyKind = iota
	NotifyFailure
)

type NotifyEffect struct {
	Kind    NotifyKind
	Message string
}

type SubmitEffect struct {
	Payload models.RatingSubmission
}

type ReloadStatsEffect struct{}

func (NotifyEffect) effect()      {}
func (SubmitEffect) effect()      {}
func (ReloadStatsEffect) effect() {}

// SelectRating fills the first r stars and arms the submit control with r.
func SelectRating(s State, r Rank) (State, error) {
	if !r.Valid() {
		return s, fmt.Errorf("%w: %d", ErrInvalidRank, int(r))
	}
	for i := range s.Stars {
		if i < int(r) {
			s.Stars[i] = StarFilled
		} else {
			s.Stars[i] = StarEmpty
		}
	}
	s.Label = RankLabel(r)
	s.SubmitEnabled = true
	s.StoredRank = r
	return s, nil
}

// ToggleCredentials disables both key inputs while the profile is in use.
func ToggleCredentials(s State, useProfile bool) State {
	s.UseProfile = useProfile
	s.AccessKeyEnabled = !useProfile
	s.SecretKeyEnabled = !useProfile
	return s
}

// PrepareSubmit builds the outgoing payload from the stored rank and the form.
func PrepareSubmit(s State, f Form) (SubmitEffect, error) {
	if !s.StoredRank.Valid() {
		return SubmitEffect{}, ErrNoRankSelected
	}
	return SubmitEffect{Payload: models.RatingSubmission{
		SourceText:     f.OriginalText,
		TranslatedText: f.TranslatedText,
		SourceLanguage: f.SourceLanguage,
		TargetLanguage: f.TargetLanguage,
		ModelID:        f.ModelID,
		Rating:         int(s.StoredRank),
	}}, nil
}

// SubmitSucceeded undoes exactly what SelectRating changed, then asks for a
// success notice and a stats reload.
func SubmitSucceeded(s State) (State, []Effect) {
	s.Stars = [NumStars]StarState{}
	s.Label = PromptLabel
	s.SubmitEnabled = false
	s.StoredRank = NoRank
	return s, []Effect{
		NotifyEffect{Kind: NotifySuccess, Message: SuccessMessage},
		ReloadStatsEffect{},
	}
}

// SubmitFailed leaves the state alone so the user can retry by hand.
func SubmitFailed(s State, err error) (State, []Effect) {
	return s, []Effect{NotifyEffect{Kind: NotifyFailure, Message: failurePrefix + err.Error()}}
}
