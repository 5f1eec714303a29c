package ratingui

import "encoding/json"

// DefaultGranularity is used when no granularity control is present.
const DefaultGranularity = "day"

// Form is what the page shows next to the stars when the user submits.
type Form struct {
	OriginalText   string
	TranslatedText string
	SourceLanguage string
	TargetLanguage string
	ModelID        string
}

// FormSource yields the current form contents at submit time.
type FormSource interface {
	CurrentForm() Form
}

func (f Form) CurrentForm() Form { return f }

// GranularitySource is the stats granularity control. ok is false when the
// control does not exist.
type GranularitySource interface {
	Granularity() (value string, ok bool)
}

// FixedGranularity is a control that always reads the same value; "" behaves as absent.
type FixedGranularity string

func (g FixedGranularity) Granularity() (string, bool) {
	return string(g), g != ""
}

// Notifier is the blocking alert shown for submission outcomes.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// ChartRenderer draws the stats panels. The controller calls the methods in
// declaration order, once each per successful load.
type ChartRenderer interface {
	RenderTrend(timeSeries json.RawMessage, granularity string) error
	RenderDistribution(distribution json.RawMessage) error
	RenderLanguagePairs(pairs json.RawMessage) error
	RenderModels(models json.RawMessage) error
	RenderInsights(insights json.RawMessage) error
}

// StatsResponse keeps each slice of /rating_stats undecoded; renderers own the shapes.
type StatsResponse struct {
	TimeSeries         json.RawMessage `json:"time_series"`
	RatingDistribution json.RawMessage `json:"rating_distribution"`
	LanguagePairs      json.RawMessage `json:"language_pairs"`
	Models             json.RawMessage `json:"models"`
	Insights           json.RawMessage `json:"insights"`
}
