package models

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// RatingSubmission is the body of POST /submit_rating. Field order is the wire order.
type RatingSubmission struct {
	SourceText     string `json:"source_text"`
	TranslatedText string `json:"translated_text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	ModelID        string `json:"model_id"`
	Rating         int    `json:"rating"`
}

type Rating struct {
	ID             int64     `json:"id" db:"id"`
	SourceText     string    `json:"source_text" db:"source_text"`
	TranslatedText string    `json:"translated_text" db:"translated_text"`
	SourceLanguage string    `json:"source_language" db:"source_language"`
	TargetLanguage string    `json:"target_language" db:"target_language"`
	ModelID        string    `json:"model_id" db:"model_id"`
	Rating         int       `json:"rating" db:"rating"`
	Timestamp      time.Time `json:"timestamp" db:"timestamp"`
}

type TimeSeriesPoint struct {
	TimePeriod string  `json:"time_period"`
	AvgRating  float64 `json:"avg_rating"`
	Count      int     `json:"count"`
}

type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type LanguagePairStats struct {
	LanguagePair string  `json:"language_pair"`
	AvgRating    float64 `json:"avg_rating"`
	Count        int     `json:"count"`
}

type ModelStats struct {
	ModelID   string  `json:"model_id"`
	AvgRating float64 `json:"avg_rating"`
	Count     int     `json:"count"`
}

// RatingStats is the body of GET /rating_stats.
type RatingStats struct {
	TimeSeries         []TimeSeriesPoint   `json:"time_series"`
	RatingDistribution []RatingBucket      `json:"rating_distribution"`
	LanguagePairs      []LanguagePairStats `json:"language_pairs"`
	Models             []ModelStats        `json:"models"`
	Insights           []string            `json:"insights"`
	Error              string              `json:"error,omitempty"`
}

// EmptyRatingStats has non-nil slices so they encode as [] rather than null.
func EmptyRatingStats() *RatingStats {
	return &RatingStats{
		TimeSeries:         []TimeSeriesPoint{},
		RatingDistribution: []RatingBucket{},
		LanguagePairs:      []LanguagePairStats{},
		Models:             []ModelStats{},
		Insights:           []string{},
	}
}
