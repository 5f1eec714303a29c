package rating

import (
	"context"
	"errors"
	"time"

	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

type Granularity string

const (
	GranularityHour Granularity = "hour"
	GranularityDay  Granularity = "day"
)

// ParseGranularity maps anything other than "hour" to day buckets.
func ParseGranularity(s string) Granularity {
	if Granularity(s) == GranularityHour {
		return GranularityHour
	}
	return GranularityDay
}

func (g Granularity) bucketLayout() string {
	if g == GranularityHour {
		return "2006-01-02 15:00:00"
	}
	return "2006-01-02"
}

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Repository stores ratings and answers the aggregate queries behind /rating_stats.
// Every aggregate only considers ratings at or after since.
type Repository interface {
	AddRating(ctx context.Context, r *models.Rating) (*models.Rating, error)

	CountAll(ctx context.Context) (int, error)

	TimeSeries(ctx context.Context, since time.Time, g Granularity) ([]models.TimeSeriesPoint, error)

	Distribution(ctx context.Context, since time.Time) ([]models.RatingBucket, error)

	LanguagePairs(ctx context.Context, since time.Time) ([]models.LanguagePairStats, error)

	Models(ctx context.Context, since time.Time) ([]models.ModelStats, error)
}

func validate(r *models.Rating) error {
	if r == nil {
		return errors.New("rating is nil")
	}
	if r.Rating < models.MinRating || r.Rating > models.MaxRating {
		return ErrInvalidRating
	}
	return nil
}

func languagePair(source, target string) string {
	return source + " -> " + target
}
