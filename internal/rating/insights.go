package rating

import (
	"fmt"

	"github.com/binhbb2204/Translation-Hub/pkg/modelcatalog"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
	"github.com/montanaflynn/stats"
)

const NoDataInsight = "No rating data yet, translate and rate something first"

// GenerateInsights summarises the aggregates as human readable lines. The
// language pair and model slices must already be ordered best first.
func GenerateInsights(
	timeSeries []models.TimeSeriesPoint,
	distribution []models.RatingBucket,
	pairs []models.LanguagePairStats,
	modelStats []models.ModelStats,
) []string {
	if len(distribution) == 0 {
		return []string{NoDataInsight}
	}

	insights := []string{}

	var values stats.Float64Data
	for _, b := range distribution {
		for i := 0; i < b.Count; i++ {
			values = append(values, float64(b.Rating))
		}
	}
	if len(values) > 0 {
		mean, _ := values.Mean()
		median, _ := values.Median()
		insights = append(insights,
			fmt.Sprintf("Overall average rating: %.2f/5.0", mean),
			fmt.Sprintf("Total ratings: %d", len(values)),
			fmt.Sprintf("Median rating: %.1f", median),
		)
	}

	if len(timeSeries) >= 2 {
		first := timeSeries[0].AvgRating
		last := timeSeries[len(timeSeries)-1].AvgRating
		delta, _ := stats.Round(last-first, 2)
		switch {
		case last > first:
			insights = append(insights, fmt.Sprintf("Rating trend: up (+%.2f)", delta))
		case last < first:
			insights = append(insights, fmt.Sprintf("Rating trend: down (%.2f)", delta))
		default:
			insights = append(insights, "Rating trend: stable")
		}
	}

	if len(pairs) > 0 {
		best := pairs[0]
		insights = append(insights, fmt.Sprintf("Best language pair: %s (average rating: %.2f)", best.LanguagePair, best.AvgRating))
	}

	if len(modelStats) > 0 {
		best := modelStats[0]
		insights = append(insights, fmt.Sprintf("Best model: %s (average rating: %.2f)", modelcatalog.DisplayName(best.ModelID), best.AvgRating))
	}

	return insights
}
