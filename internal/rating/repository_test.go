package rating

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "ratings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return map[string]Repository{
		"sqlite": NewDBRepository(db),
		"memory": NewMemoryRepository(),
	}
}

func seed(t *testing.T, repo Repository) {
	t.Helper()
	ctx := context.Background()
	rows := []models.Rating{
		{SourceLanguage: "en", TargetLanguage: "fr", ModelID: "m1", Rating: 5, Timestamp: baseTime},
		{SourceLanguage: "en", TargetLanguage: "fr", ModelID: "m1", Rating: 3, Timestamp: baseTime.Add(20 * time.Minute)},
		{SourceLanguage: "en", TargetLanguage: "de", ModelID: "m2", Rating: 2, Timestamp: baseTime.Add(2 * time.Hour)},
		{SourceLanguage: "zh", TargetLanguage: "en", ModelID: "m2", Rating: 4, Timestamp: baseTime.Add(26 * time.Hour)},
		// outside a seven day window ending at baseTime+2d
		{SourceLanguage: "en", TargetLanguage: "fr", ModelID: "old", Rating: 1, Timestamp: baseTime.Add(-10 * 24 * time.Hour)},
	}
	for i := range rows {
		_, err := repo.AddRating(ctx, &rows[i])
		require.NoError(t, err)
	}
}

func TestRepository_AddRatingValidates(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.AddRating(context.Background(), &models.Rating{Rating: 6})
			assert.ErrorIs(t, err, ErrInvalidRating)

			_, err = repo.AddRating(context.Background(), nil)
			assert.Error(t, err)

			stored, err := repo.AddRating(context.Background(), &models.Rating{Rating: 1})
			require.NoError(t, err)
			assert.NotZero(t, stored.ID)
			assert.False(t, stored.Timestamp.IsZero())
		})
	}
}

func TestRepository_Aggregates(t *testing.T) {
	since := baseTime.Add(2*24*time.Hour - DefaultWindow)

	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			seed(t, repo)
			ctx := context.Background()

			count, err := repo.CountAll(ctx)
			require.NoError(t, err)
			assert.Equal(t, 5, count)

			days, err := repo.TimeSeries(ctx, since, GranularityDay)
			require.NoError(t, err)
			assert.Equal(t, []models.TimeSeriesPoint{
				{TimePeriod: "2025-03-10", AvgRating: 10.0 / 3.0, Count: 3},
				{TimePeriod: "2025-03-11", AvgRating: 4, Count: 1},
			}, days)

			hours, err := repo.TimeSeries(ctx, since, GranularityHour)
			require.NoError(t, err)
			require.Len(t, hours, 3)
			assert.Equal(t, "2025-03-10 09:00:00", hours[0].TimePeriod)
			assert.Equal(t, 2, hours[0].Count)
			assert.InDelta(t, 4.0, hours[0].AvgRating, 1e-9)

			dist, err := repo.Distribution(ctx, since)
			require.NoError(t, err)
			assert.Equal(t, []models.RatingBucket{
				{Rating: 2, Count: 1}, {Rating: 3, Count: 1}, {Rating: 4, Count: 1}, {Rating: 5, Count: 1},
			}, dist)

			pairs, err := repo.LanguagePairs(ctx, since)
			require.NoError(t, err)
			assert.Equal(t, []models.LanguagePairStats{
				{LanguagePair: "en -> fr", AvgRating: 4, Count: 2},
				{LanguagePair: "zh -> en", AvgRating: 4, Count: 1},
				{LanguagePair: "en -> de", AvgRating: 2, Count: 1},
			}, pairs)

			ms, err := repo.Models(ctx, since)
			require.NoError(t, err)
			assert.Equal(t, []models.ModelStats{
				{ModelID: "m1", AvgRating: 4, Count: 2},
				{ModelID: "m2", AvgRating: 3, Count: 2},
			}, ms)
		})
	}
}

func TestParseGranularity(t *testing.T) {
	assert.Equal(t, GranularityHour, ParseGranularity("hour"))
	assert.Equal(t, GranularityDay, ParseGranularity("day"))
	assert.Equal(t, GranularityDay, ParseGranularity("week"))
	assert.Equal(t, GranularityDay, ParseGranularity(""))
}
