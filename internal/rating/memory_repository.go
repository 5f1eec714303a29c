package rating

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

// MemoryRepository keeps ratings in process. Handler and router tests run against it.
type MemoryRepository struct {
	mu      sync.RWMutex
	ratings []models.Rating
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) AddRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	if err := validate(rating); err != nil {
		return nil, err
	}
	if rating.Timestamp.IsZero() {
		rating.Timestamp = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rating.ID = r.nextID
	r.nextID++
	r.ratings = append(r.ratings, *rating)
	return rating, nil
}

func (r *MemoryRepository) CountAll(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ratings), nil
}

type accumulator struct {
	sum   int
	count int
}

func (a accumulator) avg() float64 {
	return float64(a.sum) / float64(a.count)
}

// groupSince buckets ratings at or after since by key.
func (r *MemoryRepository) groupSince(since time.Time, key func(models.Rating) string) map[string]*accumulator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Stored timestamps have second precision, as in sqlite.
	cutoff := since.UTC().Truncate(time.Second)
	groups := make(map[string]*accumulator)
	for _, rt := range r.ratings {
		if rt.Timestamp.UTC().Truncate(time.Second).Before(cutoff) {
			continue
		}
		k := key(rt)
		acc, ok := groups[k]
		if !ok {
			acc = &accumulator{}
			groups[k] = acc
		}
		acc.sum += rt.Rating
		acc.count++
	}
	return groups
}

func (r *MemoryRepository) TimeSeries(ctx context.Context, since time.Time, g Granularity) ([]models.TimeSeriesPoint, error) {
	layout := g.bucketLayout()
	groups := r.groupSince(since, func(rt models.Rating) string {
		return rt.Timestamp.UTC().Format(layout)
	})

	out := make([]models.TimeSeriesPoint, 0, len(groups))
	for period, acc := range groups {
		out = append(out, models.TimeSeriesPoint{TimePeriod: period, AvgRating: acc.avg(), Count: acc.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TimePeriod < out[j].TimePeriod })
	return out, nil
}

func (r *MemoryRepository) Distribution(ctx context.Context, since time.Time) ([]models.RatingBucket, error) {
	groups := r.groupSince(since, func(rt models.Rating) string {
		return strconv.Itoa(rt.Rating)
	})

	out := make([]models.RatingBucket, 0, len(groups))
	for k, acc := range groups {
		value, _ := strconv.Atoi(k)
		out = append(out, models.RatingBucket{Rating: value, Count: acc.count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out, nil
}

func (r *MemoryRepository) LanguagePairs(ctx context.Context, since time.Time) ([]models.LanguagePairStats, error) {
	groups := r.groupSince(since, func(rt models.Rating) string {
		return languagePair(rt.SourceLanguage, rt.TargetLanguage)
	})

	out := make([]models.LanguagePairStats, 0, len(groups))
	for pair, acc := range groups {
		out = append(out, models.LanguagePairStats{LanguagePair: pair, AvgRating: acc.avg(), Count: acc.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].LanguagePair < out[j].LanguagePair
	})
	return out, nil
}

func (r *MemoryRepository) Models(ctx context.Context, since time.Time) ([]models.ModelStats, error) {
	groups := r.groupSince(since, func(rt models.Rating) string { return rt.ModelID })

	out := make([]models.ModelStats, 0, len(groups))
	for id, acc := range groups {
		out = append(out, models.ModelStats{ModelID: id, AvgRating: acc.avg(), Count: acc.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgRating != out[j].AvgRating {
			return out[i].AvgRating > out[j].AvgRating
		}
		return out[i].ModelID < out[j].ModelID
	})
	return out, nil
}
