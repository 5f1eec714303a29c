package rating

import (
	"context"
	"time"

	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

const DefaultWindow = 7 * 24 * time.Hour

// Service holds the rating rules shared by every transport.
type Service struct {
	repo   Repository
	window time.Duration
	now    func() time.Time
	log    *logger.Logger
}

func NewService(repo Repository, window time.Duration) *Service {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Service{
		repo:   repo,
		window: window,
		now:    time.Now,
		log:    logger.WithContext("component", "rating_service"),
	}
}

func (s *Service) Submit(ctx context.Context, sub models.RatingSubmission) (*models.Rating, error) {
	if sub.Rating < models.MinRating || sub.Rating > models.MaxRating {
		return nil, ErrInvalidRating
	}

	stored, err := s.repo.AddRating(ctx, &models.Rating{
		SourceText:     sub.SourceText,
		TranslatedText: sub.TranslatedText,
		SourceLanguage: sub.SourceLanguage,
		TargetLanguage: sub.TargetLanguage,
		ModelID:        sub.ModelID,
		Rating:         sub.Rating,
		Timestamp:      s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("rating_submitted",
		"rating", stored.Rating,
		"source_language", stored.SourceLanguage,
		"target_language", stored.TargetLanguage,
		"model_id", stored.ModelID,
	)
	return stored, nil
}

// Stats aggregates the ratings of the trailing window.
func (s *Service) Stats(ctx context.Context, g Granularity) (*models.RatingStats, error) {
	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	out := models.EmptyRatingStats()
	if count == 0 {
		s.log.Warn("no_rating_data")
		out.Insights = []string{NoDataInsight}
		return out, nil
	}

	since := s.now().Add(-s.window)

	if out.TimeSeries, err = s.repo.TimeSeries(ctx, since, g); err != nil {
		return nil, err
	}
	if out.RatingDistribution, err = s.repo.Distribution(ctx, since); err != nil {
		return nil, err
	}
	if out.LanguagePairs, err = s.repo.LanguagePairs(ctx, since); err != nil {
		return nil, err
	}
	if out.Models, err = s.repo.Models(ctx, since); err != nil {
		return nil, err
	}

	out.Insights = GenerateInsights(out.TimeSeries, out.RatingDistribution, out.LanguagePairs, out.Models)

	s.log.Debug("rating_stats_computed",
		"granularity", string(g),
		"time_periods", len(out.TimeSeries),
		"rating_values", len(out.RatingDistribution),
		"language_pairs", len(out.LanguagePairs),
		"models", len(out.Models),
	)
	return out, nil
}
