package rating

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/binhbb2204/Translation-Hub/pkg/database"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

type DBRepository struct {
	db *sql.DB
}

func NewDBRepository(db *sql.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) AddRating(ctx context.Context, rating *models.Rating) (*models.Rating, error) {
	if err := validate(rating); err != nil {
		return nil, err
	}
	if rating.Timestamp.IsZero() {
		rating.Timestamp = time.Now()
	}

	query := `
		INSERT INTO ratings (
			source_text, translated_text, source_language,
			target_language, model_id, rating, timestamp
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := r.db.ExecContext(
		ctx,
		query,
		rating.SourceText,
		rating.TranslatedText,
		rating.SourceLanguage,
		rating.TargetLanguage,
		rating.ModelID,
		rating.Rating,
		rating.Timestamp.UTC().Format(database.TimeLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert rating: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("read rating id: %w", err)
	}
	rating.ID = id
	return rating, nil
}

func (r *DBRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count ratings: %w", err)
	}
	return count, nil
}

func sinceArg(since time.Time) string {
	return since.UTC().Format(database.TimeLayout)
}

func (r *DBRepository) TimeSeries(ctx context.Context, since time.Time, g Granularity) ([]models.TimeSeriesPoint, error) {
	format := "%Y-%m-%d"
	if g == GranularityHour {
		format = "%Y-%m-%d %H:00:00"
	}

	query := `
		SELECT
			strftime(?, timestamp) AS time_period,
			AVG(rating) AS avg_rating,
			COUNT(*) AS count
		FROM ratings
		WHERE timestamp >= ?
		GROUP BY time_period
		ORDER BY time_period
	`

	rows, err := r.db.QueryContext(ctx, query, format, sinceArg(since))
	if err != nil {
		return nil, fmt.Errorf("query time series: %w", err)
	}
	defer rows.Close()

	out := []models.TimeSeriesPoint{}
	for rows.Next() {
		var p models.TimeSeriesPoint
		if err := rows.Scan(&p.TimePeriod, &p.AvgRating, &p.Count); err != nil {
			return nil, fmt.Errorf("scan time series: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *DBRepository) Distribution(ctx context.Context, since time.Time) ([]models.RatingBucket, error) {
	query := `
		SELECT rating, COUNT(*) AS count
		FROM ratings
		WHERE timestamp >= ?
		GROUP BY rating
		ORDER BY rating
	`

	rows, err := r.db.QueryContext(ctx, query, sinceArg(since))
	if err != nil {
		return nil, fmt.Errorf("query distribution: %w", err)
	}
	defer rows.Close()

	out := []models.RatingBucket{}
	for rows.Next() {
		var b models.RatingBucket
		if err := rows.Scan(&b.Rating, &b.Count); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *DBRepository) LanguagePairs(ctx context.Context, since time.Time) ([]models.LanguagePairStats, error) {
	query := `
		SELECT
			COALESCE(source_language, '') || ' -> ' || COALESCE(target_language, '') AS language_pair,
			AVG(rating) AS avg_rating,
			COUNT(*) AS count
		FROM ratings
		WHERE timestamp >= ?
		GROUP BY language_pair
		ORDER BY avg_rating DESC, language_pair
	`

	rows, err := r.db.QueryContext(ctx, query, sinceArg(since))
	if err != nil {
		return nil, fmt.Errorf("query language pairs: %w", err)
	}
	defer rows.Close()

	out := []models.LanguagePairStats{}
	for rows.Next() {
		var p models.LanguagePairStats
		if err := rows.Scan(&p.LanguagePair, &p.AvgRating, &p.Count); err != nil {
			return nil, fmt.Errorf("scan language pairs: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *DBRepository) Models(ctx context.Context, since time.Time) ([]models.ModelStats, error) {
	query := `
		SELECT
			COALESCE(model_id, '') AS model_id,
			AVG(rating) AS avg_rating,
			COUNT(*) AS count
		FROM ratings
		WHERE timestamp >= ?
		GROUP BY model_id
		ORDER BY avg_rating DESC, model_id
	`

	rows, err := r.db.QueryContext(ctx, query, sinceArg(since))
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	defer rows.Close()

	out := []models.ModelStats{}
	for rows.Next() {
		var m models.ModelStats
		if err := rows.Scan(&m.ModelID, &m.AvgRating, &m.Count); err != nil {
			return nil, fmt.Errorf("scan models: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
