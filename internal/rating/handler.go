package rating

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/binhbb2204/Translation-Hub/pkg/metrics"
	"github.com/binhbb2204/Translation-Hub/pkg/models"
	"github.com/gin-gonic/gin"
)

var errInvalidRatingValue = errors.New("invalid rating value")

// submitRatingRequest accepts the rating as a JSON number or a numeric string.
type submitRatingRequest struct {
	SourceText     string      `json:"source_text"`
	TranslatedText string      `json:"translated_text"`
	SourceLanguage string      `json:"source_language"`
	TargetLanguage string      `json:"target_language"`
	ModelID        string      `json:"model_id"`
	Rating         interface{} `json:"rating"`
}

type Handler struct {
	service   *Service
	publisher events.Publisher
	log       *logger.Logger
}

// NewHandler wires the HTTP surface. publisher may be nil.
func NewHandler(service *Service, publisher events.Publisher) *Handler {
	return &Handler{
		service:   service,
		publisher: publisher,
		log:       logger.WithContext("component", "rating_handler"),
	}
}

func (h *Handler) RegisterRoutes(router gin.IRouter) {
	router.POST("/submit_rating", h.SubmitRating)
	router.GET("/rating_stats", h.RatingStats)
}

func parseRating(v interface{}) (int, error) {
	switch val := v.(type) {
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, errInvalidRatingValue
		}
		return int(val), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return 0, errInvalidRatingValue
		}
		return n, nil
	default:
		return 0, errInvalidRatingValue
	}
}

// SubmitRating handles POST /submit_rating.
func (h *Handler) SubmitRating(c *gin.Context) {
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncrementRatingsRejected("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value, err := parseRating(req.Rating)
	if err != nil {
		metrics.IncrementRatingsRejected("invalid_value")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rating value"})
		return
	}
	if value < models.MinRating || value > models.MaxRating {
		metrics.IncrementRatingsRejected("out_of_range")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	stored, err := h.service.Submit(c.Request.Context(), models.RatingSubmission{
		SourceText:     req.SourceText,
		TranslatedText: req.TranslatedText,
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		ModelID:        req.ModelID,
		Rating:         value,
	})
	if err != nil {
		h.log.Error("submit_rating_failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	metrics.IncrementRatingsSubmitted(stored.Rating)
	if h.publisher != nil {
		h.publisher.Publish(events.TypeRatingSubmitted,
			fmt.Sprintf("Rating %d/5 for %s", stored.Rating, languagePair(stored.SourceLanguage, stored.TargetLanguage)),
			gin.H{"id": stored.ID, "rating": stored.Rating, "model_id": stored.ModelID},
		)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RatingStats handles GET /rating_stats?granularity=hour|day.
func (h *Handler) RatingStats(c *gin.Context) {
	g := ParseGranularity(c.DefaultQuery("granularity", string(GranularityDay)))

	stats, err := h.service.Stats(c.Request.Context(), g)
	if err != nil {
		metrics.IncrementStatsRequests(string(g), "error")
		h.log.Error("rating_stats_failed", "granularity", string(g), "error", err.Error())

		out := models.EmptyRatingStats()
		out.Error = err.Error()
		out.Insights = []string{fmt.Sprintf("Failed to load rating statistics: %s", err.Error())}
		c.JSON(http.StatusInternalServerError, out)
		return
	}

	metrics.IncrementStatsRequests(string(g), "ok")
	h.log.Info("rating_stats_served",
		"granularity", string(g),
		"time_periods", len(stats.TimeSeries),
		"language_pairs", len(stats.LanguagePairs),
		"models", len(stats.Models),
	)
	c.JSON(http.StatusOK, stats)
}
