package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ratingsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translatehub_ratings_submitted_total",
		Help: "Ratings accepted by POST /submit_rating, by rating value.",
	}, []string{"rating"})

	ratingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translatehub_ratings_rejected_total",
		Help: "Rating submissions rejected before storage, by reason.",
	}, []string{"reason"})

	statsRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "translatehub_rating_stats_requests_total",
		Help: "GET /rating_stats requests, by granularity and outcome.",
	}, []string{"granularity", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "translatehub_http_request_duration_seconds",
		Help:    "HTTP request latency by route and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method", "code"})

	sseSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "translatehub_event_subscribers",
		Help: "Open /events streams.",
	})
)

func IncrementRatingsSubmitted(rating int) {
	ratingsSubmitted.WithLabelValues(strconv.Itoa(rating)).Inc()
}

func IncrementRatingsRejected(reason string) {
	ratingsRejected.WithLabelValues(reason).Inc()
}

func IncrementStatsRequests(granularity, outcome string) {
	statsRequests.WithLabelValues(granularity, outcome).Inc()
}

func ObserveRequest(route, method string, code int, elapsed time.Duration) {
	requestDuration.WithLabelValues(route, method, strconv.Itoa(code)).Observe(elapsed.Seconds())
}

func SetEventSubscribers(n int) {
	sseSubscribers.Set(float64(n))
}
