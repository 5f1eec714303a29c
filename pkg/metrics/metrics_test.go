package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementRatingsSubmitted(t *testing.T) {
	before := testutil.ToFloat64(ratingsSubmitted.WithLabelValues("4"))
	IncrementRatingsSubmitted(4)
	assert.Equal(t, before+1, testutil.ToFloat64(ratingsSubmitted.WithLabelValues("4")))
}

func TestMetricsEndpoint_ExposesCounters(t *testing.T) {
	IncrementStatsRequests("day", "ok")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/metrics", NewHandler().Metrics)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `translatehub_rating_stats_requests_total{granularity="day",outcome="ok"}`)
}

func TestMiddleware_UnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.GreaterOrEqual(t, testutil.CollectAndCount(requestDuration, "translatehub_http_request_duration_seconds"), 1)
}
