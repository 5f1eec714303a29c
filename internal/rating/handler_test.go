package rating

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/binhbb2204/Translation-Hub/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(eventType, message string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, eventType)
}

func setupHandlerTest(t *testing.T, repo Repository) (*gin.Engine, *recordingPublisher) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pub := &recordingPublisher{}
	handler := NewHandler(newTestService(repo, baseTime), pub)

	router := gin.New()
	handler.RegisterRoutes(router)
	return router, pub
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSubmitRating_Success(t *testing.T) {
	repo := NewMemoryRepository()
	router, pub := setupHandlerTest(t, repo)

	body := `{"source_text":"Hello","translated_text":"Bonjour","source_language":"en","target_language":"fr","model_id":"m1","rating":3}`
	resp := doRequest(router, http.MethodPost, "/submit_rating", body)

	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())

	count, _ := repo.CountAll(context.Background())
	assert.Equal(t, 1, count)
	assert.Equal(t, []string{"rating_submitted"}, pub.events)
}

func TestSubmitRating_NumericString(t *testing.T) {
	router, _ := setupHandlerTest(t, NewMemoryRepository())

	resp := doRequest(router, http.MethodPost, "/submit_rating", `{"rating":" 4 "}`)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestSubmitRating_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"too high", `{"rating":6}`, "Rating must be between 1 and 5"},
		{"zero", `{"rating":0}`, "Rating must be between 1 and 5"},
		{"not a number", `{"rating":"five"}`, "Invalid rating value"},
		{"missing", `{"model_id":"m1"}`, "Invalid rating value"},
		{"bool", `{"rating":true}`, "Invalid rating value"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, pub := setupHandlerTest(t, NewMemoryRepository())
			resp := doRequest(router, http.MethodPost, "/submit_rating", tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			var out map[string]string
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
			assert.Equal(t, tt.want, out["error"])
			assert.Empty(t, pub.events)
		})
	}
}

func TestSubmitRating_MalformedJSON(t *testing.T) {
	router, _ := setupHandlerTest(t, NewMemoryRepository())
	resp := doRequest(router, http.MethodPost, "/submit_rating", `{"rating":`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSubmitRating_StorageError(t *testing.T) {
	repo := &failingRepository{MemoryRepository: NewMemoryRepository(), err: errors.New("database is locked")}
	router, pub := setupHandlerTest(t, repo)

	resp := doRequest(router, http.MethodPost, "/submit_rating", `{"rating":5}`)
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "database is locked")
	assert.Empty(t, pub.events)
}

func TestRatingStats_DefaultsToDay(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo)
	router, _ := setupHandlerTest(t, repo)

	resp := doRequest(router, http.MethodGet, "/rating_stats", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var out models.RatingStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.TimeSeries)
	assert.Len(t, out.TimeSeries[0].TimePeriod, len("2006-01-02"))
	assert.NotEmpty(t, out.Insights)
}

func TestRatingStats_Hour(t *testing.T) {
	repo := NewMemoryRepository()
	seed(t, repo)
	router, _ := setupHandlerTest(t, repo)

	resp := doRequest(router, http.MethodGet, "/rating_stats?granularity=hour", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var out models.RatingStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	require.NotEmpty(t, out.TimeSeries)
	assert.True(t, strings.HasSuffix(out.TimeSeries[0].TimePeriod, ":00:00"))
}

func TestRatingStats_EmptyEncodesArrays(t *testing.T) {
	router, _ := setupHandlerTest(t, NewMemoryRepository())

	resp := doRequest(router, http.MethodGet, "/rating_stats", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"time_series":[],"rating_distribution":[],"language_pairs":[],"models":[],"insights":["`+NoDataInsight+`"]}`, resp.Body.String())
}

func TestRatingStats_StorageError(t *testing.T) {
	repo := &failingRepository{MemoryRepository: NewMemoryRepository(), err: errors.New("no such table: ratings")}
	router, _ := setupHandlerTest(t, repo)

	resp := doRequest(router, http.MethodGet, "/rating_stats", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)

	var out models.RatingStats
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, "no such table: ratings", out.Error)
	assert.NotNil(t, out.Models)
	assert.Equal(t, []string{"Failed to load rating statistics: no such table: ratings"}, out.Insights)
}
