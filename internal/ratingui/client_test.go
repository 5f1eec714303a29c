package ratingui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/binhbb2204/Translation-Hub/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_RatingStatsEscapesGranularity(t *testing.T) {
	var rawQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"time_series":[],"rating_distribution":[],"language_pairs":[],"models":[],"insights":["x"]}`))
	}))
	defer srv.Close()

	stats, err := NewHTTPClient(srv.URL+"/", nil).RatingStats(context.Background(), "a b&c")
	require.NoError(t, err)
	assert.Equal(t, "granularity=a+b%26c", rawQuery)
	assert.JSONEq(t, `["x"]`, string(stats.Insights))
}

func TestHTTPClient_StatusErrorUsesErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Rating must be between 1 and 5"}`))
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL, nil).SubmitRating(context.Background(), models.RatingSubmission{Rating: 9})
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "Rating must be between 1 and 5", statusErr.Body)
}

func TestHTTPClient_SubmitRejectsNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>ok</html>`))
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL, nil).SubmitRating(context.Background(), models.RatingSubmission{Rating: 1})
	assert.ErrorContains(t, err, "decode submit response")
}
