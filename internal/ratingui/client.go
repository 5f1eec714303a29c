package ratingui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/binhbb2204/Translation-Hub/pkg/models"
)

const (
	SubmitRatingPath = "/submit_rating"
	RatingStatsPath  = "/rating_stats"
)

// APIClient is the server the controller talks to.
type APIClient interface {
	SubmitRating(ctx context.Context, payload models.RatingSubmission) error
	RatingStats(ctx context.Context, granularity string) (*StatsResponse, error)
}

// HTTPClient speaks the JSON API served by cmd/api-server. It sets no timeout
// of its own; pass a configured *http.Client or a context deadline.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPClient(baseURL string, client *http.Client) *HTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  client,
	}
}

func statusError(res *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
	var errRes struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(body))
	if json.Unmarshal(body, &errRes) == nil && errRes.Error != "" {
		msg = errRes.Error
	}
	return &StatusError{StatusCode: res.StatusCode, Status: res.Status, Body: msg}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func (c *HTTPClient) SubmitRating(ctx context.Context, payload models.RatingSubmission) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode rating: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+SubmitRatingPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return statusError(res)
	}

	// The body is unused beyond proving it is JSON.
	var ack json.RawMessage
	if err := json.NewDecoder(res.Body).Decode(&ack); err != nil {
		return fmt.Errorf("decode submit response: %w", err)
	}
	return nil
}

func (c *HTTPClient) RatingStats(ctx context.Context, granularity string) (*StatsResponse, error) {
	u, err := url.Parse(c.BaseURL + RatingStatsPath)
	if err != nil {
		return nil, err
	}
	qs := u.Query()
	qs.Set("granularity", granularity)
	u.RawQuery = qs.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if !isSuccess(res.StatusCode) {
		return nil, statusError(res)
	}

	var out StatsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode rating stats: %w", err)
	}
	return &out, nil
}
