// Package dune fetches saved query results from the Dune analytics API.
package dune

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	DefaultBaseURL = "https://api.dune.com/api/v1"
	DefaultQueryID = 5694238
	DefaultLimit   = 1000

	apiKeyHeader = "X-Dune-API-Key"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics records upstream calls.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Config describes the query to read.
type Config struct {
	BaseURL string
	APIKey  string
	QueryID int
	Limit   int
	// Client defaults to http.DefaultClient; wrap its transport to cache responses.
	Client *http.Client
}

// Client reads the latest results of one saved query.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
	metrics  Metrics
}

// NewClient validates cfg and fills in defaults.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	if metrics == nil {
		return nil, errors.New("dune metrics is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.QueryID <= 0 {
		cfg.QueryID = DefaultQueryID
	}
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse dune base url: %w", err)
	}
	u = u.JoinPath("query", strconv.Itoa(cfg.QueryID), "results")
	u.RawQuery = url.Values{"limit": {strconv.Itoa(cfg.Limit)}}.Encode()

	return &Client{
		endpoint: u.String(),
		apiKey:   cfg.APIKey,
		client:   cfg.Client,
		metrics:  metrics,
	}, nil
}

// QueryResults returns the response body untouched. Non-2xx answers are errors.
func (c *Client) QueryResults(ctx context.Context) (res json.RawMessage, err error) {
	defer func(started time.Time) {
		c.metrics.Observe("query_results", err, started)
	}(time.Now())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch query results: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read query results: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch query results: %s", resp.Status)
	}
	if !json.Valid(body) {
		return nil, errors.New("decode query results: invalid json")
	}
	return body, nil
}
