// Package cache serves repeated upstream GET requests from a shared store.
package cache

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultTTL = 5 * time.Minute

type entry struct {
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Transport is an http.RoundTripper that caches successful GET responses by URL.
// Store failures are logged and the request goes upstream.
type Transport struct {
	next    http.RoundTripper
	store   Store
	ttl     time.Duration
	metrics Metrics
	logger  *zap.Logger
}

// NewTransport wraps next; a nil next means http.DefaultTransport.
func NewTransport(next http.RoundTripper, store Store, ttl time.Duration, metrics Metrics, logger *zap.Logger) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Transport{
		next:    next,
		store:   store,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger.Named("cache"),
	}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()
	key := req.URL.String()

	raw, err := t.store.Get(ctx, key)
	switch {
	case err == nil:
		var e entry
		if err := json.Unmarshal(raw, &e); err == nil {
			t.metrics.ObserveLookup(true, nil)
			return cachedResponse(req, e), nil
		}
		t.logger.Warn("dropping unreadable cache entry", zap.String("key", key))
		t.metrics.ObserveLookup(false, nil)
	case errors.Is(err, ErrMiss):
		t.metrics.ObserveLookup(false, nil)
	default:
		t.logger.Warn("cache lookup failed", zap.String("key", key), zap.Error(err))
		t.metrics.ObserveLookup(false, err)
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		return resp, err
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	raw, err = json.Marshal(entry{ContentType: resp.Header.Get("Content-Type"), Body: body})
	if err == nil {
		err = t.store.Set(ctx, key, raw, t.ttl)
	}
	if err != nil {
		t.logger.Warn("cache store failed", zap.String("key", key), zap.Error(err))
	}
	return resp, nil
}

func cachedResponse(req *http.Request, e entry) *http.Response {
	header := make(http.Header)
	if e.ContentType != "" {
		header.Set("Content-Type", e.ContentType)
	}
	header.Set("X-Cache", "HIT")
	return &http.Response{
		Status:        "200 OK",
		StatusCode:    http.StatusOK,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}
