// Package httpapi reads meter data from the M3terScan REST API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/model"
	"go.uber.org/ratelimit"
)

const (
	resourceBlocks      = "blocks"
	resourceEnergyUsage = "energy-usage"
	resourceStablecoins = "stablecoins"
	resourceHeatmap     = "heatmap"
)

// Config configures a Source.
type Config struct {
	// BaseURL is the API root, e.g. http://localhost:3000/api.
	BaseURL string
	// Client defaults to http.DefaultClient.
	Client *http.Client
	// Location renders block timestamps; defaults to UTC.
	Location *time.Location
	// Limiter paces outgoing requests; defaults to unlimited.
	Limiter ratelimit.Limiter
}

// Source fetches blocks and the derived views from the API. The block list handed in by
// the store is ignored; every view is computed server side.
type Source struct {
	base    *url.URL
	client  *http.Client
	loc     *time.Location
	limiter ratelimit.Limiter
	metrics Metrics
}

// New validates cfg and builds a Source.
func New(cfg Config, metrics Metrics) (*Source, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if metrics == nil {
		return nil, errors.New("metrics is required")
	}

	s := &Source{
		base:    base,
		client:  cfg.Client,
		loc:     cfg.Location,
		limiter: cfg.Limiter,
		metrics: metrics,
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.limiter == nil {
		s.limiter = ratelimit.NewUnlimited()
	}
	return s, nil
}

// Blocks fetches GET /blocks.
func (s *Source) Blocks(ctx context.Context) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(resourceBlocks, err, started)
	}()

	var dto []blockDTO
	if err = s.get(ctx, resourceBlocks, nil, &dto); err != nil {
		return nil, err
	}
	return toBlocks(dto, s.loc), nil
}

// EnergyUsage fetches GET /energy-usage, scoped to meterID when set.
func (s *Source) EnergyUsage(ctx context.Context, _ []model.Block, meterID string) (rows []model.HourlyEnergyUsage, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(resourceEnergyUsage, err, started)
	}()

	var dto []energyUsageDTO
	if err = s.get(ctx, resourceEnergyUsage, meterQuery(meterID), &dto); err != nil {
		return nil, err
	}
	return toEnergyUsage(dto), nil
}

// Stablecoins fetches GET /stablecoins, scoped to meterID when set.
func (s *Source) Stablecoins(ctx context.Context, _ []model.Block, meterID string) (set model.StablecoinSet, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(resourceStablecoins, err, started)
	}()

	var dto stablecoinsDTO
	if err = s.get(ctx, resourceStablecoins, meterQuery(meterID), &dto); err != nil {
		return model.StablecoinSet{}, err
	}
	return toStablecoinSet(dto), nil
}

// Heatmap fetches GET /heatmap for year, scoped to meterID when set.
func (s *Source) Heatmap(ctx context.Context, _ []model.Block, year int, meterID string) (days []model.HeatmapDay, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe(resourceHeatmap, err, started)
	}()

	query := meterQuery(meterID)
	query.Set("year", strconv.Itoa(year))

	var dto []heatmapDayDTO
	if err = s.get(ctx, resourceHeatmap, query, &dto); err != nil {
		return nil, err
	}
	return toHeatmap(dto), nil
}

func (s *Source) get(ctx context.Context, resource string, query url.Values, dest any) error {
	u := s.base.JoinPath(resource)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build %s request: %w", resource, err)
	}
	req.Header.Set("Accept", "application/json")

	s.limiter.Take()
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("fetch %s: %s", resource, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode %s: %w", resource, err)
	}
	return nil
}

func meterQuery(meterID string) url.Values {
	query := url.Values{}
	if meterID != "" {
		query.Set("meterId", meterID)
	}
	return query
}
