package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/m3terscan/m3terscan-backend/internal/broadcast"
	"github.com/m3terscan/m3terscan-backend/internal/cache"
	"github.com/m3terscan/m3terscan-backend/internal/dune"
	"github.com/m3terscan/m3terscan-backend/internal/metrics"
	"github.com/m3terscan/m3terscan-backend/internal/repository/clickhouse"
	"github.com/m3terscan/m3terscan-backend/internal/rollup"
	"github.com/m3terscan/m3terscan-backend/internal/source/httpapi"
	"github.com/m3terscan/m3terscan-backend/internal/source/mock"
	"github.com/m3terscan/m3terscan-backend/internal/store"
	"github.com/m3terscan/m3terscan-backend/internal/transport"
)

type dependencies struct {
	store     *store.Store
	analytics transport.Analytics
	rollup    transport.Rollup
	closers   []io.Closer
	logger    *zap.Logger
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newDependencies(ctx context.Context, cfg config, logger *zap.Logger) (*dependencies, error) {
	d := &dependencies{logger: logger}
	if err := d.init(ctx, cfg); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *dependencies) init(ctx context.Context, cfg config) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	live, err := d.liveSource(cfg, loc)
	if err != nil {
		return err
	}

	opts := []store.Option{store.WithMetrics(metrics.NewStore())}
	if cfg.CentrifugoAddr != "" {
		notifier, err := broadcast.NewCentrifugo(broadcast.Config{
			Addr:    cfg.CentrifugoAddr,
			Key:     cfg.CentrifugoKey,
			Channel: cfg.CentrifugoChannel,
		}, metrics.NewAPIClient("centrifugo"), d.logger)
		if err != nil {
			return fmt.Errorf("init broadcast: %w", err)
		}
		opts = append(opts, store.WithNotifier(notifier))
	}

	d.store, err = store.New(storeConfig(cfg), mock.New(), live, d.logger, opts...)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}

	if cfg.DuneAPIKey != "" {
		if d.analytics, err = d.duneClient(ctx, cfg); err != nil {
			return err
		}
	}

	if cfg.EthRPCURL != "" {
		client, eth, err := rollup.Dial(ctx, cfg.EthRPCURL, cfg.RollupContract, metrics.NewAPIClient("rollup"))
		if err != nil {
			return fmt.Errorf("init rollup client: %w", err)
		}
		d.closers = append(d.closers, closerFunc(func() error {
			eth.Close()
			return nil
		}))
		d.rollup = client
	}
	return nil
}

func (d *dependencies) liveSource(cfg config, loc *time.Location) (store.Source, error) {
	switch cfg.LiveSource {
	case "http":
		limiter := ratelimit.NewUnlimited()
		if cfg.UpstreamRPS > 0 {
			limiter = ratelimit.New(cfg.UpstreamRPS)
		}
		src, err := httpapi.New(httpapi.Config{
			BaseURL:  cfg.UpstreamURL,
			Client:   &http.Client{Timeout: cfg.UpstreamTimeout},
			Location: loc,
			Limiter:  limiter,
		}, metrics.NewAPIClient("m3terscan"))
		if err != nil {
			return nil, fmt.Errorf("init http source: %w", err)
		}
		return src, nil
	case "clickhouse":
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(), clickhouse.WithLocation(loc))
		if err != nil {
			return nil, fmt.Errorf("init clickhouse source: %w", err)
		}
		d.closers = append(d.closers, repo)
		return repo, nil
	default:
		return nil, nil
	}
}

func (d *dependencies) duneClient(ctx context.Context, cfg config) (*dune.Client, error) {
	httpClient := &http.Client{Timeout: cfg.UpstreamTimeout}
	if cfg.RedisAddr != "" {
		redisStore, err := cache.NewRedisStore(ctx, cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			return nil, fmt.Errorf("init redis cache: %w", err)
		}
		d.closers = append(d.closers, redisStore)
		httpClient.Transport = cache.NewTransport(nil, redisStore, cfg.CacheTTL, metrics.NewCache("dune"), d.logger)
	}

	client, err := dune.NewClient(dune.Config{
		APIKey:  cfg.DuneAPIKey,
		QueryID: cfg.DuneQueryID,
		Client:  httpClient,
	}, metrics.NewAPIClient("dune"))
	if err != nil {
		return nil, fmt.Errorf("init dune client: %w", err)
	}
	return client, nil
}

// Close releases every opened connection, newest first.
func (d *dependencies) Close() {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i].Close())
	}
	d.closers = nil
	if err := errors.Join(errs...); err != nil {
		d.logger.Warn("failed to release dependencies", zap.Error(err))
	}
}
