package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/m3terscan/m3terscan-backend/internal/metrics"
	"github.com/m3terscan/m3terscan-backend/internal/recorder"
	"github.com/m3terscan/m3terscan-backend/internal/repository/clickhouse"
	"github.com/m3terscan/m3terscan-backend/internal/source/httpapi"
)

type config struct {
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"BLOCK_RECORDER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	UpstreamURL       string        `long:"upstream-url" env:"BLOCK_RECORDER_UPSTREAM_URL" description:"M3terScan API base url" required:"true"`
	UpstreamRPS       int           `long:"upstream-rps" env:"BLOCK_RECORDER_UPSTREAM_RPS" description:"upstream request rate limit, 0 disables" default:"10"`
	UpstreamTimeout   time.Duration `long:"upstream-timeout" env:"BLOCK_RECORDER_UPSTREAM_TIMEOUT" description:"upstream request timeout" default:"30s"`
	Timezone          string        `long:"timezone" env:"BLOCK_RECORDER_TIMEZONE" description:"time zone block dates are rendered in" default:"UTC"`
	WorkerCount       int           `long:"worker-count" env:"BLOCK_RECORDER_WORKER_COUNT" description:"meters synced concurrently" default:"8"`
	SleepDuration     time.Duration `long:"sleep" env:"BLOCK_RECORDER_SLEEP" description:"pause between batches and after errors" default:"5s"`
	LongSleepDuration time.Duration `long:"long-sleep" env:"BLOCK_RECORDER_LONG_SLEEP" description:"pause when no new blocks were found" default:"1m"`
	BatchSize         int           `long:"batch-size" env:"BLOCK_RECORDER_BATCH_SIZE" description:"blocks per insert" default:"500"`
	BatchRPS          int           `long:"batch-rps" env:"BLOCK_RECORDER_BATCH_RPS" description:"inserts per second" default:"20"`
	MetricsAddr       string        `long:"metrics-addr" env:"BLOCK_RECORDER_METRICS_ADDR" description:"Prometheus metrics listen address" default:":9100"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("failed to load .env", zap.Error(err))
	}

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("block recorder failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository(), clickhouse.WithLocation(loc))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("failed to close repository", zap.Error(err))
		}
	}()

	limiter := ratelimit.NewUnlimited()
	if cfg.UpstreamRPS > 0 {
		limiter = ratelimit.New(cfg.UpstreamRPS)
	}
	source, err := httpapi.New(httpapi.Config{
		BaseURL:  cfg.UpstreamURL,
		Client:   &http.Client{Timeout: cfg.UpstreamTimeout},
		Location: loc,
		Limiter:  limiter,
	}, metrics.NewAPIClient("m3terscan"))
	if err != nil {
		return fmt.Errorf("init upstream source: %w", err)
	}

	svc, err := recorder.NewService(recorder.Config{
		WorkerCount:       cfg.WorkerCount,
		SleepDuration:     cfg.SleepDuration,
		LongSleepDuration: cfg.LongSleepDuration,
		BatchSize:         cfg.BatchSize,
		BatchRPS:          cfg.BatchRPS,
	}, source, repo, metrics.NewRecorder(), logger)
	if err != nil {
		return err
	}

	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting metrics server", zap.String("addr", cfg.MetricsAddr))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown metrics server", zap.Error(err))
		}
	}()

	return svc.Run(ctx)
}
