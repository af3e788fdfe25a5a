package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRecovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpcCtxTags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/m3terscan/m3terscan-backend/internal/store"
	"github.com/m3terscan/m3terscan-backend/internal/transport"
)

type config struct {
	Addr           string   `long:"addr" env:"M3TERSCAN_API_ADDR" description:"gRPC listen address" default:":8000"`
	RestAddr       string   `long:"rest-addr" env:"M3TERSCAN_API_REST_ADDR" description:"REST listen address" default:":8001"`
	AllowedOrigins []string `long:"allowed-origin" env:"M3TERSCAN_API_ALLOWED_ORIGINS" env-delim:"," description:"CORS allowed origins" default:"*"`

	LiveSource        string        `long:"live-source" env:"M3TERSCAN_LIVE_SOURCE" description:"live data source" choice:"none" choice:"http" choice:"clickhouse" default:"none"`
	StartLive         bool          `long:"start-live" env:"M3TERSCAN_START_LIVE" description:"start on the live source instead of mock data"`
	UpstreamURL       string        `long:"upstream-url" env:"M3TERSCAN_UPSTREAM_URL" description:"M3terScan API base url for the http live source"`
	UpstreamRPS       int           `long:"upstream-rps" env:"M3TERSCAN_UPSTREAM_RPS" description:"request rate limit for the http live source, 0 disables" default:"10"`
	UpstreamTimeout   time.Duration `long:"upstream-timeout" env:"M3TERSCAN_UPSTREAM_TIMEOUT" description:"http live source request timeout" default:"15s"`
	ClickhouseDSN     string        `long:"clickhouse-dsn" env:"M3TERSCAN_CLICKHOUSE_DSN" description:"ClickHouse DSN for the clickhouse live source"`
	Timezone          string        `long:"timezone" env:"M3TERSCAN_TIMEZONE" description:"time zone block dates are rendered in" default:"UTC"`
	HeatmapYear       int           `long:"heatmap-year" env:"M3TERSCAN_HEATMAP_YEAR" description:"initially selected heatmap year, 0 means current"`
	RecentHeatmapDays int           `long:"recent-heatmap-days" env:"M3TERSCAN_RECENT_HEATMAP_DAYS" description:"days covered by the initial heatmap" default:"90"`

	DuneAPIKey  string        `long:"dune-api-key" env:"DUNE_API_KEY" description:"Dune API key; the transactions proxy is disabled without it"`
	DuneQueryID int           `long:"dune-query-id" env:"DUNE_QUERY_ID" description:"Dune query id" default:"5694238"`
	RedisAddr   string        `long:"redis-addr" env:"M3TERSCAN_REDIS_ADDR" description:"Redis address for the transactions cache"`
	RedisPass   string        `long:"redis-password" env:"M3TERSCAN_REDIS_PASSWORD" description:"Redis password"`
	RedisDB     int           `long:"redis-db" env:"M3TERSCAN_REDIS_DB" description:"Redis database"`
	RedisPrefix string        `long:"redis-prefix" env:"M3TERSCAN_REDIS_PREFIX" description:"Redis key prefix" default:"m3terscan"`
	CacheTTL    time.Duration `long:"cache-ttl" env:"M3TERSCAN_CACHE_TTL" description:"transactions cache ttl" default:"5m"`

	EthRPCURL      string `long:"eth-rpc-url" env:"M3TERSCAN_ETH_RPC_URL" description:"Ethereum JSON-RPC url; chain length is disabled without it"`
	RollupContract string `long:"rollup-contract" env:"M3TERSCAN_ROLLUP_CONTRACT" description:"rollup contract address" default:"0xAFaA8090C17bE0a94C65a9C2BDA715060d38B9B9"`

	CentrifugoAddr    string `long:"centrifugo-addr" env:"M3TERSCAN_CENTRIFUGO_ADDR" description:"Centrifugo API address; state push is disabled without it"`
	CentrifugoKey     string `long:"centrifugo-key" env:"M3TERSCAN_CENTRIFUGO_KEY" description:"Centrifugo API key"`
	CentrifugoChannel string `long:"centrifugo-channel" env:"M3TERSCAN_CENTRIFUGO_CHANNEL" description:"Centrifugo channel" default:"m3terscan"`
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
	grpcZap.ReplaceGrpcLoggerV2(logger)

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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("m3terscan api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	deps, err := newDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	st := deps.store
	defer st.Close()
	if err := st.Init(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		logger.Warn("initial live refresh failed, serving mock data", zap.Error(err))
	}

	chain := []grpc.UnaryServerInterceptor{
		grpcRecovery.UnaryServerInterceptor(),
		grpcCtxTags.UnaryServerInterceptor(),
		grpcPrometheus.UnaryServerInterceptor,
		grpcZap.UnaryServerInterceptor(logger),
	}
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpcMiddleware.ChainUnaryServer(chain...)),
	)
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	grpcPrometheus.EnableHandlingTimeHistogram()
	grpcPrometheus.Register(grpcServer)

	socket, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server stopped", zap.Error(serveErr))
		}
	}()
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	conn, err := grpc.NewClient("passthrough:///"+cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("dial gRPC health: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	gw := gwruntime.NewServeMux(gwruntime.WithHealthzEndpoint(healthpb.NewHealthClient(conn)))
	handler := transport.NewMeterHandler(st, deps.analytics, deps.rollup, logger)
	if err := handler.Register(gw); err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", gw)
	mux.Handle("/metrics", promhttp.Handler())

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	})
	s := &http.Server{
		Addr:              cfg.RestAddr,
		Handler:           corsHandler.Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server",
		zap.String("addr", cfg.RestAddr),
		zap.String("live_source", cfg.LiveSource),
		zap.Bool("mock", st.Snapshot().UseMock),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}
	return nil
}

// storeConfig starts on mock data unless a live source is configured and requested.
func storeConfig(cfg config) store.Config {
	return store.Config{
		UseMock:           cfg.LiveSource == "none" || !cfg.StartLive,
		HeatmapYear:       cfg.HeatmapYear,
		RecentHeatmapDays: cfg.RecentHeatmapDays,
	}
}
