// Package store holds the meter data store: block records plus the energy, stablecoin
// and heatmap views derived from them, fed by a mock or a live Source.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m3terscan/m3terscan-backend/internal/meter"
	"github.com/m3terscan/m3terscan-backend/internal/model"
	"go.uber.org/zap"
)

const defaultRecentHeatmapDays = 90

var (
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("store is closed")
	// ErrEmptyMeterID rejects a meter selection without an id.
	ErrEmptyMeterID = errors.New("meter id is required")
	// ErrNoLiveSource is returned when live data is requested but no live source is set.
	ErrNoLiveSource = errors.New("live source is not configured")
	// ErrInvalidMonth rejects a heatmap month outside 0..11.
	ErrInvalidMonth = errors.New("heatmap month must be within 0..11")
	// ErrInvalidViewMode rejects an unknown heatmap view mode.
	ErrInvalidViewMode = errors.New("unknown heatmap view mode")
	// ErrInvalidYear rejects a non-positive heatmap year.
	ErrInvalidYear = errors.New("heatmap year must be positive")
)

// Config controls the initial store state.
type Config struct {
	// UseMock selects the mock source on Init.
	UseMock bool
	// HeatmapYear is the initially selected year; zero means the current year.
	HeatmapYear int
	// RecentHeatmapDays is the span of the heatmap loaded on Init.
	RecentHeatmapDays int
}

// Option customizes a Store.
type Option func(*Store)

// WithMetrics sets the metrics collector.
func WithMetrics(m Metrics) Option {
	return func(s *Store) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithNotifier sets the change notifier.
func WithNotifier(n Notifier) Option {
	return func(s *Store) {
		s.notifier = n
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Store is the meter data store. It is safe for concurrent use.
type Store struct {
	logger   *zap.Logger
	metrics  Metrics
	notifier Notifier
	now      func() time.Time
	cfg      Config

	mock Source
	live Source

	lifecycle context.Context
	cancel    context.CancelFunc

	mu       sync.RWMutex
	state    State
	seq      map[Resource]uint64
	inflight int
	closed   bool
}

// New builds a Store. The live source may be nil, in which case the store stays in mock mode.
func New(cfg Config, mock, live Source, logger *zap.Logger, opts ...Option) (*Store, error) {
	if mock == nil {
		return nil, errors.New("mock source is required")
	}
	if !cfg.UseMock && live == nil {
		return nil, ErrNoLiveSource
	}
	if cfg.RecentHeatmapDays <= 0 {
		cfg.RecentHeatmapDays = defaultRecentHeatmapDays
	}

	lifecycle, cancel := context.WithCancel(context.Background())
	s := &Store{
		logger:    logger.Named("store"),
		metrics:   noopMetrics{},
		now:       time.Now,
		cfg:       cfg,
		mock:      mock,
		live:      live,
		lifecycle: lifecycle,
		cancel:    cancel,
		state:     emptyState(),
		seq:       make(map[Resource]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.state.UseMock = true
	s.state.HeatmapYear = cfg.HeatmapYear
	if s.state.HeatmapYear == 0 {
		s.state.HeatmapYear = s.now().Year()
	}
	return s, nil
}

// Init loads the mock baseline (seed blocks and the views derived from them) and, when
// the store is configured for live data, refreshes everything from the live source.
func (s *Store) Init(ctx context.Context) error {
	ctx, done := s.bind(ctx)
	defer done()

	blocks, err := s.mock.Blocks(ctx)
	if err != nil {
		return err
	}
	energy, err := s.mock.EnergyUsage(ctx, blocks, "")
	if err != nil {
		return err
	}
	coins, err := s.mock.Stablecoins(ctx, blocks, "")
	if err != nil {
		return err
	}
	heatmap := meter.RecentHeatmap(blocks, s.now(), s.cfg.RecentHeatmapDays, "")

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.state.Blocks = blocks
	s.state.AllHourlyEnergyUsage = energy
	s.state.AllStablecoins = coins.Global
	s.state.AllMeterStablecoins = coins.PerMeter
	s.state.AllHeatmap = heatmap
	s.mu.Unlock()

	s.logger.Info("store initialized", zap.Int("blocks", len(blocks)), zap.Bool("mock", s.cfg.UseMock))
	if s.cfg.UseMock {
		return nil
	}
	return s.SetMockMode(ctx, false)
}

// Close stops in-flight fetches and rejects further ones.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.cancel()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// bind ties ctx to the store lifecycle so Close cancels it.
func (s *Store) bind(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.lifecycle, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

// ticket is issued when a fetch starts; its result is applied only while seq is the
// latest one issued for the resource.
type ticket struct {
	resource   Resource
	seq        uint64
	source     Source
	sourceName string
	loading    bool
	blocks     []model.Block
	selected   string
	year       int
}

func (s *Store) issue(resource Resource) (ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ticket{}, ErrClosed
	}
	s.seq[resource]++

	t := ticket{
		resource:   resource,
		seq:        s.seq[resource],
		source:     s.mock,
		sourceName: sourceMock,
		blocks:     cloneSlice(s.state.Blocks),
		selected:   s.state.SelectedMeterID,
		year:       s.state.HeatmapYear,
	}
	if !s.state.UseMock {
		t.source = s.live
		t.sourceName = sourceLive
		t.loading = true
		s.inflight++
		s.state.Loading = true
	}
	s.state.Error = ""
	return t, nil
}

// settle applies the outcome of a fetch. Failures keep the previous data and are
// recorded in State.Error; outdated results are dropped.
func (s *Store) settle(ctx context.Context, t ticket, started time.Time, err error, apply func(*State)) error {
	s.metrics.ObserveFetch(t.resource, t.sourceName, err, started)

	s.mu.Lock()
	if t.loading {
		s.inflight--
		s.state.Loading = s.inflight > 0
	}
	if t.seq != s.seq[t.resource] {
		s.mu.Unlock()
		s.metrics.ObserveStale(t.resource, t.sourceName)
		s.logger.Debug("dropping outdated result",
			zap.String("resource", string(t.resource)),
			zap.Uint64("seq", t.seq),
			zap.Error(err),
		)
		return err
	}
	if err != nil {
		s.state.Error = err.Error()
	} else {
		apply(&s.state)
	}
	s.state.Revision++
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("fetch failed", zap.String("resource", string(t.resource)), zap.String("source", t.sourceName), zap.Error(err))
	}
	s.notify(ctx, t.resource, snapshot)
	return err
}

// update mutates state outside of any fetch and notifies about it.
func (s *Store) update(ctx context.Context, resource Resource, apply func(*State) error) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if err := apply(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	s.state.Revision++
	snapshot := s.state.clone()
	s.mu.Unlock()

	s.notify(ctx, resource, snapshot)
	return nil
}

// invalidate drops the results of fetches already issued for resources. Callers hold mu.
func (s *Store) invalidate(resources ...Resource) {
	for _, r := range resources {
		s.seq[r]++
	}
}

// notify runs outside mu, so concurrent changes may reach the notifier out of order.
// Receivers order them by State.Revision.
func (s *Store) notify(ctx context.Context, resource Resource, snapshot State) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, resource, snapshot)
}
