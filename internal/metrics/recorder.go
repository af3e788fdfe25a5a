package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recorderFetchBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "m3terscan",
		Subsystem: "block_recorder",
		Name:      "fetch_blocks_total",
		Help:      "Count of attempts to fetch new blocks.",
	}, []string{"status"})

	recorderFetchBlocksDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "m3terscan",
		Subsystem: "block_recorder",
		Name:      "fetch_blocks_duration_seconds",
		Help:      "Duration of fetching new blocks.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	recorderProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "m3terscan",
		Subsystem: "block_recorder",
		Name:      "process_batch_total",
		Help:      "Count of block batches recorded.",
	}, []string{"status"})

	recorderProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "m3terscan",
		Subsystem: "block_recorder",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of recording a block batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	recorderProcessBatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "m3terscan",
		Subsystem: "block_recorder",
		Name:      "process_batch_size",
		Help:      "Number of blocks recorded per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})

	recorderSyncMeterTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "m3terscan",
		Subsystem: "block_recorder",
		Name:      "sync_meter_total",
		Help:      "Count of per-meter energy and stablecoin syncs.",
	}, []string{"status"})
)

// Recorder tracks metrics for the block recorder loop.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// ObserveFetchBlocks records a fetch attempt outcome and duration.
func (m Recorder) ObserveFetchBlocks(err error, started time.Time) {
	s := status(err)
	recorderFetchBlocksTotal.WithLabelValues(s).Inc()
	recorderFetchBlocksDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records the persistence of a batch of new blocks.
func (m Recorder) ObserveProcessBatch(err error, blocks int, started time.Time) {
	s := status(err)
	recorderProcessBatchTotal.WithLabelValues(s).Inc()
	recorderProcessBatchDuration.WithLabelValues(s).Observe(time.Since(started).Seconds())
	recorderProcessBatchSize.Observe(float64(blocks))
}

// ObserveSyncMeter records one meter sync.
func (m Recorder) ObserveSyncMeter(err error) {
	recorderSyncMeterTotal.WithLabelValues(status(err)).Inc()
}
