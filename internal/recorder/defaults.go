package recorder

import "time"

const (
	defaultWorkerCount = 8

	sleepDuration     = 5 * time.Second
	longSleepDuration = 1 * time.Minute

	blockBatcherCapacity      = 500
	blockBatcherFlushInterval = 1 * time.Second
	blockBatcherRPS           = 20
)
