package syncer

import "time"

const (
	defaultBatchSize     = 100
	defaultPollInterval  = 20 * time.Second
	defaultRetryInterval = 1 * time.Second
	defaultMaxRetry      = 1 * time.Minute
)
