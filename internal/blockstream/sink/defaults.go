package sink

import "time"

const (
	defaultFlushSize     = 100
	defaultFlushInterval = time.Second
	defaultRetries       = 3
	defaultBackoff       = 500 * time.Millisecond

	itemFlushThreshold = 10_000
)
