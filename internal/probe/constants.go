package probe

import "time"

// HTTP status code constants.
const (
	StatusOK = 200
)

// Worker configuration constants.
const (
	WorkerChannelMultiplier = 2
)

// Runner configuration constants.
const (
	// SettleDelay gives the usage recorders time to drain the outcome feed
	// before the probe reads /stats.
	SettleDelay          = 3 * time.Second
	PercentageMultiplier = 100
)
