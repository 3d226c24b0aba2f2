package ledger

import "time"

// Default configuration values
const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 100
	DefaultCacheTTL     = 5 * time.Minute
)
