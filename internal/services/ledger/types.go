package ledger

import (
	"context"
	"time"

	"daswos/internal/models"
)

// TransferRequest moves coins between two user wallets.
type TransferRequest struct {
	FromUserID  uint
	ToUserID    uint
	Amount      int64
	Type        string
	ReferenceID string
	Description string
	Metadata    map[string]interface{}
}

// CreditRequest issues system coins to a user wallet (coin purchase,
// giveaway). The sender is always the platform mint account.
type CreditRequest struct {
	ToUserID    uint
	Amount      int64
	Type        string
	ReferenceID string
	Description string
	Metadata    map[string]interface{}
}

// Config holds configuration for ledger operations.
type Config struct {
	// AllowedTypes is the closed set of accepted transaction tags. Empty
	// falls back to the built-in purchase/giveaway/transfer set.
	AllowedTypes        []string
	DefaultHistoryLimit int
	MaxHistoryLimit     int
	CacheTTL            time.Duration
}

// MetricsCollector defines the interface for collecting ledger metrics.
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordTransaction(txType string, amount int64)
	RecordError(operation, errType string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
}

// Cache defines the caching operations the ledger uses around reads.
type Cache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
	GetHistory(ctx context.Context, userID uint) ([]models.Transaction, int64, error)
	SetHistory(ctx context.Context, userID uint, transactions []models.Transaction, total int64) error
}
