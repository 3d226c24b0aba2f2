package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"daswos/internal/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// WalletCache keeps wallet rows and first-page transaction history in Redis
// so reads skip the database. Entries are JSON-encoded and invalidated after
// every balance mutation.
type WalletCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWalletCache(client *redis.Client, defaultTTL time.Duration) *WalletCache {
	return &WalletCache{
		client: client,
		ttl:    defaultTTL,
	}
}

func walletKey(userID uint) string {
	return fmt.Sprintf("wallet:%d", userID)
}

func historyKey(userID uint) string {
	return fmt.Sprintf("wallet:history:%d", userID)
}

func (c *WalletCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	val, err := c.client.Get(ctx, walletKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read wallet cache: %w", err)
	}

	var wallet models.Wallet
	if err := json.Unmarshal(val, &wallet); err != nil {
		return nil, fmt.Errorf("failed to decode cached wallet: %w", err)
	}
	return &wallet, nil
}

func (c *WalletCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to encode wallet: %w", err)
	}
	return c.client.Set(ctx, walletKey(wallet.UserID), data, c.ttl).Err()
}

func (c *WalletCache) InvalidateWallet(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, walletKey(userID), historyKey(userID)).Err()
}

// cachedHistory bundles the page with its total so pagination metadata
// survives the round trip.
type cachedHistory struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
}

func (c *WalletCache) GetHistory(ctx context.Context, userID uint) ([]models.Transaction, int64, error) {
	val, err := c.client.Get(ctx, historyKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, ErrCacheMiss
		}
		return nil, 0, fmt.Errorf("failed to read history cache: %w", err)
	}

	var page cachedHistory
	if err := json.Unmarshal(val, &page); err != nil {
		return nil, 0, fmt.Errorf("failed to decode cached history: %w", err)
	}
	return page.Transactions, page.Total, nil
}

func (c *WalletCache) SetHistory(ctx context.Context, userID uint, transactions []models.Transaction, total int64) error {
	data, err := json.Marshal(cachedHistory{Transactions: transactions, Total: total})
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return c.client.Set(ctx, historyKey(userID), data, c.ttl).Err()
}

func (c *WalletCache) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (c *WalletCache) FlushAll(ctx context.Context) error {
	return c.client.FlushAll(ctx).Err()
}

func (c *WalletCache) Close() error {
	return c.client.Close()
}
