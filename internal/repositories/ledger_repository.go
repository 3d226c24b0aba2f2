package repositories

import (
	"context"
	"errors"

	"daswos/internal/models"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrDuplicateWallet     = errors.New("wallet already exists")
	ErrVersionConflict     = errors.New("wallet row was modified concurrently")
	ErrDuplicateReference  = errors.New("transaction reference already recorded")
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrSerializationFailure is a transaction Postgres aborted to resolve a
	// deadlock or serialization failure. Nothing was written; safe to retry.
	ErrSerializationFailure = errors.New("transaction aborted by concurrent write")
)

// LedgerRepository defines the database operations the ledger needs: wallet
// rows, immutable transaction rows, and a way to run both inside one
// commit/rollback unit.
type LedgerRepository interface {
	// Wallet operations
	CreateWallet(ctx context.Context, wallet *models.Wallet) error
	GetWalletByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	// UpdateWalletBalance writes the new balance guarded by the version the
	// wallet was read with. ErrVersionConflict means a concurrent writer got
	// there first and nothing was written.
	UpdateWalletBalance(ctx context.Context, wallet *models.Wallet, newBalance int64) error

	// Ledger entries
	CreateTransaction(ctx context.Context, entry *models.Transaction) error
	GetTransactionByReference(ctx context.Context, referenceID string) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, int64, error)

	// ExecuteInTransaction runs fn against a repository bound to a single
	// database transaction. fn returning an error rolls everything back.
	ExecuteInTransaction(ctx context.Context, fn func(LedgerRepository) error) error
}
