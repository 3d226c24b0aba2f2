package ledger

import (
	"context"

	"daswos/internal/models"
)

// Service defines the ledger service interface
type Service interface {
	// Atomic coin movements
	Transfer(ctx context.Context, req TransferRequest) (*models.Transaction, error)
	Credit(ctx context.Context, req CreditRequest) (*models.Transaction, error)

	// Wallet management
	CreateWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	GetBalance(ctx context.Context, userID uint) (int64, error)

	// History
	ListTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, int64, error)
}
