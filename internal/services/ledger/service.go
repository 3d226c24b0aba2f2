package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"daswos/internal/models"
	"daswos/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	repo    repositories.LedgerRepository
	cache   Cache
	config  Config
	metrics MetricsCollector
}

// NewService creates a new ledger service
func NewService(
	repo repositories.LedgerRepository,
	cache Cache,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	// Set default configuration values if not provided
	if len(config.AllowedTypes) == 0 {
		config.AllowedTypes = []string{
			models.TransactionTypePurchase,
			models.TransactionTypeGiveaway,
			models.TransactionTypeTransfer,
		}
	}
	if config.DefaultHistoryLimit <= 0 {
		config.DefaultHistoryLimit = DefaultHistoryLimit
	}
	if config.MaxHistoryLimit <= 0 {
		config.MaxHistoryLimit = MaxHistoryLimit
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultCacheTTL
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:    repo,
		cache:   cache,
		config:  config,
		metrics: metrics,
	}
}

// Transfer moves coins between two wallets and records the ledger entry.
// Both balance writes and the insert commit or roll back as one unit; an
// error return means no state changed.
func (s *service) Transfer(ctx context.Context, req TransferRequest) (*models.Transaction, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("transfer", time.Since(start)) }()

	if req.Amount <= 0 {
		s.metrics.RecordError("transfer", "invalid_amount")
		return nil, ErrInvalidAmount
	}
	if req.FromUserID == req.ToUserID {
		s.metrics.RecordError("transfer", "self_transfer")
		return nil, ErrSelfTransfer
	}
	if !s.typeAllowed(req.Type) {
		s.metrics.RecordError("transfer", "invalid_type")
		return nil, ErrInvalidType
	}

	// A reference seen before means a retry after a timeout: return the
	// entry recorded the first time instead of moving coins twice.
	if prior, ok, err := s.replayByReference(ctx, req.ReferenceID); err != nil {
		return nil, err
	} else if ok {
		return prior, nil
	}

	entry := &models.Transaction{
		Type:        req.Type,
		FromUserID:  req.FromUserID,
		ToUserID:    req.ToUserID,
		Amount:      req.Amount,
		Description: req.Description,
		Metadata:    models.NewJSON(req.Metadata),
	}
	if req.ReferenceID != "" {
		ref := req.ReferenceID
		entry.ReferenceID = &ref
	}

	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.LedgerRepository) error {
		source, err := tx.GetWalletByUserID(ctx, req.FromUserID)
		if err != nil {
			return err
		}
		dest, err := tx.GetWalletByUserID(ctx, req.ToUserID)
		if err != nil {
			return err
		}

		if source.Balance < req.Amount {
			return ErrInsufficientBalance
		}

		if err := tx.UpdateWalletBalance(ctx, source, source.Balance-req.Amount); err != nil {
			return err
		}
		if err := tx.UpdateWalletBalance(ctx, dest, dest.Balance+req.Amount); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, entry)
	})

	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateReference) {
			// A concurrent caller committed the same reference first; that
			// transfer is already applied, so hand back its entry.
			if prior, rerr := s.repo.GetTransactionByReference(ctx, req.ReferenceID); rerr == nil {
				return prior, nil
			}
			s.metrics.RecordError("transfer", "storage_conflict")
			return nil, ErrStorageConflict
		}
		return nil, s.mapError("transfer", err)
	}

	s.invalidateWallets(ctx, req.FromUserID, req.ToUserID)
	s.metrics.RecordTransaction(req.Type, req.Amount)

	return entry, nil
}

// Credit issues system coins to a wallet, creating the wallet lazily on
// first credit. The sender on the ledger entry is the platform mint account.
func (s *service) Credit(ctx context.Context, req CreditRequest) (*models.Transaction, error) {
	start := time.Now()
	defer func() { s.metrics.RecordOperationDuration("credit", time.Since(start)) }()

	if req.Amount <= 0 {
		s.metrics.RecordError("credit", "invalid_amount")
		return nil, ErrInvalidAmount
	}
	if !s.typeAllowed(req.Type) {
		s.metrics.RecordError("credit", "invalid_type")
		return nil, ErrInvalidType
	}

	if prior, ok, err := s.replayByReference(ctx, req.ReferenceID); err != nil {
		return nil, err
	} else if ok {
		return prior, nil
	}

	reference := req.ReferenceID
	if reference == "" {
		// Mint credits always carry a correlation id for audit linking.
		reference = uuid.NewString()
	}

	entry := &models.Transaction{
		Type:        req.Type,
		FromUserID:  models.SystemUserID,
		ToUserID:    req.ToUserID,
		Amount:      req.Amount,
		ReferenceID: &reference,
		Description: req.Description,
		Metadata:    models.NewJSON(req.Metadata),
	}

	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.LedgerRepository) error {
		dest, err := tx.GetWalletByUserID(ctx, req.ToUserID)
		if errors.Is(err, repositories.ErrWalletNotFound) {
			dest = &models.Wallet{UserID: req.ToUserID}
			if err := tx.CreateWallet(ctx, dest); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if err := tx.UpdateWalletBalance(ctx, dest, dest.Balance+req.Amount); err != nil {
			return err
		}
		return tx.CreateTransaction(ctx, entry)
	})

	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateReference) {
			if prior, rerr := s.repo.GetTransactionByReference(ctx, reference); rerr == nil {
				return prior, nil
			}
			s.metrics.RecordError("credit", "storage_conflict")
			return nil, ErrStorageConflict
		}
		return nil, s.mapError("credit", err)
	}

	s.invalidateWallets(ctx, req.ToUserID)
	s.metrics.RecordTransaction(req.Type, req.Amount)

	return entry, nil
}

func (s *service) CreateWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	wallet := &models.Wallet{UserID: userID}
	if err := s.repo.CreateWallet(ctx, wallet); err != nil {
		if errors.Is(err, repositories.ErrDuplicateWallet) {
			return nil, ErrWalletExists
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	// Update cache
	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	// Try cache first
	if wallet, err := s.cache.GetWallet(ctx, userID); err == nil {
		s.metrics.RecordCacheHit("wallet")
		return wallet, nil
	}
	s.metrics.RecordCacheMiss("wallet")

	wallet, err := s.repo.GetWalletByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	// Update cache
	s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) GetBalance(ctx context.Context, userID uint) (int64, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

func (s *service) ListTransactions(ctx context.Context, userID uint, limit, offset int) ([]models.Transaction, int64, error) {
	if limit <= 0 {
		limit = s.config.DefaultHistoryLimit
	}
	if limit > s.config.MaxHistoryLimit {
		limit = s.config.MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	if _, err := s.GetWallet(ctx, userID); err != nil {
		return nil, 0, err
	}

	// Only the default first page is cached; it is what the storefront
	// wallet screen asks for.
	firstPage := offset == 0 && limit == s.config.DefaultHistoryLimit
	if firstPage {
		if transactions, total, err := s.cache.GetHistory(ctx, userID); err == nil {
			s.metrics.RecordCacheHit("history")
			return transactions, total, nil
		}
		s.metrics.RecordCacheMiss("history")
	}

	transactions, total, err := s.repo.GetUserTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get transaction history: %w", err)
	}

	if firstPage {
		if err := s.cache.SetHistory(ctx, userID, transactions, total); err != nil {
			log.Printf("Failed to cache transaction history: %v", err)
		}
	}

	return transactions, total, nil
}

// Helper methods

func (s *service) typeAllowed(txType string) bool {
	for _, t := range s.config.AllowedTypes {
		if t == txType {
			return true
		}
	}
	return false
}

// replayByReference looks up an earlier entry with the same reference id.
func (s *service) replayByReference(ctx context.Context, referenceID string) (*models.Transaction, bool, error) {
	if referenceID == "" {
		return nil, false, nil
	}
	prior, err := s.repo.GetTransactionByReference(ctx, referenceID)
	if err == nil {
		return prior, true, nil
	}
	if errors.Is(err, repositories.ErrTransactionNotFound) {
		return nil, false, nil
	}
	return nil, false, fmt.Errorf("failed to check reference id: %w", err)
}

func (s *service) invalidateWallets(ctx context.Context, userIDs ...uint) {
	for _, id := range userIDs {
		if err := s.cache.InvalidateWallet(ctx, id); err != nil {
			log.Printf("Failed to invalidate wallet cache for user %d: %v", id, err)
		}
	}
}

// mapError translates repository failures into the service error taxonomy.
func (s *service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrWalletNotFound):
		s.metrics.RecordError(op, "wallet_not_found")
		return ErrWalletNotFound
	case errors.Is(err, ErrInsufficientBalance):
		s.metrics.RecordError(op, "insufficient_balance")
		return ErrInsufficientBalance
	case errors.Is(err, repositories.ErrVersionConflict),
		errors.Is(err, repositories.ErrSerializationFailure):
		s.metrics.RecordError(op, "storage_conflict")
		return ErrStorageConflict
	case errors.Is(err, repositories.ErrDuplicateWallet):
		// Lost a race creating the wallet on first credit; the retry will
		// find the row.
		s.metrics.RecordError(op, "storage_conflict")
		return ErrStorageConflict
	default:
		s.metrics.RecordError(op, "storage")
		return fmt.Errorf("%s failed: %w", op, err)
	}
}
