package ledger

import "errors"

// Service errors
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidType         = errors.New("invalid transaction type")
	ErrSelfTransfer        = errors.New("cannot transfer to self")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletExists        = errors.New("wallet already exists")
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrStorageConflict is transient: a concurrent writer invalidated this
	// operation's view of a wallet row. Nothing was written; the caller may
	// retry with the same parameters.
	ErrStorageConflict = errors.New("storage conflict, retry the operation")
)
