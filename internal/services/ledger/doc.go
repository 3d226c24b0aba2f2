/*
Package ledger implements the DasWos coin ledger: atomic balance transfers
between user wallets and an immutable record of every completed movement.

The ledger service handles:
- Transfers between user wallets (conservation of coins, no overdrafts)
- System-issued credits (coin purchases, giveaways) from the mint account
- Paginated transaction history per user
- Wallet creation and cached balance reads

Usage:

	svc := ledger.NewService(repo, cache, ledger.Config{}, metrics)

	// Move coins between two users
	entry, err := svc.Transfer(ctx, ledger.TransferRequest{
	    FromUserID: buyer,
	    ToUserID:   seller,
	    Amount:     40,
	    Type:       models.TransactionTypeTransfer,
	})

	// Issue purchased coins
	entry, err = svc.Credit(ctx, ledger.CreditRequest{
	    ToUserID:    buyer,
	    Amount:      100,
	    Type:        models.TransactionTypePurchase,
	    ReferenceID: chargeID,
	})

	// Read history, most recent first
	entries, total, err := svc.ListTransactions(ctx, buyer, 10, 0)

Atomicity:

Every Transfer and Credit runs inside a single database transaction: the
wallet balance writes and the ledger insert commit or roll back together.
Wallet rows carry a version column; an update only applies when the row
still holds the version that was read, so two concurrent debits of one
wallet cannot both commit against the same observed balance. The loser
receives ErrStorageConflict and nothing is written.

Error Handling:

Expected failures are ordinary return values, matchable with errors.Is:
- ErrInvalidAmount: amount is zero or negative
- ErrInvalidType: transaction tag outside the configured set
- ErrSelfTransfer: source and destination are the same user
- ErrWalletNotFound: a referenced wallet does not exist
- ErrInsufficientBalance: source cannot cover the amount
- ErrStorageConflict: concurrent writer won; safe to retry

Idempotency:

A request carrying a reference id already present in the ledger returns the
originally recorded entry instead of applying the movement again, so a
caller retrying after a timeout cannot double-spend.
*/
package ledger
