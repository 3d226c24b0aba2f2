package models

import (
	"time"
)

// Recognized transaction type tags. The ledger treats the tag as opaque
// beyond membership in the configured set; callers may extend it.
const (
	TransactionTypePurchase = "purchase"
	TransactionTypeGiveaway = "giveaway"
	TransactionTypeTransfer = "transfer"
)

// Transaction is an immutable ledger entry recording one completed coin
// movement. Rows are only ever inserted, in the same database transaction
// as the wallet balance updates they describe.
type Transaction struct {
	ID          uint    `gorm:"primarykey"`
	Type        string  `gorm:"not null"`
	FromUserID  uint    `gorm:"not null;index"`
	ToUserID    uint    `gorm:"not null;index"`
	Amount      int64   `gorm:"not null"`
	ReferenceID *string `gorm:"uniqueIndex"` // external correlation id, e.g. a payment charge id
	Description string
	Metadata    JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time
}

// Involves reports whether the user appears on either side of the entry.
func (t *Transaction) Involves(userID uint) bool {
	return t.FromUserID == userID || t.ToUserID == userID
}
