package models

import (
	"time"

	"gorm.io/gorm"
)

// SystemUserID is the platform mint account recorded as the sender on
// system-issued coin credits (coin purchases, giveaways). It has no wallet
// row of its own; conservation applies only to transfers between real
// wallets.
const SystemUserID uint = 0

// Wallet holds a user's DasWos coin balance. Balance is a count of coins in
// the smallest platform unit and must never go negative. Version guards
// balance updates against concurrent writers: an update only applies when
// the row still carries the version the writer read.
type Wallet struct {
	ID        uint   `gorm:"primarykey"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	Balance   int64  `gorm:"not null;default:0"`
	Version   uint64 `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Wallets always start empty; coins arrive only through the ledger.
	w.Balance = 0
	w.Version = 0
	return nil
}
