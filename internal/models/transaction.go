package models

import "time"

// Transaction types
const (
	TransactionTypeDeposit  = "deposit"
	TransactionTypeTransfer = "transfer"
)

// Transaction statuses
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction is an immutable ledger entry. Amounts are in the smallest
// currency unit. SenderWalletID is nil for deposits. Status moves
// pending -> success|failed and never leaves a terminal state.
type Transaction struct {
	ID                uint   `gorm:"primarykey"`
	Type              string `gorm:"not null"`
	Amount            int64  `gorm:"not null"`
	Status            string `gorm:"not null;default:'pending'"`
	Reference         *string `gorm:"uniqueIndex"`
	SenderWalletID    *uint   `gorm:"index"`
	RecipientWalletID uint    `gorm:"index;not null"`
	Description       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsTerminal reports whether the transaction status can no longer change.
func (t *Transaction) IsTerminal() bool {
	return t.Status == TransactionStatusSuccess || t.Status == TransactionStatusFailed
}
