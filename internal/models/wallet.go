package models

import "time"

// Wallet currencies
const (
	CurrencyNGN = "NGN"
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
)

// Wallet holds a user's balance in the smallest currency unit (kobo for
// NGN). One wallet per user; the wallet number is the external-facing
// account identifier and never changes after creation.
type Wallet struct {
	ID        uint   `gorm:"primarykey"`
	Number    string `gorm:"uniqueIndex;not null"`
	Balance   int64  `gorm:"not null;default:0"`
	Currency  string `gorm:"not null;default:'NGN'"`
	IsActive  bool   `gorm:"not null;default:true"`
	UserID    uint   `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
