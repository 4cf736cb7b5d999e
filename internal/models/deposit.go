package models

import "time"

// GatewayDeposit is the per-deposit reconciliation record, one-to-one
// with its deposit Transaction. Reference is the gateway's reference for
// the hosted payment session. WebhookReceived flips false->true exactly
// once and is the sole idempotency gate for crediting the wallet.
type GatewayDeposit struct {
	ID                   uint   `gorm:"primarykey"`
	TransactionID        uint   `gorm:"uniqueIndex;not null"`
	Reference            string `gorm:"uniqueIndex;not null"`
	GatewayTransactionID string
	AuthorizationURL     string
	GatewayStatus        string
	WebhookReceived      bool `gorm:"not null;default:false"`
	WebhookProcessedAt   *time.Time
	WebhookSignature     string
	Amount               int64  `gorm:"not null"`
	Currency             string `gorm:"not null;default:'NGN'"`
	CustomerEmail        string
	Metadata             JSON `gorm:"type:jsonb"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
