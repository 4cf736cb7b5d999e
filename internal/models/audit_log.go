package models

import "time"

// Audit actor types
const (
	ActorTypeUser    = "user"
	ActorTypeService = "service"
	ActorTypeGateway = "gateway"
)

// AuditLog records a domain event (deposit initiated, transfer succeeded,
// webhook processed, ...). Writes are fire-and-forget from the workflows'
// perspective.
type AuditLog struct {
	ID         uint   `gorm:"primarykey"`
	ActorType  string `gorm:"not null"`
	ActorID    uint
	Action     string `gorm:"index;not null"`
	EntityType string `gorm:"not null"`
	EntityID   uint
	Metadata   JSON `gorm:"type:jsonb"`
	CreatedAt  time.Time
}
