package repositories

import (
	"context"
	"fmt"

	"walletstack/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository appends domain events.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}
