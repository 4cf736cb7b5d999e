package repositories

import (
	"context"
	"errors"
	"fmt"

	"walletstack/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gatewayDepositRepository struct {
	db *gorm.DB
}

func NewGatewayDepositRepository(db *gorm.DB) GatewayDepositRepository {
	return &gatewayDepositRepository{db: db}
}

func (r *gatewayDepositRepository) Create(ctx context.Context, dep *models.GatewayDeposit) error {
	if err := r.db.WithContext(ctx).Create(dep).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create gateway deposit: %w", err)
	}
	return nil
}

func (r *gatewayDepositRepository) GetByReference(ctx context.Context, reference string) (*models.GatewayDeposit, error) {
	var dep models.GatewayDeposit
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&dep).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, fmt.Errorf("failed to get gateway deposit: %w", err)
	}
	return &dep, nil
}

func (r *gatewayDepositRepository) LockByReference(ctx context.Context, reference string) (*models.GatewayDeposit, error) {
	var dep models.GatewayDeposit
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("reference = ?", reference).
		First(&dep).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepositNotFound
		}
		return nil, fmt.Errorf("failed to lock gateway deposit: %w", err)
	}
	return &dep, nil
}

func (r *gatewayDepositRepository) Update(ctx context.Context, dep *models.GatewayDeposit) error {
	if err := r.db.WithContext(ctx).Save(dep).Error; err != nil {
		return fmt.Errorf("failed to update gateway deposit: %w", err)
	}
	return nil
}
