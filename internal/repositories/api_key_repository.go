package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"walletstack/internal/models"

	"gorm.io/gorm"
)

// APIKeyRepository owns service credentials.
type APIKeyRepository interface {
	Create(ctx context.Context, key *models.APIKey) error
	GetByPublicID(ctx context.Context, publicID string) (*models.APIKey, error)
	TouchLastUsed(ctx context.Context, id uint) error
}

type apiKeyRepository struct {
	db *gorm.DB
}

func NewAPIKeyRepository(db *gorm.DB) APIKeyRepository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *models.APIKey) error {
	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to create api key: %w", err)
	}
	return nil
}

func (r *apiKeyRepository) GetByPublicID(ctx context.Context, publicID string) (*models.APIKey, error) {
	var key models.APIKey
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}
	return &key, nil
}

// TouchLastUsed stamps the key's last use. Best effort; callers ignore
// the error.
func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.APIKey{}).
		Where("id = ?", id).
		Update("last_used_at", time.Now().UTC()).Error
}
