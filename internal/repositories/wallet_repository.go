package repositories

import (
	"context"

	"walletstack/internal/models"
)

// WalletRepository owns wallet persistence. LockByID and LockByUserID
// take a row-level lock and are only meaningful inside TxRunner.Atomic.
// AdjustBalance applies a relative balance change and does not validate
// non-negativity; callers pre-check sufficiency under the same lock.
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByID(ctx context.Context, id uint) (*models.Wallet, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	GetByNumber(ctx context.Context, number string) (*models.Wallet, error)
	LockByID(ctx context.Context, id uint) (*models.Wallet, error)
	LockByUserID(ctx context.Context, userID uint) (*models.Wallet, error)
	AdjustBalance(ctx context.Context, id uint, delta int64) error
}
