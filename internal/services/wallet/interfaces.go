package wallet

import (
	"context"
	"errors"

	"walletstack/internal/models"
)

// Service is the wallet store: ownership lookups and wallet creation.
// Balance mutations happen through the deposit and transfer workflows,
// never directly here.
type Service interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	GetByNumber(ctx context.Context, number string) (*models.Wallet, error)
	GetBalance(ctx context.Context, userID uint) (int64, error)
	CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error)
}

// CacheOperator is the wallet read cache. Implementations must treat
// failures as soft; the service falls through to the database.
type CacheOperator interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

// NoopCache misses on every read; used by the seeder and in tests.
type NoopCache struct{}

var errNoCache = errors.New("cache disabled")

func (NoopCache) GetWallet(context.Context, uint) (*models.Wallet, error) { return nil, errNoCache }
func (NoopCache) SetWallet(context.Context, *models.Wallet) error         { return nil }
func (NoopCache) InvalidateWallet(context.Context, uint) error            { return nil }
