package repositories

import (
	"context"

	"walletstack/internal/models"
)

// TransactionRepository owns ledger entries. UpdateStatus is a raw
// column update; the one-way transition rules live in the ledger
// service, which calls it under a transaction.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
	ListByWallet(ctx context.Context, walletID uint, limit, offset int) ([]models.Transaction, error)
	CountByWallet(ctx context.Context, walletID uint) (int64, error)
}
