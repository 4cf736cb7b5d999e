package repositories

import (
	"context"

	"walletstack/internal/models"
)

// GatewayDepositRepository owns deposit reconciliation records.
// LockByReference takes a row-level lock on the record so the webhook
// and manual-verify credit paths are mutually exclusive per reference;
// it is only meaningful inside TxRunner.Atomic.
type GatewayDepositRepository interface {
	Create(ctx context.Context, dep *models.GatewayDeposit) error
	GetByReference(ctx context.Context, reference string) (*models.GatewayDeposit, error)
	LockByReference(ctx context.Context, reference string) (*models.GatewayDeposit, error)
	Update(ctx context.Context, dep *models.GatewayDeposit) error
}
