package repositories

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories so a workflow can address them through
// one handle. NewStore on a transaction-scoped *gorm.DB yields a Store
// whose writes all commit or roll back together.
type Store struct {
	Users        UserRepository
	Wallets      WalletRepository
	Transactions TransactionRepository
	Deposits     GatewayDepositRepository
	APIKeys      APIKeyRepository
	AuditLogs    AuditLogRepository
}

// NewStore builds a Store with GORM-backed repositories.
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Users:        NewUserRepository(db),
		Wallets:      NewWalletRepository(db),
		Transactions: NewTransactionRepository(db),
		Deposits:     NewGatewayDepositRepository(db),
		APIKeys:      NewAPIKeyRepository(db),
		AuditLogs:    NewAuditLogRepository(db),
	}
}

// TxRunner executes a function inside a single database transaction.
// Every workflow step that mutates more than one record goes through
// Atomic so partial application is impossible.
type TxRunner interface {
	Atomic(ctx context.Context, fn func(s *Store) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner creates a TxRunner backed by GORM transactions.
func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) Atomic(ctx context.Context, fn func(s *Store) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
