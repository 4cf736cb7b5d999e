// Package ledger implements the transaction ledger: immutable entries
// whose status moves one way from pending to success or failed.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
	"walletstack/internal/utils/pagination"
)

// Service is the transaction ledger contract.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*models.Transaction, error)
	SetStatus(ctx context.Context, id uint, status string) error
	ListForWallet(ctx context.Context, walletID uint, page, limit int) ([]models.Transaction, pagination.Meta, error)
}

// CreateRequest describes a new ledger entry. SenderWalletID is nil for
// deposits; Status may be pending or terminal (transfers settle
// synchronously and are written as success).
type CreateRequest struct {
	Type              string
	Amount            int64
	Status            string
	SenderWalletID    *uint
	RecipientWalletID uint
	Reference         *string
	Description       string
}

type service struct {
	repo repositories.TransactionRepository
}

// NewService creates a new ledger service.
func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("transaction repository is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txn := &models.Transaction{
		Type:              req.Type,
		Amount:            req.Amount,
		Status:            req.Status,
		SenderWalletID:    req.SenderWalletID,
		RecipientWalletID: req.RecipientWalletID,
		Reference:         req.Reference,
		Description:       req.Description,
	}
	if txn.Status == "" {
		txn.Status = models.TransactionStatusPending
	}

	if err := s.repo.Create(ctx, txn); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrDuplicateReference
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

// SetStatus transitions a transaction to a terminal status. Calling it
// again with the same status is a no-op; a different status on an
// already-terminal transaction is a conflict.
func (s *service) SetStatus(ctx context.Context, id uint, status string) error {
	err := s.repo.UpdateStatus(ctx, id, status)
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrTransactionNotPending) {
		txn, getErr := s.repo.GetByID(ctx, id)
		if getErr != nil {
			if errors.Is(getErr, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", getErr)
		}
		if txn.Status == status {
			return nil
		}
		return ErrStatusConflict
	}
	return fmt.Errorf("failed to set transaction status: %w", err)
}

// ListForWallet returns transactions where the wallet was sender or
// recipient, newest first.
func (s *service) ListForWallet(ctx context.Context, walletID uint, page, limit int) ([]models.Transaction, pagination.Meta, error) {
	page, limit = pagination.Clamp(page, limit)

	total, err := s.repo.CountByWallet(ctx, walletID)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to count transactions: %w", err)
	}

	txns, err := s.repo.ListByWallet(ctx, walletID, limit, (page-1)*limit)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txns, pagination.NewMeta(total, page, limit), nil
}
