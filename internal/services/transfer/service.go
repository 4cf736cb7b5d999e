// Package transfer implements direct wallet-to-wallet movement.
// Transfers settle synchronously: the balance check, the debit, the
// credit, and the success ledger entry are one database transaction, so
// no pending state ever exists for a transfer.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
	"walletstack/internal/services/audit"
	"walletstack/internal/services/wallet"
)

// Service is the transfer workflow.
type Service interface {
	Transfer(ctx context.Context, userID uint, recipientNumber string, amount int64, description string) (*models.Transaction, error)
}

type service struct {
	runner repositories.TxRunner
	cache  wallet.CacheOperator
	audit  audit.Recorder
}

// NewService creates a new transfer service.
func NewService(runner repositories.TxRunner, cache wallet.CacheOperator, recorder audit.Recorder) Service {
	if runner == nil {
		panic("tx runner is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if recorder == nil {
		recorder = audit.NoopRecorder{}
	}
	return &service{runner: runner, cache: cache, audit: recorder}
}

// Transfer moves amount from the caller's wallet to the wallet with the
// given number. Both wallet rows are locked for the duration of the
// transaction so concurrent transfers from the same wallet serialize
// and can never overdraw it.
func (s *service) Transfer(ctx context.Context, userID uint, recipientNumber string, amount int64, description string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var (
		txn             *models.Transaction
		senderUserID    uint
		recipientUserID uint
	)

	err := s.runner.Atomic(ctx, func(store *repositories.Store) error {
		sender, err := store.Wallets.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrWalletNotFound
			}
			return fmt.Errorf("failed to load sender wallet: %w", err)
		}

		recipient, err := store.Wallets.GetByNumber(ctx, recipientNumber)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return ErrRecipientWalletNotFound
			}
			return fmt.Errorf("failed to load recipient wallet: %w", err)
		}

		if sender.ID == recipient.ID {
			return ErrSelfTransfer
		}

		// Lock both rows in id order so two opposite transfers between
		// the same pair of wallets cannot deadlock. The balance check
		// below uses the locked row, not the earlier unlocked read.
		first, second := sender.ID, recipient.ID
		if first > second {
			first, second = second, first
		}
		for _, id := range []uint{first, second} {
			locked, err := store.Wallets.LockByID(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to lock wallet: %w", err)
			}
			if locked.ID == sender.ID {
				sender = locked
			} else {
				recipient = locked
			}
		}

		if !sender.IsActive || !recipient.IsActive {
			return ErrWalletInactive
		}
		if sender.Balance < amount {
			return ErrInsufficientBalance
		}

		senderID := sender.ID
		txn = &models.Transaction{
			Type:              models.TransactionTypeTransfer,
			Amount:            amount,
			Status:            models.TransactionStatusSuccess,
			SenderWalletID:    &senderID,
			RecipientWalletID: recipient.ID,
			Description:       description,
		}
		if err := store.Transactions.Create(ctx, txn); err != nil {
			return fmt.Errorf("failed to record transfer: %w", err)
		}

		if err := store.Wallets.AdjustBalance(ctx, sender.ID, -amount); err != nil {
			return fmt.Errorf("failed to debit sender: %w", err)
		}
		if err := store.Wallets.AdjustBalance(ctx, recipient.ID, amount); err != nil {
			return fmt.Errorf("failed to credit recipient: %w", err)
		}

		senderUserID = sender.UserID
		recipientUserID = recipient.UserID
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, uid := range []uint{senderUserID, recipientUserID} {
		if cerr := s.cache.InvalidateWallet(ctx, uid); cerr != nil {
			log.Printf("failed to invalidate wallet cache for user %d: %v", uid, cerr)
		}
	}

	s.audit.Record(audit.Event{
		ActorType:  models.ActorTypeUser,
		ActorID:    userID,
		Action:     audit.ActionTransferCreated,
		EntityType: "transaction",
		EntityID:   txn.ID,
		Metadata: models.JSON{
			"amount":           amount,
			"recipient_number": recipientNumber,
		},
	})

	return txn, nil
}
