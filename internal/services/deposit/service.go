// Package deposit orchestrates the deposit lifecycle: initiation
// against the payment gateway's hosted checkout, webhook-driven
// settlement, and a manual verification fallback. Crediting is guarded
// by the reconciliation record's webhook-received flag, checked and set
// under a row lock inside the same database transaction as the balance
// change, so a deposit can never be credited twice.
package deposit

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
	"walletstack/internal/services/audit"
	"walletstack/internal/services/paystack"
	"walletstack/internal/services/wallet"

	"github.com/google/uuid"
)

// Service is the deposit workflow.
type Service interface {
	InitiateDeposit(ctx context.Context, userID uint, amount int64) (*InitiateResult, error)
	HandleWebhook(ctx context.Context, event paystack.WebhookEvent, signature string, rawBody []byte) error
	VerifyDepositStatus(ctx context.Context, userID uint, reference string) (*Status, error)
	ManualVerifyAndCredit(ctx context.Context, userID uint, reference string) (*Status, error)
}

// InitiateResult is returned from InitiateDeposit. Reference is the
// gateway's reference for the session.
type InitiateResult struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

// Status is the caller-facing view of a deposit.
type Status struct {
	Reference     string `json:"reference"`
	Status        string `json:"status"`
	GatewayStatus string `json:"gateway_status,omitempty"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Credited      bool   `json:"credited"`
}

// Config tunes webhook handling.
type Config struct {
	// AllowUnsignedWebhooks accepts webhook calls without a signature
	// header. Only enable behind a trusted network path; the default
	// rejects unsigned calls.
	AllowUnsignedWebhooks bool
}

type service struct {
	store   *repositories.Store
	runner  repositories.TxRunner
	gateway paystack.Gateway
	cache   wallet.CacheOperator
	audit   audit.Recorder
	config  Config
}

// NewService creates a new deposit service.
func NewService(
	store *repositories.Store,
	runner repositories.TxRunner,
	gateway paystack.Gateway,
	cache wallet.CacheOperator,
	recorder audit.Recorder,
	config Config,
) Service {
	if store == nil {
		panic("store is required")
	}
	if runner == nil {
		panic("tx runner is required")
	}
	if gateway == nil {
		panic("gateway is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	if recorder == nil {
		recorder = audit.NoopRecorder{}
	}
	return &service{
		store:   store,
		runner:  runner,
		gateway: gateway,
		cache:   cache,
		audit:   recorder,
		config:  config,
	}
}

// InitiateDeposit opens a hosted payment session and records the
// pending ledger entry plus its reconciliation record. The gateway call
// happens before the database transaction; no locks are held across it.
func (s *service) InitiateDeposit(ctx context.Context, userID uint, amount int64) (*InitiateResult, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	w, err := s.store.Wallets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if !w.IsActive {
		return nil, ErrWalletInactive
	}

	init, err := s.gateway.Initialize(ctx, paystack.InitializeRequest{
		Amount:    amount,
		Email:     user.Email,
		Currency:  w.Currency,
		Reference: fmt.Sprintf("DEP-%s", uuid.NewString()),
		Metadata: map[string]interface{}{
			"user_id":   userID,
			"wallet_id": w.ID,
		},
	})
	if err != nil {
		return nil, err
	}

	// The gateway's returned reference is authoritative, even when it
	// differs from the one we sent; both records below use it so the
	// webhook correlates.
	reference := init.Reference

	err = s.runner.Atomic(ctx, func(store *repositories.Store) error {
		txn := &models.Transaction{
			Type:              models.TransactionTypeDeposit,
			Amount:            amount,
			Status:            models.TransactionStatusPending,
			RecipientWalletID: w.ID,
			Reference:         &reference,
			Description:       "Wallet deposit via Paystack",
		}
		if err := store.Transactions.Create(ctx, txn); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return ErrDuplicateReference
			}
			return fmt.Errorf("failed to record deposit transaction: %w", err)
		}

		dep := &models.GatewayDeposit{
			TransactionID:    txn.ID,
			Reference:        reference,
			AuthorizationURL: init.AuthorizationURL,
			Amount:           amount,
			Currency:         w.Currency,
			CustomerEmail:    user.Email,
			Metadata: models.JSON{
				"user_id":   userID,
				"wallet_id": w.ID,
			},
		}
		if err := store.Deposits.Create(ctx, dep); err != nil {
			if errors.Is(err, repositories.ErrDuplicateKey) {
				return ErrDuplicateReference
			}
			return fmt.Errorf("failed to record gateway deposit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(audit.Event{
		ActorType:  models.ActorTypeUser,
		ActorID:    userID,
		Action:     audit.ActionDepositInitiated,
		EntityType: "deposit",
		EntityID:   w.ID,
		Metadata:   models.JSON{"reference": reference, "amount": amount},
	})

	return &InitiateResult{
		Reference:        reference,
		AuthorizationURL: init.AuthorizationURL,
	}, nil
}

// HandleWebhook settles a deposit from a gateway callback. The
// signature covers the exact request bytes; verification happens
// before any lookup. Event types other than charge.success are
// acknowledged without effect, as is redelivery of an already-processed
// event.
func (s *service) HandleWebhook(ctx context.Context, event paystack.WebhookEvent, signature string, rawBody []byte) error {
	if signature == "" {
		if !s.config.AllowUnsignedWebhooks {
			return ErrMissingSignature
		}
		log.Printf("accepting unsigned webhook for reference %s", event.Data.Reference)
	} else if !s.gateway.VerifyWebhookSignature(rawBody, signature) {
		return ErrInvalidSignature
	}

	s.audit.Record(audit.Event{
		ActorType:  models.ActorTypeGateway,
		Action:     audit.ActionWebhookReceived,
		EntityType: "deposit",
		Metadata:   models.JSON{"event": event.Event, "reference": event.Data.Reference},
	})

	if event.Event != paystack.EventChargeSuccess {
		return nil
	}

	credited, err := s.credit(ctx, event.Data.Reference, event.Data.Status, gatewayTxnID(event.Data.ID), signature)
	if err != nil {
		return err
	}
	if credited {
		s.audit.Record(audit.Event{
			ActorType:  models.ActorTypeGateway,
			Action:     audit.ActionWebhookProcessed,
			EntityType: "deposit",
			Metadata:   models.JSON{"reference": event.Data.Reference, "amount": event.Data.Amount},
		})
	}
	return nil
}

// VerifyDepositStatus is a read-only status check, restricted to the
// owner of the recipient wallet.
func (s *service) VerifyDepositStatus(ctx context.Context, userID uint, reference string) (*Status, error) {
	dep, txn, err := s.loadOwnedDeposit(ctx, userID, reference)
	if err != nil {
		return nil, err
	}
	return depositStatus(dep, txn), nil
}

// ManualVerifyAndCredit is the fallback when no webhook arrives: it
// asks the gateway for the transaction state by reference and, on
// success, applies the same atomic credit sequence as the webhook path.
// Racing against a late webhook is safe; whichever path locks the
// reconciliation record first credits, the other sees the flag set.
func (s *service) ManualVerifyAndCredit(ctx context.Context, userID uint, reference string) (*Status, error) {
	dep, txn, err := s.loadOwnedDeposit(ctx, userID, reference)
	if err != nil {
		return nil, err
	}
	if dep.WebhookReceived || txn.IsTerminal() {
		return depositStatus(dep, txn), nil
	}

	data, err := s.gateway.Verify(ctx, reference)
	if err != nil {
		return nil, err
	}

	switch data.Status {
	case paystack.StatusSuccess:
		if _, err := s.credit(ctx, reference, data.Status, gatewayTxnID(data.ID), ""); err != nil {
			return nil, err
		}
	case paystack.StatusFailed, paystack.StatusAbandoned:
		if err := s.markFailed(ctx, reference, data.Status); err != nil {
			return nil, err
		}
	default:
		// Still pending at the gateway; just surface its status.
	}

	dep, err = s.store.Deposits.GetByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to reload deposit: %w", err)
	}
	txn, err = s.store.Transactions.GetByID(ctx, dep.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction: %w", err)
	}
	status := depositStatus(dep, txn)
	if data.Status != paystack.StatusSuccess {
		status.GatewayStatus = data.Status
	}
	return status, nil
}

// credit applies the settlement: transaction to success, wallet balance
// incremented, reconciliation record stamped. All four mutations are
// one database transaction; the row lock on the reconciliation record
// makes concurrent webhook and manual-verify invocations mutually
// exclusive. Returns false when the deposit was already processed.
func (s *service) credit(ctx context.Context, reference, gatewayStatus, gatewayTxnID, signature string) (bool, error) {
	var (
		credited        bool
		recipientUserID uint
		walletID        uint
		amount          int64
	)

	err := s.runner.Atomic(ctx, func(store *repositories.Store) error {
		dep, err := store.Deposits.LockByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, repositories.ErrDepositNotFound) {
				return ErrDepositNotFound
			}
			return fmt.Errorf("failed to lock gateway deposit: %w", err)
		}
		if dep.WebhookReceived {
			return nil
		}

		txn, err := store.Transactions.GetByID(ctx, dep.TransactionID)
		if err != nil {
			return fmt.Errorf("failed to load deposit transaction: %w", err)
		}
		if txn.Status != models.TransactionStatusPending {
			return nil
		}

		if err := store.Transactions.UpdateStatus(ctx, txn.ID, models.TransactionStatusSuccess); err != nil {
			if errors.Is(err, repositories.ErrTransactionNotPending) {
				return nil
			}
			return fmt.Errorf("failed to mark transaction success: %w", err)
		}

		if err := store.Wallets.AdjustBalance(ctx, txn.RecipientWalletID, txn.Amount); err != nil {
			return fmt.Errorf("failed to credit wallet: %w", err)
		}

		now := time.Now().UTC()
		dep.WebhookReceived = true
		dep.WebhookProcessedAt = &now
		dep.WebhookSignature = signature
		dep.GatewayStatus = gatewayStatus
		if gatewayTxnID != "" {
			dep.GatewayTransactionID = gatewayTxnID
		}
		if err := store.Deposits.Update(ctx, dep); err != nil {
			return fmt.Errorf("failed to update gateway deposit: %w", err)
		}

		w, err := store.Wallets.GetByID(ctx, txn.RecipientWalletID)
		if err != nil {
			return fmt.Errorf("failed to load credited wallet: %w", err)
		}

		credited = true
		recipientUserID = w.UserID
		walletID = w.ID
		amount = txn.Amount
		return nil
	})
	if err != nil {
		return false, err
	}

	if credited {
		if cerr := s.cache.InvalidateWallet(ctx, recipientUserID); cerr != nil {
			log.Printf("failed to invalidate wallet cache for user %d: %v", recipientUserID, cerr)
		}
		s.audit.Record(audit.Event{
			ActorType:  models.ActorTypeGateway,
			Action:     audit.ActionDepositSucceeded,
			EntityType: "wallet",
			EntityID:   walletID,
			Metadata:   models.JSON{"reference": reference, "amount": amount},
		})
	}
	return credited, nil
}

// markFailed records a gateway-reported failure. The wallet is never
// touched; only the pending transaction and the reconciliation record
// change, atomically.
func (s *service) markFailed(ctx context.Context, reference, gatewayStatus string) error {
	var walletID uint
	err := s.runner.Atomic(ctx, func(store *repositories.Store) error {
		dep, err := store.Deposits.LockByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, repositories.ErrDepositNotFound) {
				return ErrDepositNotFound
			}
			return fmt.Errorf("failed to lock gateway deposit: %w", err)
		}
		if dep.WebhookReceived {
			return nil
		}

		if err := store.Transactions.UpdateStatus(ctx, dep.TransactionID, models.TransactionStatusFailed); err != nil {
			if errors.Is(err, repositories.ErrTransactionNotPending) {
				return nil
			}
			return fmt.Errorf("failed to mark transaction failed: %w", err)
		}

		dep.GatewayStatus = gatewayStatus
		if err := store.Deposits.Update(ctx, dep); err != nil {
			return fmt.Errorf("failed to update gateway deposit: %w", err)
		}

		txn, err := store.Transactions.GetByID(ctx, dep.TransactionID)
		if err == nil {
			walletID = txn.RecipientWalletID
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.audit.Record(audit.Event{
		ActorType:  models.ActorTypeGateway,
		Action:     audit.ActionDepositFailed,
		EntityType: "wallet",
		EntityID:   walletID,
		Metadata:   models.JSON{"reference": reference, "gateway_status": gatewayStatus},
	})
	return nil
}

// loadOwnedDeposit fetches the reconciliation record and its
// transaction, verifying the caller owns the recipient wallet.
func (s *service) loadOwnedDeposit(ctx context.Context, userID uint, reference string) (*models.GatewayDeposit, *models.Transaction, error) {
	dep, err := s.store.Deposits.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repositories.ErrDepositNotFound) {
			return nil, nil, ErrDepositNotFound
		}
		return nil, nil, fmt.Errorf("failed to load gateway deposit: %w", err)
	}

	txn, err := s.store.Transactions.GetByID(ctx, dep.TransactionID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load deposit transaction: %w", err)
	}

	w, err := s.store.Wallets.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, nil, ErrWalletNotFound
		}
		return nil, nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	if txn.RecipientWalletID != w.ID {
		return nil, nil, ErrNotWalletOwner
	}
	return dep, txn, nil
}

func depositStatus(dep *models.GatewayDeposit, txn *models.Transaction) *Status {
	return &Status{
		Reference:     dep.Reference,
		Status:        txn.Status,
		GatewayStatus: dep.GatewayStatus,
		Amount:        dep.Amount,
		Currency:      dep.Currency,
		Credited:      dep.WebhookReceived,
	}
}

func gatewayTxnID(id int64) string {
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("%d", id)
}
