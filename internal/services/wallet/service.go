// Package wallet implements the wallet store: one wallet per user,
// integer balances in the smallest currency unit, immutable unique
// wallet numbers.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"log"

	"walletstack/internal/models"
	"walletstack/internal/repositories"
)

// maxNumberAttempts bounds the collision-retry loop on the unique
// wallet number column.
const maxNumberAttempts = 5

type service struct {
	repo  repositories.WalletRepository
	cache CacheOperator
}

// NewService creates a new wallet service.
func NewService(repo repositories.WalletRepository, cache CacheOperator) Service {
	if repo == nil {
		panic("wallet repository is required")
	}
	if cache == nil {
		panic("cache is required")
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if cached, err := s.cache.GetWallet(ctx, userID); err == nil {
		return cached, nil
	}

	wallet, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	if err := s.cache.SetWallet(ctx, wallet); err != nil {
		log.Printf("failed to cache wallet for user %d: %v", userID, err)
	}
	return wallet, nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (*models.Wallet, error) {
	wallet, err := s.repo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet by number: %w", err)
	}
	return wallet, nil
}

func (s *service) GetBalance(ctx context.Context, userID uint) (int64, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// CreateWallet provisions the user's single wallet. The random wallet
// number can collide with an existing row, so creation retries with a
// fresh draw until the unique index accepts it.
func (s *service) CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error) {
	if currency == "" {
		currency = models.CurrencyNGN
	}

	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrWalletExists
	} else if !errors.Is(err, repositories.ErrWalletNotFound) {
		return nil, fmt.Errorf("failed to check existing wallet: %w", err)
	}

	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		wallet := &models.Wallet{
			Number:   generateWalletNumber(),
			Balance:  0,
			Currency: currency,
			IsActive: true,
			UserID:   userID,
		}

		err := s.repo.Create(ctx, wallet)
		if err == nil {
			if cerr := s.cache.SetWallet(ctx, wallet); cerr != nil {
				log.Printf("failed to cache wallet for user %d: %v", userID, cerr)
			}
			return wallet, nil
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			// Either a number collision (retry with a new draw) or a
			// concurrent wallet for the same user (retries keep failing
			// until the loop gives up).
			continue
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	if _, err := s.repo.GetByUserID(ctx, userID); err == nil {
		return nil, ErrWalletExists
	}
	return nil, ErrNumberExhausted
}
