package wallet

import domain "walletstack/internal/errors"

// Service errors
var (
	ErrWalletNotFound = domain.NotFound("WALLET_NOT_FOUND", "wallet not found")
	ErrWalletExists   = domain.Conflict("WALLET_EXISTS", "user already has a wallet")
	ErrWalletInactive = domain.InvalidOperation("WALLET_INACTIVE", "wallet is not active")
	ErrNumberExhausted = domain.Conflict("WALLET_NUMBER_EXHAUSTED",
		"could not allocate a unique wallet number")
)
