package transfer

import domain "walletstack/internal/errors"

// Service errors
var (
	ErrWalletNotFound          = domain.NotFound("WALLET_NOT_FOUND", "wallet not found")
	ErrRecipientWalletNotFound = domain.NotFound("RECIPIENT_WALLET_NOT_FOUND", "recipient wallet not found")
	ErrInsufficientBalance     = domain.InvalidOperation("INSUFFICIENT_BALANCE", "insufficient wallet balance")
	ErrSelfTransfer            = domain.InvalidOperation("SELF_TRANSFER", "cannot transfer to your own wallet")
	ErrInvalidAmount           = domain.InvalidOperation("INVALID_AMOUNT", "amount must be greater than zero")
	ErrWalletInactive          = domain.InvalidOperation("WALLET_INACTIVE", "wallet is not active")
)
