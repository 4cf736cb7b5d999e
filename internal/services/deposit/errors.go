package deposit

import domain "walletstack/internal/errors"

// Service errors
var (
	ErrUserNotFound       = domain.NotFound("USER_NOT_FOUND", "user not found")
	ErrWalletNotFound     = domain.NotFound("WALLET_NOT_FOUND", "wallet not found")
	ErrDepositNotFound    = domain.NotFound("DEPOSIT_NOT_FOUND", "no deposit found for this reference")
	ErrWalletInactive     = domain.InvalidOperation("WALLET_INACTIVE", "wallet is not active")
	ErrInvalidAmount      = domain.InvalidOperation("INVALID_AMOUNT", "amount must be greater than zero")
	ErrNotWalletOwner     = domain.Forbidden("NOT_WALLET_OWNER", "deposit does not belong to this wallet")
	ErrInvalidSignature   = domain.Unauthorized("INVALID_SIGNATURE", "webhook signature verification failed")
	ErrMissingSignature   = domain.Unauthorized("MISSING_SIGNATURE", "webhook signature is required")
	ErrDuplicateReference = domain.Conflict("DUPLICATE_REFERENCE", "gateway reference already recorded")
)
