package ledger

import domain "walletstack/internal/errors"

// Service errors
var (
	ErrTransactionNotFound = domain.NotFound("TRANSACTION_NOT_FOUND", "transaction not found")
	ErrDuplicateReference  = domain.Conflict("DUPLICATE_REFERENCE", "transaction reference already exists")
	ErrStatusConflict      = domain.InvalidOperation("STATUS_CONFLICT",
		"transaction already settled with a different status")
	ErrInvalidAmount = domain.InvalidOperation("INVALID_AMOUNT", "amount must be greater than zero")
)
