package repositories

import "errors"

// Sentinel errors returned by the data access layer.
var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrDepositNotFound     = errors.New("gateway deposit not found")
	ErrAPIKeyNotFound      = errors.New("api key not found")
	ErrTransactionNotPending = errors.New("transaction is not pending")
	ErrDuplicateKey        = errors.New("duplicate key")
)
