package handlers

import (
	"walletstack/internal/services/ledger"
	"walletstack/internal/services/wallet"
	"walletstack/internal/utils"
	"walletstack/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	walletService wallet.Service
	ledgerService ledger.Service
}

func NewTransactionHandler(walletService wallet.Service, ledgerService ledger.Service) *TransactionHandler {
	return &TransactionHandler{
		walletService: walletService,
		ledgerService: ledgerService,
	}
}

// ListTransactions returns the caller's transaction history, newest first.
// Transfers where the caller is sender or recipient appear once each.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return utils.DomainError(c, err)
	}

	page, limit := pagination.ParseFromRequest(c)

	txns, meta, err := h.ledgerService.ListForWallet(c.Context(), w.ID, page, limit)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"transactions": txns,
		"meta":         meta,
	})
}
