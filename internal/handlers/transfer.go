package handlers

import (
	"walletstack/internal/services/transfer"
	"walletstack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransferHandler struct {
	transferService transfer.Service
}

func NewTransferHandler(transferService transfer.Service) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
	}
}

// Transfer moves funds from the caller's wallet to another wallet,
// addressed by wallet number. Settlement is synchronous.
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		RecipientWalletNumber string `json:"recipient_wallet_number"`
		Amount                int64  `json:"amount"`
		Description           string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.RecipientWalletNumber == "" {
		return utils.BadRequest(c, "Recipient wallet number is required")
	}
	if input.Amount <= 0 {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}

	txn, err := h.transferService.Transfer(c.Context(), claims.UserID,
		input.RecipientWalletNumber, input.Amount, input.Description)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"message":     "Transfer successful",
		"transaction": txn,
	})
}
