package handlers

import (
	"walletstack/internal/models"
	"walletstack/internal/services/wallet"
	"walletstack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// extractClaims is a helper to pull the authenticated actor off the context.
func extractClaims(c *fiber.Ctx) (*models.ActorClaims, error) {
	claims, ok := c.Locals("claims").(*models.ActorClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	w, err := h.walletService.GetWallet(c.Context(), claims.UserID)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"wallet": w,
	})
}

func (h *WalletHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	balance, err := h.walletService.GetBalance(c.Context(), claims.UserID)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"balance": balance,
	})
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&input); err != nil && len(c.Body()) > 0 {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Currency == "" {
		input.Currency = models.CurrencyNGN
	}

	w, err := h.walletService.CreateWallet(c.Context(), claims.UserID, input.Currency)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Respond(c, fiber.StatusCreated, fiber.Map{
		"wallet": w,
	})
}
