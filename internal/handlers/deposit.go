package handlers

import (
	"walletstack/internal/services/deposit"
	"walletstack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DepositHandler struct {
	depositService deposit.Service
}

func NewDepositHandler(depositService deposit.Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// InitiateDeposit starts a hosted payment session and returns the
// authorization URL the customer should be redirected to.
func (h *DepositHandler) InitiateDeposit(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Amount int64 `json:"amount"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.Amount <= 0 {
		return utils.BadRequest(c, "Amount must be greater than 0")
	}

	result, err := h.depositService.InitiateDeposit(c.Context(), claims.UserID, input.Amount)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"reference":         result.Reference,
		"authorization_url": result.AuthorizationURL,
	})
}

// GetDepositStatus reports the current state of a deposit by reference.
func (h *DepositHandler) GetDepositStatus(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	reference := c.Params("reference")
	if reference == "" {
		return utils.BadRequest(c, "Reference is required")
	}

	status, err := h.depositService.VerifyDepositStatus(c.Context(), claims.UserID, reference)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"deposit": status,
	})
}

// VerifyDeposit reconciles a deposit against the gateway on demand, used
// when the webhook was missed. Crediting stays idempotent either way.
func (h *DepositHandler) VerifyDeposit(c *fiber.Ctx) error {
	claims, err := extractClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	reference := c.Params("reference")
	if reference == "" {
		return utils.BadRequest(c, "Reference is required")
	}

	status, err := h.depositService.ManualVerifyAndCredit(c.Context(), claims.UserID, reference)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"deposit": status,
	})
}
