package handlers

import (
	"encoding/json"
	"log"

	"walletstack/internal/services/deposit"
	"walletstack/internal/services/paystack"
	"walletstack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WebhookHandler struct {
	depositService deposit.Service
}

func NewWebhookHandler(depositService deposit.Service) *WebhookHandler {
	return &WebhookHandler{
		depositService: depositService,
	}
}

// HandlePaystackWebhook receives gateway event notifications. The signature
// is computed over the raw body, so the payload is decoded only after the
// service has had a chance to verify it.
func (h *WebhookHandler) HandlePaystackWebhook(c *fiber.Ctx) error {
	rawBody := c.Body()
	signature := c.Get("x-paystack-signature")

	var event paystack.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		log.Printf("Webhook payload decode failed: %v", err)
		return utils.BadRequest(c, "Invalid webhook payload")
	}

	if err := h.depositService.HandleWebhook(c.Context(), event, signature, rawBody); err != nil {
		log.Printf("Webhook %s for reference %q failed: %v", event.Event, event.Data.Reference, err)
		return utils.DomainError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"status": "ok",
	})
}
