package paystack

// EventChargeSuccess is the webhook event type that settles a deposit.
const EventChargeSuccess = "charge.success"

// Gateway transaction statuses reported by verify and webhook payloads.
const (
	StatusSuccess   = "success"
	StatusFailed    = "failed"
	StatusAbandoned = "abandoned"
)

// InitializeRequest opens a hosted payment session. Amount is in the
// smallest currency unit.
type InitializeRequest struct {
	Amount    int64                  `json:"amount"`
	Email     string                 `json:"email"`
	Currency  string                 `json:"currency,omitempty"`
	Reference string                 `json:"reference"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// InitializeData is the hosted session handle. Reference is the
// gateway's reference and is authoritative even when it differs from
// the one sent.
type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type initializeResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    InitializeData `json:"data"`
}

// VerifyData is the state of a transaction as reported by the gateway's
// verify-by-reference endpoint.
type VerifyData struct {
	ID              int64                  `json:"id"`
	Status          string                 `json:"status"`
	Reference       string                 `json:"reference"`
	Amount          int64                  `json:"amount"`
	GatewayResponse string                 `json:"gateway_response"`
	Currency        string                 `json:"currency"`
	Channel         string                 `json:"channel"`
	Metadata        map[string]interface{} `json:"metadata"`
	Customer        Customer               `json:"customer"`
}

type verifyResponse struct {
	Status  bool       `json:"status"`
	Message string     `json:"message"`
	Data    VerifyData `json:"data"`
}

type Customer struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// WebhookEvent is the payload Paystack posts to the webhook receiver.
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

type WebhookEventData struct {
	ID        int64                  `json:"id"`
	Status    string                 `json:"status"`
	Reference string                 `json:"reference"`
	Amount    int64                  `json:"amount"`
	Currency  string                 `json:"currency"`
	Metadata  map[string]interface{} `json:"metadata"`
	Customer  Customer               `json:"customer"`
}

type errorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}
