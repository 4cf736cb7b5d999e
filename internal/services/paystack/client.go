// Package paystack wraps the Paystack REST API: hosted payment
// initialization, verify-by-reference, and webhook signature checks.
// Calls happen outside any database transaction.
package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	domain "walletstack/internal/errors"
)

const defaultBaseURL = "https://api.paystack.co"

// Gateway is the payment processor surface the deposit workflow uses.
type Gateway interface {
	Initialize(ctx context.Context, req InitializeRequest) (*InitializeData, error)
	Verify(ctx context.Context, reference string) (*VerifyData, error)
	VerifyWebhookSignature(rawBody []byte, signature string) bool
}

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests point it at a local server).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Paystack API client.
func NewClient(secretKey string, opts ...Option) *Client {
	if secretKey == "" {
		panic("paystack secret key is required")
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		secretKey:  secretKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize opens a hosted payment session for the given amount.
func (c *Client) Initialize(ctx context.Context, req InitializeRequest) (*InitializeData, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build initialize request: %w", err)
	}
	c.setHeaders(httpReq)

	var resp initializeResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, domain.UpstreamFailure("GATEWAY_INITIALIZE_FAILED", resp.Message)
	}
	return &resp.Data, nil
}

// Verify fetches the gateway's view of a transaction by reference.
func (c *Client) Verify(ctx context.Context, reference string) (*VerifyData, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verify request: %w", err)
	}
	c.setHeaders(httpReq)

	var resp verifyResponse
	if err := c.do(httpReq, &resp); err != nil {
		return nil, err
	}
	if !resp.Status {
		return nil, domain.UpstreamFailure("GATEWAY_VERIFY_FAILED", resp.Message)
	}
	return &resp.Data, nil
}

// VerifyWebhookSignature checks the HMAC-SHA512 of the exact request
// bytes against the x-paystack-signature header value. Re-serialized
// JSON is not byte-identical, so callers must pass the original body.
func (c *Client) VerifyWebhookSignature(rawBody []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(c.secretKey))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UpstreamFailure("GATEWAY_UNREACHABLE", fmt.Sprintf("paystack request failed: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return domain.UpstreamFailure("GATEWAY_ERROR", apiErr.Message)
		}
		return domain.UpstreamFailure("GATEWAY_ERROR", fmt.Sprintf("paystack returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.UpstreamFailure("GATEWAY_BAD_RESPONSE", fmt.Sprintf("failed to decode paystack response: %v", err))
	}
	return nil
}
