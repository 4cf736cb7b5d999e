package paystack

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	domain "walletstack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "sk_test_abc123"

func TestInitialize(t *testing.T) {
	t.Run("successful session", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/transaction/initialize", r.URL.Path)
			assert.Equal(t, "Bearer "+testSecret, r.Header.Get("Authorization"))

			var req InitializeRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(5_000), req.Amount)
			assert.Equal(t, "alice@example.com", req.Email)

			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  true,
				"message": "Authorization URL created",
				"data": map[string]interface{}{
					"authorization_url": "https://checkout.paystack.com/xyz",
					"access_code":       "xyz",
					"reference":         req.Reference,
				},
			})
		}))
		defer srv.Close()

		client := NewClient(testSecret, WithBaseURL(srv.URL))
		data, err := client.Initialize(context.Background(), InitializeRequest{
			Amount:    5_000,
			Email:     "alice@example.com",
			Reference: "DEP-ref-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/xyz", data.AuthorizationURL)
		assert.Equal(t, "DEP-ref-1", data.Reference)
	})

	t.Run("gateway rejection is an upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"status":  false,
				"message": "Invalid amount",
			})
		}))
		defer srv.Close()

		client := NewClient(testSecret, WithBaseURL(srv.URL))
		_, err := client.Initialize(context.Background(), InitializeRequest{Amount: 1})
		kind, ok := domain.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindUpstreamFailure, kind)
	})

	t.Run("unreachable gateway is an upstream failure", func(t *testing.T) {
		client := NewClient(testSecret, WithBaseURL("http://127.0.0.1:1"))
		_, err := client.Initialize(context.Background(), InitializeRequest{Amount: 1})
		kind, ok := domain.KindOf(err)
		require.True(t, ok)
		assert.Equal(t, domain.KindUpstreamFailure, kind)
	})
}

func TestVerify(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transaction/verify/DEP-ref-1", r.URL.Path)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"status":  true,
			"message": "Verification successful",
			"data": map[string]interface{}{
				"id":        123456,
				"status":    "success",
				"reference": "DEP-ref-1",
				"amount":    5000,
				"currency":  "NGN",
			},
		})
	}))
	defer srv.Close()

	client := NewClient(testSecret, WithBaseURL(srv.URL))
	data, err := client.Verify(context.Background(), "DEP-ref-1")
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, data.Status)
	assert.Equal(t, int64(123456), data.ID)
	assert.Equal(t, int64(5_000), data.Amount)
}

func TestVerifyWebhookSignature(t *testing.T) {
	client := NewClient(testSecret)
	body := []byte(`{"event":"charge.success","data":{"reference":"DEP-ref-1"}}`)

	mac := hmac.New(sha512.New, []byte(testSecret))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, client.VerifyWebhookSignature(body, valid))
	assert.False(t, client.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, client.VerifyWebhookSignature(body, ""))

	// Signature is over the exact bytes; any change breaks it.
	tampered := []byte(`{"event":"charge.success","data":{"reference":"DEP-ref-2"}}`)
	assert.False(t, client.VerifyWebhookSignature(tampered, valid))
}

func TestNewClientRequiresSecret(t *testing.T) {
	assert.Panics(t, func() { NewClient("") })
}
