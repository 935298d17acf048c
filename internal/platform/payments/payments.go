// Package payments wraps the hosted payment processor. The core logic
// treats the provider as an opaque call returning an intent id and client
// secret to persist locally.
package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentIntent is the provider-side handle for a pending payment.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// Provider creates payment intents with the hosted processor.
type Provider interface {
	CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error)
}

// HTTPProvider talks to a Stripe-compatible payment-intents endpoint.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var _ Provider = (*HTTPProvider)(nil)

// NewHTTPProvider builds a provider client. Returns nil when no API key is
// configured; callers must treat a nil provider as payments-disabled.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	if apiKey == "" {
		return nil
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// CreatePaymentIntent creates an intent for the amount in the smallest
// currency unit, as the processor expects.
func (p *HTTPProvider) CreatePaymentIntent(ctx context.Context, amount decimal.Decimal, currency string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", amount.Mul(decimal.NewFromInt(100)).Round(0).String())
	form.Set("currency", strings.ToLower(currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build payment intent request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("payment provider returned status %s", resp.Status)
	}

	var intent PaymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("failed to decode payment intent response: %w", err)
	}
	return &intent, nil
}
