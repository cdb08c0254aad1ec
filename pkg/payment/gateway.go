package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"clinic-booking/pkg/utils"
)

// Gateway creates payment intents against the external charge provider.
// The provider returns an opaque client secret used browser-side to complete
// the charge; no refund or void flow is used.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

type intentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type intentResponse struct {
	ClientSecret string `json:"client_secret"`
}

type httpGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewGateway(config utils.PaymentConfig) Gateway {
	return &httpGateway{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (g *httpGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	body, err := json.Marshal(intentRequest{
		Amount:   amount,
		Currency: currency,
	})
	if err != nil {
		return "", fmt.Errorf("marshal intent request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payment_intents", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build intent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("payment gateway returned status %d", resp.StatusCode)
	}

	var intent intentResponse
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", fmt.Errorf("decode intent response: %w", err)
	}

	if intent.ClientSecret == "" {
		return "", fmt.Errorf("payment gateway returned empty client secret")
	}

	return intent.ClientSecret, nil
}
