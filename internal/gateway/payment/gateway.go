package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"mozcommerce/internal/entities"
	retrierconfig "mozcommerce/pkg/retrier"
	"mozcommerce/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-provider"

	chargePath = "/v1/charges"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// ErrChargeRejected means the provider refused the charge outright,
// retrying the same request will not help.
var ErrChargeRejected = errors.New("charge rejected by provider")

type Config struct {
	BaseURL string
	APIKey  string
}

type PaymentGateway struct {
	client  httpClient
	retrier retrier
	config  Config
}

func New(client httpClient, config Config) *PaymentGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableStatus,
	}

	return &PaymentGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		config:  config,
	}
}

type chargeRequestBody struct {
	OrderID    string  `json:"order_id"`
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
	Reference  string  `json:"reference"`
	Credential string  `json:"credential"`
}

type chargeResponseBody struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}

func (g *PaymentGateway) Charge(ctx context.Context, chargeEntity entities.ChargeRequest) (string, error) {
	reference := NewReference(time.Now().UTC())

	body, err := json.Marshal(chargeRequestBody{
		OrderID:    chargeEntity.OrderID,
		Method:     string(chargeEntity.Method),
		Amount:     chargeEntity.Amount,
		Currency:   "MZN",
		Reference:  reference,
		Credential: chargeEntity.Credential,
	})
	if err != nil {
		return "", fmt.Errorf("gateway payment, marshal charge: %w", err)
	}

	var resp chargeResponseBody

	err = g.executeWithMetrics(ctx, "Charge", func(ctx context.Context) error {
		return g.doCharge(ctx, body, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("gateway payment, charge order %s: %w", chargeEntity.OrderID, err)
	}

	if resp.Status == "rejected" {
		return "", fmt.Errorf("gateway payment, charge order %s: %w", chargeEntity.OrderID, ErrChargeRejected)
	}

	return reference, nil
}

func (g *PaymentGateway) doCharge(ctx context.Context, body []byte, out *chargeResponseBody) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.BaseURL+chargePath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.APIKey)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		// тело дочитываем чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, httpResp.Body)
		return &statusError{code: httpResp.StatusCode}
	}

	err = json.NewDecoder(httpResp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("decode charge response: %w", err)
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return "unexpected provider status " + strconv.Itoa(e.code)
}

func isRetryableStatus(err error) bool {
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// сетевые ошибки (таймауты, connection refused) ретраим
		return true
	}

	return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
}

func (g *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	// Метрики Prometheus
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "unknown"
}
