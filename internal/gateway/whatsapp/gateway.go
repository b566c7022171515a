// Package whatsapp sends text messages through the WhatsApp Business Cloud
// API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ojitos/internal/pkg/config"
	retrierconfig "ojitos/pkg/retrier"
	"ojitos/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "whatsapp"

	maxErrorBody = 64 << 10
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 4
)

type Gateway struct {
	client   client
	retrier  retrier
	endpoint string
	token    string
}

func New(cfg config.WhatsApp) *Gateway {
	return NewWithClient(cfg, &http.Client{Timeout: cfg.Timeout})
}

func NewWithClient(cfg config.WhatsApp, client client) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		endpoint: strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.PhoneNumberID + "/messages",
		token:    cfg.AccessToken,
	}
}

// SendText delivers body to phone and returns the provider message id.
func (g *Gateway) SendText(ctx context.Context, phone string, body string) (string, error) {
	payload, err := json.Marshal(newTextMessage(phone, body))
	if err != nil {
		return "", fmt.Errorf("gateway whatsapp, encode message: %w", err)
	}

	var resp messageResponse
	err = g.executeWithMetrics(ctx, "SendText", func(ctx context.Context) error {
		return g.post(ctx, payload, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("gateway whatsapp, send text: %w", err)
	}

	if len(resp.Messages) == 0 || resp.Messages[0].ID == "" {
		return "", ErrEmptyMessageID
	}
	return resp.Messages[0].ID, nil
}

func (g *Gateway) post(ctx context.Context, payload []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeAPIError(res)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrUnreadableResponse, err)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	apiErr := &APIError{StatusCode: res.StatusCode, Message: http.StatusText(res.StatusCode)}

	var body errorResponse
	raw, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err == nil && json.Unmarshal(raw, &body) == nil && body.Error.Message != "" {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return apiErr
}

// isRetryable retries throttling, server errors and transport failures.
// Context cancellation and anything after a 2xx answer are final.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrUnreadableResponse) {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable()
	}

	var syntaxErr *json.SyntaxError
	return !errors.As(err, &syntaxErr)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.StatusCode)
	}
	return "UNKNOWN"
}
