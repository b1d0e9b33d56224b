// Package gateway is the client for the Paystack payment API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultBaseURL = "https://api.paystack.co"
	DefaultTimeout = 10 * time.Second

	chargeSuccess = "success"
)

// ErrRejected is returned when the gateway answers a verification with
// status=false, e.g. for a reference it has never seen.
var ErrRejected = apperr.New(apperr.ErrValidation, "payment rejected by gateway")

// Config holds the Paystack credentials and endpoint.
type Config struct {
	SecretKey string
	BaseURL   string
	Timeout   time.Duration
}

// Client talks to the Paystack REST API.
type Client struct {
	secretKey    string
	baseURL      string
	httpClient   *http.Client
	newReference func() string
}

// NewClient creates a Paystack client. Zero-valued BaseURL and Timeout fall
// back to DefaultBaseURL and DefaultTimeout.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		secretKey:    cfg.SecretKey,
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
		newReference: uuid.NewString,
	}
}

// Initialization is what a client needs to redirect the payer to checkout.
type Initialization struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	AmountMinor      int64  `json:"-"`
}

// Verification is the gateway's view of a payment.
type Verification struct {
	Reference  string
	Success    bool
	Status     string
	PaidAmount int64 // minor units
	PaidAt     *time.Time
	Raw        json.RawMessage
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type chargeData struct {
	Reference string     `json:"reference"`
	Status    string     `json:"status"`
	Amount    int64      `json:"amount"`
	PaidAt    *time.Time `json:"paid_at"`
}

// ToMinorUnits converts a major-unit amount to kobo. The amount must be
// positive and have at most two decimal places.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, apperr.New(apperr.ErrValidation, "amount must be a positive number")
	}
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, apperr.New(apperr.ErrValidation, "amount %s has more than two decimal places", amount.String())
	}
	return minor.IntPart(), nil
}

// Initialize starts a checkout for amount (major units) under a fresh reference.
func (c *Client) Initialize(ctx context.Context, email string, amount decimal.Decimal) (*Initialization, error) {
	minor, err := ToMinorUnits(amount)
	if err != nil {
		return nil, err
	}

	reference := c.newReference()
	payload, err := json.Marshal(map[string]any{
		"email":     email,
		"amount":    minor,
		"reference": reference,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal initialize request: %w", err)
	}

	status, env, err := c.do(ctx, http.MethodPost, "/transaction/initialize", payload)
	if err != nil {
		return nil, err
	}
	if status/100 != 2 || !env.Status {
		return nil, fmt.Errorf("%w: failed to initialize payment: %s", apperr.ErrGateway, env.Message)
	}

	var init Initialization
	if err := json.Unmarshal(env.Data, &init); err != nil {
		return nil, fmt.Errorf("%w: malformed initialize response: %v", apperr.ErrGateway, err)
	}
	if init.Reference == "" {
		init.Reference = reference
	}
	init.AmountMinor = minor

	return &init, nil
}

// VerifyByReference asks the gateway for the final state of a payment.
// A payment that exists but did not succeed is reported with Success=false,
// not as an error.
func (c *Client) VerifyByReference(ctx context.Context, reference string) (*Verification, error) {
	if reference == "" {
		return nil, apperr.New(apperr.ErrValidation, "reference is required")
	}

	status, env, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil)
	if err != nil {
		return nil, err
	}
	if status >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: verify returned status %d", apperr.ErrGateway, status)
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "Payment verification failed"
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, msg)
	}

	var data chargeData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: malformed verify response: %v", apperr.ErrGateway, err)
	}
	if data.Reference == "" {
		data.Reference = reference
	}

	return &Verification{
		Reference:  data.Reference,
		Success:    data.Status == chargeSuccess,
		Status:     data.Status,
		PaidAmount: data.Amount,
		PaidAt:     data.PaidAt,
		Raw:        env.Data,
	}, nil
}

// do sends an authenticated request and decodes the response envelope.
// Transport failures and timeouts are gateway errors.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (int, *envelope, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", apperr.ErrGateway, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: failed to read response: %v", apperr.ErrGateway, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp.StatusCode, &envelope{}, nil
		}
		return 0, nil, fmt.Errorf("%w: malformed response (status %d)", apperr.ErrGateway, resp.StatusCode)
	}

	return resp.StatusCode, &env, nil
}

// IsRejected reports whether err is a gateway rejection rather than an outage.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected)
}
