package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
	"github.com/shopspring/decimal"
)

// Gateway is the subset of the payment provider client used here.
type Gateway interface {
	Initialize(ctx context.Context, email string, amount decimal.Decimal) (*gateway.Initialization, error)
	VerifyByReference(ctx context.Context, reference string) (*gateway.Verification, error)
}

// InitializeInput describes a checkout to start.
type InitializeInput struct {
	UserID  string
	Email   string
	Amount  decimal.Decimal // major units
	Purpose string
}

// Checkout starts payments and records them in the ledger without making
// the caller wait for the write.
type Checkout struct {
	gateway Gateway
	ledger  *LedgerWriter
	logger  *slog.Logger
}

// NewCheckout creates a new Checkout.
func NewCheckout(gw Gateway, ledger *LedgerWriter, logger *slog.Logger) *Checkout {
	return &Checkout{gateway: gw, ledger: ledger, logger: logger}
}

// Initialize starts a checkout with the gateway and schedules the ledger write.
func (c *Checkout) Initialize(ctx context.Context, in InitializeInput) (*gateway.Initialization, error) {
	init, err := c.gateway.Initialize(ctx, in.Email, in.Amount)
	if err != nil {
		return nil, err
	}

	purpose := in.Purpose
	if purpose == "" {
		purpose = models.PurposeWashRequest
	}

	c.ledger.CreateBestEffort(models.Transaction{
		Reference:        init.Reference,
		UserId:           in.UserID,
		Email:            in.Email,
		Amount:           init.AmountMinor,
		Gateway:          models.GatewayPaystack,
		Purpose:          purpose,
		AuthorizationURL: init.AuthorizationURL,
		Status:           models.INITIATED,
		CreatedAt:        time.Now().UTC(),
	})

	c.logger.Info("payment initialized", "reference", init.Reference, "user_id", in.UserID, "amount", init.AmountMinor)
	return init, nil
}

// WebhookAck is how the webhook endpoint should answer the gateway.
type WebhookAck struct {
	StatusCode int
	Outcome    Outcome
	Ignored    bool
}

// Service exposes the push and pull reconciliation paths.
type Service struct {
	gateway       Gateway
	reconciler    *Reconciler
	transactions  storage.TransactionReader
	webhookSecret string
	logger        *slog.Logger
}

// NewService creates a new Service. webhookSecret is the key Paystack signs
// webhooks with, which is the account's secret key.
func NewService(gw Gateway, reconciler *Reconciler, transactions storage.TransactionReader, webhookSecret string, logger *slog.Logger) *Service {
	return &Service{
		gateway:       gw,
		reconciler:    reconciler,
		transactions:  transactions,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

// VerifyAndReconcile pulls the payment state from the gateway and reconciles it.
func (s *Service) VerifyAndReconcile(ctx context.Context, reference string) (*Result, *gateway.Verification, error) {
	verification, err := s.gateway.VerifyByReference(ctx, reference)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.reconciler.Reconcile(ctx, reference, verification.PaidAmount, verification.Success)
	if err != nil {
		return nil, verification, err
	}

	return result, verification, nil
}

// HandleWebhook verifies and processes one webhook delivery. Only internal
// faults answer 500, which makes the gateway redeliver.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, signature string) WebhookAck {
	event, err := gateway.DecodeWebhook(body, signature, s.webhookSecret)
	if err != nil {
		s.logger.Warn("rejected webhook", "error", err)
		return WebhookAck{StatusCode: http.StatusBadRequest}
	}

	if !event.IsChargeSuccess() {
		s.logger.Debug("ignoring webhook event", "event", event.Event)
		return WebhookAck{StatusCode: http.StatusOK, Ignored: true}
	}

	result, err := s.reconciler.Reconcile(ctx, event.Reference(), event.Amount(), true)
	if err != nil {
		s.logger.Error("webhook reconciliation failed", "reference", event.Reference(), "error", err)
		return WebhookAck{StatusCode: http.StatusInternalServerError}
	}

	s.logger.Info("webhook processed", "reference", event.Reference(), "outcome", result.Outcome)
	return WebhookAck{StatusCode: http.StatusOK, Outcome: result.Outcome}
}

// GetTransaction returns the recorded transaction for reference.
func (s *Service) GetTransaction(ctx context.Context, reference string) (*models.Transaction, error) {
	tx, err := s.transactions.GetTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", reference, err)
	}
	return tx, nil
}

// ListTransactions returns the caller's transactions.
func (s *Service) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs, err := s.transactions.ListTransactionsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// IsRetryable reports whether a verification error is worth redelivering.
func IsRetryable(err error) bool {
	return err != nil && !gateway.IsRejected(err) && !errors.Is(err, storage.ErrNotFound)
}
