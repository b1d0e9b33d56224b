package transactions

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/handlers/respond"
	"github.com/chris/washflow/pkg/mapping"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/payments"
	"github.com/chris/washflow/pkg/storage"
)

// maxWebhookBody caps how much of a webhook delivery is read.
const maxWebhookBody = 1 << 20

// Checkout starts a payment with the gateway.
type Checkout interface {
	Initialize(ctx context.Context, in payments.InitializeInput) (*gateway.Initialization, error)
}

// Reconciliation is the payment service behind the verify, webhook and
// listing endpoints.
type Reconciliation interface {
	GetTransaction(ctx context.Context, reference string) (*models.Transaction, error)
	VerifyAndReconcile(ctx context.Context, reference string) (*payments.Result, *gateway.Verification, error)
	HandleWebhook(ctx context.Context, body []byte, signature string) payments.WebhookAck
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
}

// TransactionsHandler holds the dependencies for payment-related handlers.
type TransactionsHandler struct {
	Checkout Checkout
	Payments Reconciliation
	Logger   *slog.Logger
}

// NewTransactionsHandler creates a new TransactionsHandler.
func NewTransactionsHandler(checkout Checkout, payments Reconciliation, logger *slog.Logger) *TransactionsHandler {
	return &TransactionsHandler{Checkout: checkout, Payments: payments, Logger: logger}
}

// InitializePayment starts a checkout for the caller.
func (h *TransactionsHandler) InitializePayment(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var body api.InitializePaymentRequest
	if !respond.DecodeBody(w, r, &body) {
		return
	}

	purpose := models.PurposeWashRequest
	if body.Purpose != nil {
		purpose = string(*body.Purpose)
	}

	init, err := h.Checkout.Initialize(r.Context(), payments.InitializeInput{
		UserID:  caller.ID,
		Email:   caller.Email,
		Amount:  body.Amount,
		Purpose: purpose,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, api.PaymentInitializationResponse{
		Success: true,
		Message: "Payment initialized successfully",
		Data:    *mapping.ToApiPaymentInitialization(init),
	})
}

// VerifyPayment reconciles a payment against the gateway on the payer's
// request. Only the payer may trigger it.
func (h *TransactionsHandler) VerifyPayment(w http.ResponseWriter, r *http.Request, reference string) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	tx, err := h.Payments.GetTransaction(r.Context(), reference)
	if errors.Is(err, storage.ErrNotFound) {
		respond.Message(w, http.StatusNotFound, "Transaction not found")
		return
	}
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	if tx.UserId != caller.ID {
		h.Logger.Warn("verify for another user's payment", "reference", reference, "caller", caller.ID)
		respond.Message(w, http.StatusForbidden, "Access denied")
		return
	}

	result, verification, err := h.Payments.VerifyAndReconcile(r.Context(), reference)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	switch result.Outcome {
	case payments.OutcomeNotFound:
		respond.Message(w, http.StatusNotFound, "Transaction not found")
		return
	case payments.OutcomePaymentFailed, payments.OutcomeAlreadyCancelled:
		respond.Message(w, http.StatusBadRequest, "Payment not successful")
		return
	case payments.OutcomeAmountMismatch:
		respond.Message(w, http.StatusBadRequest, "Payment amount does not match transaction amount")
		return
	}

	respond.JSON(w, http.StatusOK, api.PaymentVerificationResponse{
		Success: true,
		Message: "Payment verified successfully",
		Data:    *mapping.ToApiPaymentVerification(result, verification),
	})
}

// ListTransactions returns the caller's transactions.
func (h *TransactionsHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	txs, err := h.Payments.ListTransactions(r.Context(), caller.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, api.TransactionListResponse{
		Success: true,
		Data:    mapping.ToApiTransactions(txs),
	})
}

// PaystackWebhook receives gateway push notifications. The signature covers
// the raw body, so it is read before anything decodes it.
func (h *TransactionsHandler) PaystackWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	ack := h.Payments.HandleWebhook(r.Context(), body, r.Header.Get(gateway.SignatureHeader))
	w.WriteHeader(ack.StatusCode)
}
