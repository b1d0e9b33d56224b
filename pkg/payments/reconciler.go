// Package payments reconciles gateway payments against the transaction ledger
// and applies the one-time grant for completed payments.
package payments

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
)

// Outcome is the result of reconciling one observation of a payment.
type Outcome string

const (
	OutcomeCompleted        Outcome = "completed"
	OutcomeAlreadyCompleted Outcome = "already_completed"
	OutcomeAmountMismatch   Outcome = "amount_mismatch"
	OutcomePaymentFailed    Outcome = "payment_failed"
	OutcomeAlreadyCancelled Outcome = "already_cancelled"
	OutcomeNotFound         Outcome = "not_found"
)

// Result describes what Reconcile did.
type Result struct {
	Outcome     Outcome
	Transaction *models.Transaction
	// Granted is true only for the call that applied the grant.
	Granted bool
}

// Granter applies the effect of a completed payment, e.g. scheduling the
// wash request it paid for.
type Granter interface {
	GrantPayment(ctx context.Context, reference string) error
}

// Reconciler moves transactions to a terminal state based on what the
// gateway reports. It is safe to call concurrently and repeatedly for the
// same reference.
type Reconciler struct {
	store   storage.TransactionStore
	granter Granter
	logger  *slog.Logger
	now     func() time.Time
}

// NewReconciler creates a new Reconciler.
func NewReconciler(store storage.TransactionStore, granter Granter, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		store:   store,
		granter: granter,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// AmountMatches accepts the observed amount in kobo, or in the naira
// equivalent of a record that was stored in naira.
func AmountMatches(storedMinor, observed int64) bool {
	return observed == storedMinor || observed == storedMinor*100
}

// Reconcile applies one observation of the payment for reference.
func (r *Reconciler) Reconcile(ctx context.Context, reference string, observedAmount int64, observedSuccess bool) (*Result, error) {
	tx, err := r.store.GetTransaction(ctx, reference)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("reconcile for unknown reference", "reference", reference)
			return &Result{Outcome: OutcomeNotFound}, nil
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", reference, err)
	}

	switch tx.Status {
	case models.COMPLETED:
		return &Result{Outcome: OutcomeAlreadyCompleted, Transaction: tx}, nil
	case models.CANCELLED:
		return &Result{Outcome: OutcomeAlreadyCancelled, Transaction: tx}, nil
	}

	if !observedSuccess || !AmountMatches(tx.Amount, observedAmount) {
		outcome := OutcomeAmountMismatch
		if !observedSuccess {
			outcome = OutcomePaymentFailed
		}
		return r.cancel(ctx, tx, outcome, observedAmount)
	}

	paidAt := r.now()
	if err := r.store.CompleteTransaction(ctx, reference, paidAt); err != nil {
		if errors.Is(err, storage.ErrConditionFailed) {
			return r.settled(ctx, reference)
		}
		return nil, fmt.Errorf("failed to complete transaction %s: %w", reference, err)
	}
	tx.Status = models.COMPLETED
	tx.PaidAt = &paidAt

	r.logger.Info("transaction completed", "reference", reference, "amount", observedAmount)

	granted, err := r.Grant(ctx, reference)
	if err != nil {
		// The payment stands; the sweeper retries the grant.
		r.logger.Error("grant failed after completion", "reference", reference, "error", err)
	}
	tx.Granted = granted

	return &Result{Outcome: OutcomeCompleted, Transaction: tx, Granted: granted}, nil
}

// Grant applies the grant for a completed transaction exactly once. Only the
// caller whose claim wins returns true. If the granter fails, the claim is
// released so a later call can retry.
func (r *Reconciler) Grant(ctx context.Context, reference string) (bool, error) {
	claimed, err := r.store.ClaimGrant(ctx, reference)
	if err != nil {
		return false, fmt.Errorf("failed to claim grant for %s: %w", reference, err)
	}
	if !claimed {
		return false, nil
	}

	if err := r.granter.GrantPayment(ctx, reference); err != nil {
		// Nothing to grant for this reference; keep the claim.
		if errors.Is(err, apperr.ErrNotFound) {
			r.logger.Warn("no grant target for reference", "reference", reference)
			return true, nil
		}
		if relErr := r.store.ReleaseGrant(ctx, reference); relErr != nil {
			r.logger.Error("failed to release grant claim", "reference", reference, "error", relErr)
		}
		return false, fmt.Errorf("failed to grant payment %s: %w", reference, err)
	}

	r.logger.Info("payment granted", "reference", reference)
	return true, nil
}

func (r *Reconciler) cancel(ctx context.Context, tx *models.Transaction, outcome Outcome, observedAmount int64) (*Result, error) {
	if err := r.store.CancelTransaction(ctx, tx.Reference); err != nil {
		if errors.Is(err, storage.ErrConditionFailed) {
			return r.settled(ctx, tx.Reference)
		}
		return nil, fmt.Errorf("failed to cancel transaction %s: %w", tx.Reference, err)
	}
	tx.Status = models.CANCELLED

	r.logger.Warn("transaction cancelled",
		"reference", tx.Reference,
		"outcome", outcome,
		"expected", tx.Amount,
		"observed", observedAmount,
	)

	return &Result{Outcome: outcome, Transaction: tx}, nil
}

// settled reports the outcome of a transaction another caller already moved
// to a terminal state.
func (r *Reconciler) settled(ctx context.Context, reference string) (*Result, error) {
	tx, err := r.store.GetTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read transaction %s: %w", reference, err)
	}
	switch tx.Status {
	case models.COMPLETED:
		return &Result{Outcome: OutcomeAlreadyCompleted, Transaction: tx}, nil
	case models.CANCELLED:
		return &Result{Outcome: OutcomeAlreadyCancelled, Transaction: tx}, nil
	}
	return nil, fmt.Errorf("transaction %s still %s after lost update", reference, tx.Status)
}
