package payments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chris/washflow/pkg/storage"
)

// VerificationScheduler queues a reference for verification against the gateway.
type VerificationScheduler interface {
	ScheduleVerification(ctx context.Context, reference string, delay time.Duration) error
}

// SweepReport summarises one sweep.
type SweepReport struct {
	Enqueued int
	Granted  int
	Failed   int
}

// Sweeper finds payments the push and pull paths left unfinished: checkouts
// nobody verified and completed payments whose grant never applied.
type Sweeper struct {
	transactions storage.TransactionReader
	scheduler    VerificationScheduler
	reconciler   *Reconciler
	threshold    time.Duration
	logger       *slog.Logger
}

// NewSweeper creates a new Sweeper. Transactions initiated longer than
// threshold ago count as stuck.
func NewSweeper(transactions storage.TransactionReader, scheduler VerificationScheduler, reconciler *Reconciler, threshold time.Duration, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		transactions: transactions,
		scheduler:    scheduler,
		reconciler:   reconciler,
		threshold:    threshold,
		logger:       logger,
	}
}

// Run performs one sweep. A failure on one reference does not stop the rest.
func (s *Sweeper) Run(ctx context.Context) (SweepReport, error) {
	var report SweepReport

	stuck, err := s.transactions.GetStuckTransactions(ctx, s.threshold)
	if err != nil {
		return report, fmt.Errorf("failed to get stuck transactions: %w", err)
	}
	for _, tx := range stuck {
		if err := s.scheduler.ScheduleVerification(ctx, tx.Reference, 0); err != nil {
			s.logger.Error("failed to enqueue stuck transaction", "reference", tx.Reference, "error", err)
			report.Failed++
			continue
		}
		report.Enqueued++
	}

	ungranted, err := s.transactions.GetUngrantedTransactions(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to get ungranted transactions: %w", err)
	}
	for _, tx := range ungranted {
		granted, err := s.reconciler.Grant(ctx, tx.Reference)
		if err != nil {
			s.logger.Error("grant retry failed", "reference", tx.Reference, "error", err)
			report.Failed++
			continue
		}
		if granted {
			report.Granted++
		}
	}

	s.logger.Info("sweep finished",
		"stuck", len(stuck),
		"ungranted", len(ungranted),
		"enqueued", report.Enqueued,
		"granted", report.Granted,
		"failed", report.Failed,
	)
	return report, nil
}
