package payments

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
)

const attemptTimeout = 10 * time.Second

// LedgerWriter records 'initiated' transactions off the request path.
type LedgerWriter struct {
	store      storage.TransactionManager
	logger     *slog.Logger
	retryDelay time.Duration
	maxRetries int

	wg sync.WaitGroup
}

// NewLedgerWriter creates a writer that retries a failed write maxRetries
// times, doubling retryDelay after each failure.
func NewLedgerWriter(store storage.TransactionManager, logger *slog.Logger, retryDelay time.Duration, maxRetries int) *LedgerWriter {
	return &LedgerWriter{
		store:      store,
		logger:     logger,
		retryDelay: retryDelay,
		maxRetries: maxRetries,
	}
}

// CreateBestEffort persists tx in the background and returns immediately.
// The write is detached from any request context.
func (w *LedgerWriter) CreateBestEffort(tx models.Transaction) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.persist(context.Background(), &tx)
	}()
}

// Wait blocks until every in-flight write has finished or been dropped.
func (w *LedgerWriter) Wait() {
	w.wg.Wait()
}

func (w *LedgerWriter) persist(ctx context.Context, tx *models.Transaction) {
	attempts := w.maxRetries + 1
	backoff := w.retryDelay

	for attempt := 1; attempt <= attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		_, err := w.store.CreateTransaction(attemptCtx, tx)
		cancel()

		// A duplicate means an earlier attempt landed.
		if err == nil || errors.Is(err, storage.ErrAlreadyExists) {
			w.logger.Debug("transaction recorded", "reference", tx.Reference, "attempt", attempt)
			return
		}

		w.logger.Warn("failed to record transaction",
			"reference", tx.Reference,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", err,
		)

		if attempt == attempts {
			w.logger.Error("dropping transaction record after retries",
				"reference", tx.Reference,
				"user_id", tx.UserId,
				"amount", tx.Amount,
			)
			return
		}

		time.Sleep(backoff)
		backoff *= 2
	}
}
