package storage

import (
	"context"
	"time"

	"github.com/chris/washflow/pkg/models"
)

// TransactionReader defines the interface for reading transaction data.
type TransactionReader interface {
	// GetTransaction retrieves a transaction by its gateway reference.
	GetTransaction(ctx context.Context, reference string) (*models.Transaction, error)

	// GetStuckTransactions retrieves transactions that are in an 'initiated' state for longer than the specified duration.
	GetStuckTransactions(ctx context.Context, maxAge time.Duration) ([]models.Transaction, error)

	// GetUngrantedTransactions retrieves completed transactions whose grant has not been applied.
	GetUngrantedTransactions(ctx context.Context) ([]models.Transaction, error)

	// ListTransactionsByUserID retrieves all transactions for a specific user.
	ListTransactionsByUserID(ctx context.Context, userID string) ([]models.Transaction, error)
}

// TransactionManager defines the conditional state changes a transaction can go through.
// Every method only succeeds when the transaction is still 'initiated'; otherwise
// ErrConditionFailed is returned and nothing is written.
type TransactionManager interface {
	// CreateTransaction records a new 'initiated' transaction. Returns ErrAlreadyExists
	// if the reference is already recorded.
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)

	// CompleteTransaction moves a transaction from 'initiated' to 'completed'.
	CompleteTransaction(ctx context.Context, reference string, paidAt time.Time) error

	// CancelTransaction moves a transaction from 'initiated' to 'cancelled'.
	CancelTransaction(ctx context.Context, reference string) error
}

// TransactionStore combines the reader, manager and grant interfaces.
type TransactionStore interface {
	TransactionReader
	TransactionManager
	GrantStore
}
