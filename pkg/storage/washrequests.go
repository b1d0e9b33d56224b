package storage

import (
	"context"

	"github.com/chris/washflow/pkg/models"
)

// WashRequestReader defines the interface for reading wash requests.
type WashRequestReader interface {
	// GetWashRequest retrieves a wash request by its ID.
	GetWashRequest(ctx context.Context, id string) (*models.WashRequest, error)

	// GetWashRequestByCode retrieves the wash request holding a wash code. When the
	// code has been released, the most recent request that used it is returned.
	GetWashRequestByCode(ctx context.Context, washCode string) (*models.WashRequest, error)

	// GetWashRequestByReference retrieves the wash request paid for by a transaction.
	GetWashRequestByReference(ctx context.Context, reference string) (*models.WashRequest, error)

	// ListWashRequestsByUserID retrieves a user's wash requests, newest first.
	ListWashRequestsByUserID(ctx context.Context, userID string) ([]models.WashRequest, error)
}

// WashRequestManager defines the write operations on wash requests.
type WashRequestManager interface {
	// CreateWashRequest stores a new request and reserves its wash code.
	// Returns ErrWashCodeTaken if the code is held by another live request.
	CreateWashRequest(ctx context.Context, req *models.WashRequest) (*models.WashRequest, error)

	// TransitionWashRequest persists req's new status, step, payment status and
	// terminal timestamps, and appends the last entry of req.StatusTimeline.
	// The write only succeeds while the stored status still equals from;
	// otherwise ErrConditionFailed is returned. Reaching a terminal status releases
	// the wash code.
	TransitionWashRequest(ctx context.Context, req *models.WashRequest, from models.WashStatus) error

	// SubmitReview stores req's rating, review and review time and adds the rating
	// to the outlet's running tally in one atomic write. It returns the outlet with
	// the updated tally. Returns ErrAlreadyReviewed if a rating already exists.
	SubmitReview(ctx context.Context, req *models.WashRequest) (*models.Outlet, error)
}

// WashRequestStore combines the reader and manager interfaces.
type WashRequestStore interface {
	WashRequestReader
	WashRequestManager
}
