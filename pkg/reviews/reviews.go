// Package reviews records customer reviews of completed washes and keeps the
// outlet rating in step with them.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
	"github.com/shopspring/decimal"
)

// MaxReviewLength is the longest review text accepted, in characters.
const MaxReviewLength = 500

// Service is the review aggregator.
type Service struct {
	requests storage.WashRequestStore
	outlets  storage.OutletStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new Service.
func NewService(requests storage.WashRequestStore, outlets storage.OutletStore, logger *slog.Logger) *Service {
	return &Service{
		requests: requests,
		outlets:  outlets,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SubmitReview rates a completed wash on behalf of its owner. A request can be
// rated once. The outlet rating is then recomputed from its running tally.
func (s *Service) SubmitReview(ctx context.Context, id, userID string, rating int, text string) (*models.WashRequest, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.New(apperr.ErrValidation, "rating must be between 1 and 5")
	}
	if utf8.RuneCountInString(text) > MaxReviewLength {
		return nil, apperr.New(apperr.ErrValidation, "review must be at most %d characters", MaxReviewLength)
	}

	req, err := s.requests.GetWashRequest(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperr.New(apperr.ErrNotFound, "wash request %s not found", id)
		}
		return nil, err
	}
	switch {
	case req.UserId != userID:
		return nil, apperr.New(apperr.ErrForbidden, "unauthorized to review this wash request")
	case req.Status != models.StatusCompleted:
		return nil, apperr.New(apperr.ErrInvalidState, "only completed washes can be reviewed")
	case req.UserRating != nil:
		return nil, apperr.New(apperr.ErrConflict, "wash request has already been reviewed")
	}

	now := s.now()
	req.UserRating = &rating
	if text != "" {
		req.UserReview = &text
	}
	req.ReviewedAt = &now
	req.UpdatedAt = now

	outlet, err := s.requests.SubmitReview(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyReviewed):
			return nil, apperr.New(apperr.ErrConflict, "wash request has already been reviewed")
		case errors.Is(err, storage.ErrNotFound):
			return nil, apperr.New(apperr.ErrNotFound, "outlet %s not found", req.OutletId)
		}
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	s.recompute(ctx, outlet)
	return req, nil
}

// recompute writes the outlet's mean rating for the tally it was read with.
// A failed write leaves the previous rating until the next review.
func (s *Service) recompute(ctx context.Context, outlet *models.Outlet) {
	if outlet.RatingCount == 0 {
		return
	}
	rating := Average(outlet.RatingSum, outlet.RatingCount)

	err := s.outlets.SetOutletRating(ctx, outlet.Id, rating, outlet.RatingCount)
	switch {
	case err == nil:
		s.logger.Info("outlet rating updated", "outlet_id", outlet.Id, "rating", rating, "reviews", outlet.RatingCount)
	case errors.Is(err, storage.ErrConditionFailed):
		s.logger.Debug("outlet rating superseded by a newer review", "outlet_id", outlet.Id)
	default:
		s.logger.Error("failed to update outlet rating", "outlet_id", outlet.Id, "error", err)
	}
}

// Average returns sum/count rounded to one decimal place.
func Average(sum, count int64) float64 {
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 1).InexactFloat64()
}
