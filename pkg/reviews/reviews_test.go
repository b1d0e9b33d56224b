package reviews

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/storage"
	"github.com/chris/washflow/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func completedRequest() *models.WashRequest {
	return &models.WashRequest{
		Id:       "wr_1",
		UserId:   "user1",
		OutletId: "outlet1",
		Status:   models.StatusCompleted,
	}
}

func newTestService(requests *mocks.WashRequestStore, outlets *mocks.OutletStore) *Service {
	return NewService(requests, outlets, slog.New(slog.DiscardHandler))
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Second Review Conflicts And Rating Is Recomputed Once", func(t *testing.T) {
		requests := new(mocks.WashRequestStore)
		outlets := new(mocks.OutletStore)

		requests.On("GetWashRequest", mock.Anything, "wr_1").Return(completedRequest(), nil).Once()
		requests.On("SubmitReview", mock.Anything, mock.MatchedBy(func(r *models.WashRequest) bool {
			return *r.UserRating == 5 && *r.UserReview == "great" && r.ReviewedAt != nil
		})).Return(&models.Outlet{Id: "outlet1", RatingSum: 5, RatingCount: 1}, nil).Once()
		outlets.On("SetOutletRating", mock.Anything, "outlet1", 5.0, int64(1)).Return(nil).Once()

		svc := newTestService(requests, outlets)
		req, err := svc.SubmitReview(ctx, "wr_1", "user1", 5, "great")
		require.NoError(t, err)
		assert.Equal(t, 5, *req.UserRating)

		rated := completedRequest()
		five := 5
		rated.UserRating = &five
		requests.On("GetWashRequest", mock.Anything, "wr_1").Return(rated, nil).Once()

		_, err = svc.SubmitReview(ctx, "wr_1", "user1", 3, "")

		assert.ErrorIs(t, err, apperr.ErrConflict)
		requests.AssertNumberOfCalls(t, "SubmitReview", 1)
		outlets.AssertNumberOfCalls(t, "SetOutletRating", 1)
	})

	t.Run("Concurrent Review Loses The Condition", func(t *testing.T) {
		requests := new(mocks.WashRequestStore)
		outlets := new(mocks.OutletStore)
		requests.On("GetWashRequest", mock.Anything, "wr_1").Return(completedRequest(), nil)
		requests.On("SubmitReview", mock.Anything, mock.Anything).Return(nil, storage.ErrAlreadyReviewed)

		_, err := newTestService(requests, outlets).SubmitReview(ctx, "wr_1", "user1", 4, "")

		assert.ErrorIs(t, err, apperr.ErrConflict)
		outlets.AssertNotCalled(t, "SetOutletRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stale Recompute Is Not An Error", func(t *testing.T) {
		requests := new(mocks.WashRequestStore)
		outlets := new(mocks.OutletStore)
		requests.On("GetWashRequest", mock.Anything, "wr_1").Return(completedRequest(), nil)
		requests.On("SubmitReview", mock.Anything, mock.Anything).Return(&models.Outlet{Id: "outlet1", RatingSum: 14, RatingCount: 3}, nil)
		outlets.On("SetOutletRating", mock.Anything, "outlet1", 4.7, int64(3)).Return(storage.ErrConditionFailed)

		_, err := newTestService(requests, outlets).SubmitReview(ctx, "wr_1", "user1", 4, "")

		assert.NoError(t, err)
		outlets.AssertExpectations(t)
	})

	rejections := []struct {
		name    string
		req     func() *models.WashRequest
		userID  string
		rating  int
		text    string
		wantErr error
	}{
		{"Rating Too Low", completedRequest, "user1", 0, "", apperr.ErrValidation},
		{"Rating Too High", completedRequest, "user1", 6, "", apperr.ErrValidation},
		{"Review Too Long", completedRequest, "user1", 4, strings.Repeat("a", MaxReviewLength+1), apperr.ErrValidation},
		{"Not The Owner", completedRequest, "user2", 4, "", apperr.ErrForbidden},
		{"Not Completed", func() *models.WashRequest {
			r := completedRequest()
			r.Status = models.StatusReadyForPickup
			return r
		}, "user1", 4, "", apperr.ErrInvalidState},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			requests := new(mocks.WashRequestStore)
			outlets := new(mocks.OutletStore)
			requests.On("GetWashRequest", mock.Anything, "wr_1").Return(tc.req(), nil)

			_, err := newTestService(requests, outlets).SubmitReview(ctx, "wr_1", tc.userID, tc.rating, tc.text)

			assert.ErrorIs(t, err, tc.wantErr)
			requests.AssertNotCalled(t, "SubmitReview", mock.Anything, mock.Anything)
		})
	}

	t.Run("Missing Request", func(t *testing.T) {
		requests := new(mocks.WashRequestStore)
		requests.On("GetWashRequest", mock.Anything, "ghost").Return(nil, storage.ErrNotFound)

		_, err := newTestService(requests, new(mocks.OutletStore)).SubmitReview(ctx, "ghost", "user1", 4, "")

		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("Storage Fault", func(t *testing.T) {
		requests := new(mocks.WashRequestStore)
		requests.On("GetWashRequest", mock.Anything, "wr_1").Return(completedRequest(), nil)
		requests.On("SubmitReview", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		_, err := newTestService(requests, new(mocks.OutletStore)).SubmitReview(ctx, "wr_1", "user1", 4, "")

		assert.Error(t, err)
		assert.Equal(t, 500, apperr.StatusCode(err))
	})
}

func TestAverage(t *testing.T) {
	assert.Equal(t, 5.0, Average(5, 1))
	assert.Equal(t, 4.7, Average(14, 3))
	assert.Equal(t, 3.5, Average(7, 2))
	assert.Equal(t, 4.3, Average(13, 3))
	assert.Equal(t, 3.3, Average(13, 4))
	assert.Equal(t, 3.2, Average(81249, 25000), "3.24996 rounds once, to 3.2")
}
