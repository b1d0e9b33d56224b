package mapping

import (
	"testing"
	"time"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/payments"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToApiWashRequest(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	req := &models.WashRequest{
		Id:          "6f1c2f9e-4b7a-4d51-9a57-0c7f8e1d2b3a",
		UserId:      "user1",
		VehicleId:   "veh1",
		VehicleInfo: models.VehicleInfo{VehicleMake: "Toyota", LicensePlate: "LAG-123-XY"},
		OutletId:    "outlet1",
		Price:       500050,
		Status:      models.StatusInProgress,
		CurrentStep: 4,
		StatusTimeline: []models.TimelineEntry{
			{Status: models.StatusInitiated, Timestamp: created, UpdatedBy: models.ActorUser},
			{Status: models.StatusScheduled, Timestamp: created.Add(time.Minute), UpdatedBy: models.ActorSystem},
		},
		PaymentStatus: models.PaymentPaid,
		CreatedAt:     created,
	}

	got := ToApiWashRequest(req)

	assert.Equal(t, req.Id, got.Id.String())
	assert.Equal(t, "Wash in Progress", got.StepLabel)
	assert.Equal(t, api.WashStatusInProgress, got.Status)
	assert.Equal(t, api.Paid, got.PaymentStatus)
	assert.Equal(t, int64(500050), got.Price)
	require.Len(t, got.StatusTimeline, 2)
	assert.Equal(t, api.System, got.StatusTimeline[1].UpdatedBy)
	require.NotNil(t, got.VehicleInfo.VehicleMake)
	assert.Equal(t, "Toyota", *got.VehicleInfo.VehicleMake)
	assert.Nil(t, got.VehicleInfo.Image)
	assert.Nil(t, got.Notes)

	req.Status = models.StatusCancelled
	assert.Equal(t, models.CancelledLabel, ToApiWashRequest(req).StepLabel)
}

func TestToApiWashRequestsNeverNil(t *testing.T) {
	assert.NotNil(t, ToApiWashRequests(nil))
	assert.NotNil(t, ToApiTransactions(nil))
}

func TestToApiTransaction(t *testing.T) {
	paid := time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)
	tx := &models.Transaction{
		Reference: "R1",
		Amount:    500000,
		Purpose:   models.PurposeWashRequest,
		Status:    models.COMPLETED,
		Granted:   true,
		PaidAt:    &paid,
	}

	got := ToApiTransaction(tx)

	assert.Equal(t, api.TransactionStatusCompleted, got.Status)
	assert.True(t, got.Granted)
	assert.Equal(t, &paid, got.PaidAt)
	assert.Nil(t, got.AuthorizationUrl)
}

func TestToApiPaymentVerification(t *testing.T) {
	v := &gateway.Verification{Reference: "R1", Status: "success", Success: true, PaidAmount: 500000}

	t.Run("Completed", func(t *testing.T) {
		result := &payments.Result{
			Outcome:     payments.OutcomeCompleted,
			Transaction: &models.Transaction{Reference: "R1", Status: models.COMPLETED},
			Granted:     true,
		}

		got := ToApiPaymentVerification(result, v)

		assert.Equal(t, "completed", got.Outcome)
		assert.Equal(t, api.TransactionStatusCompleted, got.Status)
		require.NotNil(t, got.Granted)
		assert.True(t, *got.Granted)
	})

	t.Run("Unknown Reference", func(t *testing.T) {
		got := ToApiPaymentVerification(&payments.Result{Outcome: payments.OutcomeNotFound}, v)

		assert.Equal(t, "R1", got.Reference)
		assert.Nil(t, got.Granted)
	})
}

func TestToDomainBookInput(t *testing.T) {
	notes := "interior too"
	body := &api.NewWashRequest{
		VehicleId:   "veh1",
		OutletId:    "outlet1",
		ServiceType: "full",
		Price:       decimal.RequireFromString("5000.50"),
		Notes:       &notes,
	}

	in := ToDomainBookInput(body, "user1", "user1@example.com")

	assert.Equal(t, "user1", in.UserID)
	assert.Equal(t, "interior too", in.Notes)
	assert.True(t, in.Price.Equal(decimal.RequireFromString("5000.5")))
}
