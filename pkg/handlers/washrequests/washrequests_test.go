package washrequests

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/handlers/washrequests/mocks"
	"github.com/chris/washflow/pkg/identity"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/washrequests"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	user   = &identity.Identity{ID: "user1", Email: "user1@example.com", Role: identity.RoleUser}
	outlet = &identity.Identity{ID: "outlet1", Role: identity.RoleOutlet, OutletID: "outlet1"}
	reqID  = uuid.MustParse("6f1c2f9e-4b7a-4d51-9a57-0c7f8e1d2b3a")
)

func newHandler(t *testing.T) (*WashRequestsHandler, *mocks.Lifecycle, *mocks.Reviewer) {
	requests := mocks.NewLifecycle(t)
	reviews := mocks.NewReviewer(t)
	return NewWashRequestsHandler(requests, reviews, slog.New(slog.DiscardHandler)), requests, reviews
}

func as(id *identity.Identity, method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	return req.WithContext(identity.WithIdentity(req.Context(), id))
}

func washRequest(status models.WashStatus) *models.WashRequest {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &models.WashRequest{
		Id:                   reqID.String(),
		UserId:               "user1",
		OutletId:             "outlet1",
		Price:                500000,
		TransactionReference: "R1",
		WashCode:             "12345",
		Status:               status,
		CurrentStep:          status.Index(),
		StatusTimeline:       []models.TimelineEntry{{Status: status, Timestamp: now, UpdatedBy: models.ActorUser}},
		PaymentStatus:        models.PaymentPaid,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) api.WashRequestResponse {
	t.Helper()
	var resp api.WashRequestResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestCreateWashRequest(t *testing.T) {
	body := []byte(`{"vehicle_id":"veh1","outlet_id":"outlet1","service_type":"full","price":5000}`)

	t.Run("Success", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		initiated := washRequest(models.StatusInitiated)
		initiated.PaymentStatus = models.PaymentPending
		requests.On("Book", mock.Anything, mock.MatchedBy(func(in washrequests.BookInput) bool {
			return in.UserID == "user1" && in.VehicleID == "veh1" && in.Price.Equal(decimal.NewFromInt(5000))
		})).Return(&washrequests.Booking{
			WashRequest: initiated,
			Payment:     &gateway.Initialization{Reference: "R1", AuthorizationURL: "https://checkout/R1"},
		}, nil)

		rr := httptest.NewRecorder()
		h.CreateWashRequest(rr, as(user, http.MethodPost, "/wash-requests", body))

		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp api.BookingResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, api.WashStatusInitiated, resp.Data.WashRequest.Status)
		assert.Equal(t, api.Pending, resp.Data.WashRequest.PaymentStatus)
		assert.Equal(t, "https://checkout/R1", resp.Data.Payment.AuthorizationUrl)
	})

	t.Run("Vehicle Not Owned", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("Book", mock.Anything, mock.Anything).Return(nil, apperr.New(apperr.ErrForbidden, "vehicle does not belong to you"))

		rr := httptest.NewRecorder()
		h.CreateWashRequest(rr, as(user, http.MethodPost, "/wash-requests", body))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		var resp api.ErrorResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "vehicle does not belong to you", resp.Message)
	})
}

func TestListWashRequests(t *testing.T) {
	h, requests, _ := newHandler(t)
	filter := "ongoing"
	requests.On("ListForUser", mock.Anything, "user1", "ongoing").Return(
		[]models.WashRequest{*washRequest(models.StatusInProgress)},
		washrequests.StatusCounts{Total: 3, Pending: 1, Ongoing: 1, Completed: 1},
		nil,
	)

	rr := httptest.NewRecorder()
	h.ListWashRequests(rr, as(user, http.MethodGet, "/wash-requests?status=ongoing", nil), api.ListWashRequestsParams{Status: &filter})

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.WashRequestListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Wash in Progress", resp.Data[0].StepLabel)
	assert.Equal(t, api.StatusCounts{Total: 3, Pending: 1, Ongoing: 1, Completed: 1}, resp.Meta)
}

func TestGetAndCancel(t *testing.T) {
	t.Run("Get", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("Get", mock.Anything, reqID.String(), "user1").Return(washRequest(models.StatusScheduled), nil)

		rr := httptest.NewRecorder()
		h.GetWashRequest(rr, as(user, http.MethodGet, "/wash-requests/"+reqID.String(), nil), reqID)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, reqID, decode(t, rr).Data.Id)
	})

	t.Run("Get Missing", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("Get", mock.Anything, reqID.String(), "user1").Return(nil, apperr.New(apperr.ErrNotFound, "wash request not found"))

		rr := httptest.NewRecorder()
		h.GetWashRequest(rr, as(user, http.MethodGet, "/wash-requests/"+reqID.String(), nil), reqID)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Cancel", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("Cancel", mock.Anything, reqID.String(), "user1").Return(washRequest(models.StatusCancelled), nil)

		rr := httptest.NewRecorder()
		h.CancelWashRequest(rr, as(user, http.MethodDelete, "/wash-requests/"+reqID.String(), nil), reqID)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, models.CancelledLabel, decode(t, rr).Data.StepLabel)
	})

	t.Run("Cancel Too Late", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("Cancel", mock.Anything, reqID.String(), "user1").Return(nil, apperr.New(apperr.ErrInvalidTransition, "cannot cancel"))

		rr := httptest.NewRecorder()
		h.CancelWashRequest(rr, as(user, http.MethodDelete, "/wash-requests/"+reqID.String(), nil), reqID)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestVerifyWashCode(t *testing.T) {
	h, requests, _ := newHandler(t)
	requests.On("VerifyCode", mock.Anything, "12345").Return(washRequest(models.StatusScheduled), nil)

	rr := httptest.NewRecorder()
	h.VerifyWashCode(rr, as(outlet, http.MethodPost, "/wash-requests/verify-code", []byte(`{"wash_code":"12345"}`)))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "12345", decode(t, rr).Data.WashCode)
}

func TestUpdateWashStatus(t *testing.T) {
	body := []byte(`{"wash_code":"12345","status":"order_received"}`)

	t.Run("Uses Caller Outlet", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("AdvanceByCode", mock.Anything, "12345", models.StatusOrderReceived, "outlet1").
			Return(washRequest(models.StatusOrderReceived), nil)

		rr := httptest.NewRecorder()
		h.UpdateWashStatus(rr, as(outlet, http.MethodPatch, "/wash-requests/update-status", body))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.WashStatusOrderReceived, decode(t, rr).Data.Status)
	})

	t.Run("Agent Without Outlet", func(t *testing.T) {
		h, _, _ := newHandler(t)
		agent := &identity.Identity{ID: "agent1", Role: identity.RoleAgent}

		rr := httptest.NewRecorder()
		h.UpdateWashStatus(rr, as(agent, http.MethodPatch, "/wash-requests/update-status", body))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("Skipped Step", func(t *testing.T) {
		h, requests, _ := newHandler(t)
		requests.On("AdvanceByCode", mock.Anything, "12345", models.StatusOrderReceived, "outlet1").
			Return(nil, apperr.New(apperr.ErrInvalidTransition, "cannot move from initiated"))

		rr := httptest.NewRecorder()
		h.UpdateWashStatus(rr, as(outlet, http.MethodPatch, "/wash-requests/update-status", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestSubmitWashReview(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		h, _, reviews := newHandler(t)
		reviewed := washRequest(models.StatusCompleted)
		rating := 5
		reviewed.UserRating = &rating
		reviews.On("SubmitReview", mock.Anything, reqID.String(), "user1", 5, "spotless").Return(reviewed, nil)

		rr := httptest.NewRecorder()
		h.SubmitWashReview(rr, as(user, http.MethodPatch, "/wash-requests/"+reqID.String()+"/review", []byte(`{"rating":5,"review":"spotless"}`)), reqID)

		assert.Equal(t, http.StatusOK, rr.Code)
		resp := decode(t, rr)
		require.NotNil(t, resp.Data.UserRating)
		assert.Equal(t, 5, *resp.Data.UserRating)
	})

	t.Run("Already Reviewed", func(t *testing.T) {
		h, _, reviews := newHandler(t)
		reviews.On("SubmitReview", mock.Anything, reqID.String(), "user1", 4, "").Return(nil, apperr.New(apperr.ErrConflict, "already reviewed"))

		rr := httptest.NewRecorder()
		h.SubmitWashReview(rr, as(user, http.MethodPatch, "/wash-requests/"+reqID.String()+"/review", []byte(`{"rating":4}`)), reqID)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
