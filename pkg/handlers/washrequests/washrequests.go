package washrequests

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/handlers/respond"
	"github.com/chris/washflow/pkg/mapping"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/washrequests"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Lifecycle is the wash request service as seen by the HTTP layer.
type Lifecycle interface {
	Book(ctx context.Context, in washrequests.BookInput) (*washrequests.Booking, error)
	Get(ctx context.Context, id, userID string) (*models.WashRequest, error)
	ListForUser(ctx context.Context, userID, filter string) ([]models.WashRequest, washrequests.StatusCounts, error)
	Cancel(ctx context.Context, id, userID string) (*models.WashRequest, error)
	VerifyCode(ctx context.Context, code string) (*models.WashRequest, error)
	AdvanceByCode(ctx context.Context, code string, target models.WashStatus, outletID string) (*models.WashRequest, error)
}

// Reviewer stores a customer's review of a finished wash.
type Reviewer interface {
	SubmitReview(ctx context.Context, id, userID string, rating int, text string) (*models.WashRequest, error)
}

// WashRequestsHandler holds the dependencies for wash request handlers.
type WashRequestsHandler struct {
	Requests Lifecycle
	Reviews  Reviewer
	Logger   *slog.Logger
}

// NewWashRequestsHandler creates a new WashRequestsHandler.
func NewWashRequestsHandler(requests Lifecycle, reviews Reviewer, logger *slog.Logger) *WashRequestsHandler {
	return &WashRequestsHandler{Requests: requests, Reviews: reviews, Logger: logger}
}

// CreateWashRequest books a wash and returns the checkout to pay for it.
func (h *WashRequestsHandler) CreateWashRequest(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var body api.NewWashRequest
	if !respond.DecodeBody(w, r, &body) {
		return
	}

	booking, err := h.Requests.Book(r.Context(), mapping.ToDomainBookInput(&body, caller.ID, caller.Email))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, api.BookingResponse{
		Success: true,
		Message: "Wash request created, complete payment to confirm your booking",
		Data: api.Booking{
			WashRequest: *mapping.ToApiWashRequest(booking.WashRequest),
			Payment:     *mapping.ToApiPaymentInitialization(booking.Payment),
		},
	})
}

// ListWashRequests returns the caller's wash requests with per-group counts.
func (h *WashRequestsHandler) ListWashRequests(w http.ResponseWriter, r *http.Request, params api.ListWashRequestsParams) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var filter string
	if params.Status != nil {
		filter = *params.Status
	}

	reqs, counts, err := h.Requests.ListForUser(r.Context(), caller.ID, filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, api.WashRequestListResponse{
		Success: true,
		Message: "Wash requests retrieved successfully",
		Data:    mapping.ToApiWashRequests(reqs),
		Meta:    mapping.ToApiStatusCounts(counts),
	})
}

// GetWashRequest returns one of the caller's wash requests.
func (h *WashRequestsHandler) GetWashRequest(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	req, err := h.Requests.Get(r.Context(), id.String(), caller.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	h.single(w, "Wash request retrieved successfully", req)
}

// CancelWashRequest cancels one of the caller's wash requests.
func (h *WashRequestsHandler) CancelWashRequest(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}

	req, err := h.Requests.Cancel(r.Context(), id.String(), caller.ID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	h.single(w, "Wash request cancelled successfully", req)
}

// VerifyWashCode looks up the request a customer presents at an outlet.
func (h *WashRequestsHandler) VerifyWashCode(w http.ResponseWriter, r *http.Request) {
	var body api.VerifyWashCodeRequest
	if !respond.DecodeBody(w, r, &body) {
		return
	}

	req, err := h.Requests.VerifyCode(r.Context(), body.WashCode)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	h.single(w, "Wash code verified successfully", req)
}

// UpdateWashStatus advances a request on behalf of the caller's outlet.
func (h *WashRequestsHandler) UpdateWashStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	if caller.OutletID == "" {
		respond.Message(w, http.StatusForbidden, "No outlet is associated with this account")
		return
	}
	var body api.UpdateWashStatusRequest
	if !respond.DecodeBody(w, r, &body) {
		return
	}

	req, err := h.Requests.AdvanceByCode(r.Context(), body.WashCode, models.WashStatus(body.Status), caller.OutletID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	h.single(w, "Wash status updated successfully", req)
}

// SubmitWashReview stores the caller's rating of a completed wash.
func (h *WashRequestsHandler) SubmitWashReview(w http.ResponseWriter, r *http.Request, id openapi_types.UUID) {
	caller, ok := respond.Caller(w, r)
	if !ok {
		return
	}
	var body api.ReviewRequest
	if !respond.DecodeBody(w, r, &body) {
		return
	}
	var text string
	if body.Review != nil {
		text = *body.Review
	}

	req, err := h.Reviews.SubmitReview(r.Context(), id.String(), caller.ID, body.Rating, text)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	h.single(w, "Review submitted successfully", req)
}

func (h *WashRequestsHandler) single(w http.ResponseWriter, message string, req *models.WashRequest) {
	respond.JSON(w, http.StatusOK, api.WashRequestResponse{
		Success: true,
		Message: message,
		Data:    *mapping.ToApiWashRequest(req),
	})
}
