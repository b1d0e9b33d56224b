// Package washrequests books washes and moves them through their lifecycle.
package washrequests

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/washflow/pkg/apperr"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/payments"
	"github.com/chris/washflow/pkg/storage"
	"github.com/chris/washflow/pkg/websockets"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const maxCodeAttempts = 5

// Status filter groups accepted by ListForUser besides the plain statuses.
const (
	FilterPending = "pending"
	FilterOngoing = "ongoing"
)

// Checkout starts the payment for a booking.
type Checkout interface {
	Initialize(ctx context.Context, in payments.InitializeInput) (*gateway.Initialization, error)
}

// BookInput describes a wash to book. Price is in major units.
type BookInput struct {
	UserID      string
	Email       string
	VehicleID   string
	OutletID    string
	ServiceType string
	Price       decimal.Decimal
	Notes       string
}

// Booking is a created wash request and the checkout to pay for it.
type Booking struct {
	WashRequest *models.WashRequest
	Payment     *gateway.Initialization
}

// StatusCounts summarises a user's requests.
type StatusCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

// Service owns the wash request lifecycle.
type Service struct {
	store     storage.WashRequestStore
	vehicles  storage.VehicleReader
	outlets   storage.OutletStore
	checkout  Checkout
	publisher websockets.Publisher
	logger    *slog.Logger
	now       func() time.Time
	newID     func() string
	newCode   func() (string, error)
}

// NewService creates a new Service.
func NewService(
	store storage.WashRequestStore,
	vehicles storage.VehicleReader,
	outlets storage.OutletStore,
	checkout Checkout,
	publisher websockets.Publisher,
	logger *slog.Logger,
) *Service {
	if publisher == nil {
		publisher = &websockets.NoOpPublisher{}
	}
	return &Service{
		store:     store,
		vehicles:  vehicles,
		outlets:   outlets,
		checkout:  checkout,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
		newCode:   NewWashCode,
	}
}

// Book checks the vehicle and outlet, starts the checkout and stores the
// request as initiated under a fresh wash code. The ledger row for the
// payment is written in the background.
func (s *Service) Book(ctx context.Context, in BookInput) (*Booking, error) {
	switch {
	case in.VehicleID == "":
		return nil, apperr.New(apperr.ErrValidation, "vehicleId is required")
	case in.OutletID == "":
		return nil, apperr.New(apperr.ErrValidation, "outletId is required")
	case strings.TrimSpace(in.ServiceType) == "":
		return nil, apperr.New(apperr.ErrValidation, "serviceType is required")
	}
	price, err := gateway.ToMinorUnits(in.Price)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicles.GetVehicle(ctx, in.VehicleID)
	if err != nil {
		return nil, notFound(err, "vehicle %s not found", in.VehicleID)
	}
	if vehicle.UserId != in.UserID {
		return nil, apperr.New(apperr.ErrForbidden, "vehicle does not belong to you")
	}

	outlet, err := s.outlets.GetOutlet(ctx, in.OutletID)
	if err != nil {
		return nil, notFound(err, "outlet %s not found", in.OutletID)
	}
	if !outlet.IsActive {
		return nil, apperr.New(apperr.ErrValidation, "outlet %s is not accepting bookings", outlet.Name)
	}

	init, err := s.checkout.Initialize(ctx, payments.InitializeInput{
		UserID:  in.UserID,
		Email:   in.Email,
		Amount:  in.Price,
		Purpose: models.PurposeWashRequest,
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	req := &models.WashRequest{
		Id:        s.newID(),
		UserId:    in.UserID,
		UserEmail: in.Email,
		VehicleId: vehicle.Id,
		VehicleInfo: models.VehicleInfo{
			VehicleType:  vehicle.VehicleType,
			VehicleMake:  vehicle.VehicleMake,
			VehicleModel: vehicle.VehicleModel,
			LicensePlate: vehicle.LicensePlate,
			VehicleColor: vehicle.VehicleColor,
			Image:        vehicle.Image,
		},
		OutletId:             outlet.Id,
		OutletName:           outlet.Name,
		OutletLocation:       outlet.Location,
		ServiceType:          in.ServiceType,
		Price:                price,
		Notes:                in.Notes,
		TransactionReference: init.Reference,
		Status:               models.StatusInitiated,
		CurrentStep:          models.StatusInitiated.Index(),
		StatusTimeline: []models.TimelineEntry{
			{Status: models.StatusInitiated, Timestamp: now, UpdatedBy: models.ActorUser},
		},
		PaymentStatus: models.PaymentPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.create(ctx, req)
	if err != nil {
		// The checkout exists at the gateway but nothing will ever grant it.
		s.logger.Error("orphaned checkout, wash request not stored",
			"reference", init.Reference,
			"user_id", in.UserID,
			"outlet_id", outlet.Id,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info("wash request booked",
		"wash_request_id", created.Id,
		"reference", created.TransactionReference,
		"outlet_id", created.OutletId,
	)
	return &Booking{WashRequest: created, Payment: init}, nil
}

// create stores req, drawing a new wash code whenever the last one is held by
// another live request.
func (s *Service) create(ctx context.Context, req *models.WashRequest) (*models.WashRequest, error) {
	for attempt := 1; ; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, err
		}
		req.WashCode = code

		created, err := s.store.CreateWashRequest(ctx, req)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, storage.ErrWashCodeTaken) {
			return nil, fmt.Errorf("failed to create wash request: %w", err)
		}
		if attempt == maxCodeAttempts {
			return nil, apperr.New(apperr.ErrConflict, "could not allocate a wash code, please retry")
		}
		s.logger.Warn("wash code collision", "attempt", attempt)
	}
}

// Get returns a request owned by userID.
func (s *Service) Get(ctx context.Context, id, userID string) (*models.WashRequest, error) {
	req, err := s.store.GetWashRequest(ctx, id)
	if err != nil {
		return nil, notFound(err, "wash request %s not found", id)
	}
	if req.UserId != userID {
		return nil, apperr.New(apperr.ErrForbidden, "unauthorized to access this wash request")
	}
	return req, nil
}

// ListForUser returns the user's requests, newest first, optionally filtered
// by a status or a status group, with counts over all of them.
func (s *Service) ListForUser(ctx context.Context, userID, filter string) ([]models.WashRequest, StatusCounts, error) {
	if filter != "" && filter != FilterPending && filter != FilterOngoing && !models.WashStatus(filter).IsValid() {
		return nil, StatusCounts{}, apperr.New(apperr.ErrValidation, "unknown status filter %q", filter)
	}

	all, err := s.store.ListWashRequestsByUserID(ctx, userID)
	if err != nil {
		return nil, StatusCounts{}, fmt.Errorf("failed to list wash requests: %w", err)
	}

	var counts StatusCounts
	requests := make([]models.WashRequest, 0, len(all))
	for _, req := range all {
		group := statusGroup(req.Status)
		counts.Total++
		switch group {
		case FilterPending:
			counts.Pending++
		case FilterOngoing:
			counts.Ongoing++
		case string(models.StatusCompleted):
			counts.Completed++
		case string(models.StatusCancelled):
			counts.Cancelled++
		}
		if filter == "" || filter == string(req.Status) || filter == group {
			requests = append(requests, req)
		}
	}
	return requests, counts, nil
}

func statusGroup(status models.WashStatus) string {
	switch status {
	case models.StatusInitiated, models.StatusScheduled:
		return FilterPending
	case models.StatusCompleted, models.StatusCancelled:
		return string(status)
	default:
		return FilterOngoing
	}
}

// Cancel cancels a request on behalf of its owner.
func (s *Service) Cancel(ctx context.Context, id, userID string) (*models.WashRequest, error) {
	req, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := CheckCancel(req.Status); err != nil {
		return nil, err
	}
	if err := s.transition(ctx, req, models.StatusCancelled, models.ActorUser); err != nil {
		return nil, err
	}
	return req, nil
}

// VerifyCode looks up the request presented at an outlet. Finished requests
// cannot be presented again.
func (s *Service) VerifyCode(ctx context.Context, code string) (*models.WashRequest, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperr.New(apperr.ErrValidation, "wash code is required")
	}
	req, err := s.store.GetWashRequestByCode(ctx, code)
	if err != nil {
		return nil, notFound(err, "invalid wash code")
	}
	if req.Status.IsTerminal() {
		return nil, apperr.New(apperr.ErrInvalidState, "wash request is already %s", req.Status)
	}
	return req, nil
}

// AdvanceByCode moves the request holding code to target on behalf of the
// outlet it was booked at.
func (s *Service) AdvanceByCode(ctx context.Context, code string, target models.WashStatus, outletID string) (*models.WashRequest, error) {
	code = strings.TrimSpace(code)
	if code == "" || target == "" {
		return nil, apperr.New(apperr.ErrValidation, "wash code and status are required")
	}
	req, err := s.store.GetWashRequestByCode(ctx, code)
	if err != nil {
		return nil, notFound(err, "invalid wash code")
	}
	if req.OutletId != outletID {
		return nil, apperr.New(apperr.ErrForbidden, "wash request belongs to another outlet")
	}
	if err := CheckAdvance(req.Status, target); err != nil {
		return nil, err
	}
	if err := s.transition(ctx, req, target, models.ActorOutlet); err != nil {
		return nil, err
	}
	return req, nil
}

// GrantPayment marks the request paid for by reference as paid and scheduled.
// Requests already past initiated are left alone.
func (s *Service) GrantPayment(ctx context.Context, reference string) error {
	req, err := s.store.GetWashRequestByReference(ctx, reference)
	if err != nil {
		return notFound(err, "no wash request for reference %s", reference)
	}

	switch {
	case req.Status == models.StatusCancelled:
		s.logger.Warn("payment completed for a cancelled wash request",
			"wash_request_id", req.Id,
			"reference", reference,
		)
		return nil
	case req.Status != models.StatusInitiated:
		return nil
	}

	req.PaymentStatus = models.PaymentPaid
	err = s.transition(ctx, req, models.StatusScheduled, models.ActorSystem)
	if errors.Is(err, apperr.ErrConflict) {
		current, getErr := s.store.GetWashRequest(ctx, req.Id)
		if getErr == nil && current.Status != models.StatusInitiated {
			return nil
		}
	}
	return err
}

// transition applies the change to req and persists it conditionally on the
// status req was read with.
func (s *Service) transition(ctx context.Context, req *models.WashRequest, to models.WashStatus, actor models.Actor) error {
	from := req.Status
	apply(req, to, actor, s.now())

	if err := s.store.TransitionWashRequest(ctx, req, from); err != nil {
		if errors.Is(err, storage.ErrConditionFailed) {
			return apperr.New(apperr.ErrConflict, "wash request %s was updated concurrently, please retry", req.Id)
		}
		return fmt.Errorf("failed to update wash request %s: %w", req.Id, err)
	}

	s.logger.Info("wash request status changed",
		"wash_request_id", req.Id,
		"from", from,
		"to", to,
		"actor", actor,
	)
	s.notify(ctx, req)
	return nil
}

func (s *Service) notify(ctx context.Context, req *models.WashRequest) {
	entry := req.StatusTimeline[len(req.StatusTimeline)-1]
	payload := websockets.WashStatusUpdatePayload{
		WashRequestID: req.Id,
		WashCode:      req.WashCode,
		Status:        string(req.Status),
		CurrentStep:   req.CurrentStep,
		PaymentStatus: string(req.PaymentStatus),
		UpdatedBy:     string(entry.UpdatedBy),
		StepLabel:     req.StepLabel(),
		Timestamp:     entry.Timestamp,
	}

	msg := websockets.Message{Type: websockets.MessageTypeWashStatusUpdate, Payload: payload}
	if err := s.publisher.Publish(ctx, req.UserId, msg); err != nil {
		s.logger.Error("failed to publish websocket message", "wash_request_id", req.Id, "error", err)
	}
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.New(apperr.ErrNotFound, format, args...)
	}
	return err
}
