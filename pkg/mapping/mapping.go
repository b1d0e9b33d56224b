package mapping

import (
	"github.com/chris/washflow/pkg/api"
	"github.com/chris/washflow/pkg/gateway"
	"github.com/chris/washflow/pkg/models"
	"github.com/chris/washflow/pkg/payments"
	"github.com/chris/washflow/pkg/washrequests"
	"github.com/google/uuid"
)

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		Reference:        tx.Reference,
		Amount:           tx.Amount,
		Purpose:          tx.Purpose,
		Status:           api.TransactionStatus(tx.Status),
		Granted:          tx.Granted,
		AuthorizationUrl: optional(tx.AuthorizationURL),
		PaidAt:           tx.PaidAt,
		CreatedAt:        tx.CreatedAt,
	}
}

// ToApiTransactions converts a slice, never returning nil.
func ToApiTransactions(txs []models.Transaction) []api.Transaction {
	out := make([]api.Transaction, 0, len(txs))
	for i := range txs {
		out = append(out, *ToApiTransaction(&txs[i]))
	}
	return out
}

// ToApiPaymentInitialization converts a gateway checkout to its API form.
func ToApiPaymentInitialization(init *gateway.Initialization) *api.PaymentInitialization {
	return &api.PaymentInitialization{
		Reference:        init.Reference,
		AuthorizationUrl: init.AuthorizationURL,
		AccessCode:       init.AccessCode,
	}
}

// ToApiPaymentVerification combines the reconciliation result with what the
// gateway reported.
func ToApiPaymentVerification(result *payments.Result, v *gateway.Verification) *api.PaymentVerification {
	out := &api.PaymentVerification{
		Reference:     v.Reference,
		Outcome:       string(result.Outcome),
		GatewayStatus: v.Status,
		PaidAmount:    v.PaidAmount,
		Status:        api.TransactionStatusInitiated,
	}
	if result.Transaction != nil {
		out.Reference = result.Transaction.Reference
		out.Status = api.TransactionStatus(result.Transaction.Status)
		granted := result.Transaction.Granted || result.Granted
		out.Granted = &granted
	}
	return out
}

// ToApiWashRequest converts a domain WashRequest model to an API WashRequest model.
func ToApiWashRequest(req *models.WashRequest) *api.WashRequest {
	// IDs are minted as UUIDs; anything else maps to the nil UUID.
	id, _ := uuid.Parse(req.Id)

	timeline := make([]api.TimelineEntry, 0, len(req.StatusTimeline))
	for _, e := range req.StatusTimeline {
		timeline = append(timeline, api.TimelineEntry{
			Status:    api.WashStatus(e.Status),
			Timestamp: e.Timestamp,
			UpdatedBy: api.TimelineEntryUpdatedBy(e.UpdatedBy),
		})
	}

	return &api.WashRequest{
		Id:        id,
		UserId:    req.UserId,
		VehicleId: req.VehicleId,
		VehicleInfo: api.VehicleInfo{
			VehicleType:  optional(req.VehicleInfo.VehicleType),
			VehicleMake:  optional(req.VehicleInfo.VehicleMake),
			VehicleModel: optional(req.VehicleInfo.VehicleModel),
			LicensePlate: optional(req.VehicleInfo.LicensePlate),
			VehicleColor: optional(req.VehicleInfo.VehicleColor),
			Image:        optional(req.VehicleInfo.Image),
		},
		OutletId:             req.OutletId,
		OutletName:           req.OutletName,
		OutletLocation:       req.OutletLocation,
		ServiceType:          req.ServiceType,
		Price:                req.Price,
		Notes:                optional(req.Notes),
		TransactionReference: req.TransactionReference,
		WashCode:             req.WashCode,
		Status:               api.WashStatus(req.Status),
		CurrentStep:          req.CurrentStep,
		StepLabel:            req.StepLabel(),
		StatusTimeline:       timeline,
		PaymentStatus:        api.PaymentStatus(req.PaymentStatus),
		UserRating:           req.UserRating,
		UserReview:           req.UserReview,
		ReviewedAt:           req.ReviewedAt,
		CompletedAt:          req.CompletedAt,
		CancelledAt:          req.CancelledAt,
		CreatedAt:            req.CreatedAt,
		UpdatedAt:            req.UpdatedAt,
	}
}

// ToApiWashRequests converts a slice, never returning nil.
func ToApiWashRequests(reqs []models.WashRequest) []api.WashRequest {
	out := make([]api.WashRequest, 0, len(reqs))
	for i := range reqs {
		out = append(out, *ToApiWashRequest(&reqs[i]))
	}
	return out
}

func ToApiStatusCounts(c washrequests.StatusCounts) api.StatusCounts {
	return api.StatusCounts{
		Total:     c.Total,
		Pending:   c.Pending,
		Ongoing:   c.Ongoing,
		Completed: c.Completed,
		Cancelled: c.Cancelled,
	}
}

// ToDomainBookInput builds the booking input from the request body and the
// authenticated caller.
func ToDomainBookInput(body *api.NewWashRequest, userID, email string) washrequests.BookInput {
	in := washrequests.BookInput{
		UserID:      userID,
		Email:       email,
		VehicleID:   body.VehicleId,
		OutletID:    body.OutletId,
		ServiceType: body.ServiceType,
		Price:       body.Price,
	}
	if body.Notes != nil {
		in.Notes = *body.Notes
	}
	return in
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
