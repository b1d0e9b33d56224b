package models

import (
	"time"
)

// TransactionStatus defines the possible states of a payment transaction.
type TransactionStatus string

const (
	INITIATED TransactionStatus = "initiated"
	COMPLETED TransactionStatus = "completed"
	CANCELLED TransactionStatus = "cancelled"
)

// Gateway and purpose values recorded on a transaction.
const (
	GatewayPaystack     = "paystack"
	PurposeWashRequest  = "wash_request"
	PurposeSubscription = "subscription"
	PurposeOther        = "other"
)

// Transaction is one payment attempt, keyed by the gateway reference.
// Amount is stored in the gateway's minor unit (kobo).
type Transaction struct {
	Reference        string            `json:"reference" dynamodbav:"reference"`
	UserId           string            `json:"user_id" dynamodbav:"user_id"`
	Email            string            `json:"email" dynamodbav:"email"`
	Amount           int64             `json:"amount" dynamodbav:"amount"`
	Gateway          string            `json:"gateway" dynamodbav:"gateway"`
	Purpose          string            `json:"purpose" dynamodbav:"purpose"`
	AuthorizationURL string            `json:"authorization_url,omitempty" dynamodbav:"authorization_url,omitempty"`
	Status           TransactionStatus `json:"status" dynamodbav:"status"`
	Granted          bool              `json:"granted" dynamodbav:"granted"`
	PaidAt           *time.Time        `json:"paid_at,omitempty" dynamodbav:"paid_at,omitempty"`
	CreatedAt        time.Time         `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at" dynamodbav:"updated_at"`
}

// IsTerminal reports whether the transaction can no longer change status.
func (t *Transaction) IsTerminal() bool {
	return t.Status == COMPLETED || t.Status == CANCELLED
}

// PaymentStatus tracks whether a wash request has been paid for.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Actor identifies who caused a wash request status change.
type Actor string

const (
	ActorUser   Actor = "user"
	ActorOutlet Actor = "outlet"
	ActorSystem Actor = "system"
)

// TimelineEntry is one append-only record of a status change.
type TimelineEntry struct {
	Status    WashStatus `json:"status" dynamodbav:"status"`
	Timestamp time.Time  `json:"timestamp" dynamodbav:"timestamp"`
	UpdatedBy Actor      `json:"updated_by" dynamodbav:"updated_by"`
}

// VehicleInfo is the snapshot of the vehicle taken when the wash was booked.
type VehicleInfo struct {
	VehicleType  string `json:"vehicle_type" dynamodbav:"vehicle_type"`
	VehicleMake  string `json:"vehicle_make" dynamodbav:"vehicle_make"`
	VehicleModel string `json:"vehicle_model" dynamodbav:"vehicle_model"`
	LicensePlate string `json:"license_plate" dynamodbav:"license_plate"`
	VehicleColor string `json:"vehicle_color" dynamodbav:"vehicle_color"`
	Image        string `json:"image,omitempty" dynamodbav:"image,omitempty"`
}

// WashRequest is one booking at an outlet.
// Price is stored in minor units (kobo).
type WashRequest struct {
	Id                   string          `json:"id" dynamodbav:"id"`
	UserId               string          `json:"user_id" dynamodbav:"user_id"`
	UserEmail            string          `json:"user_email" dynamodbav:"user_email"`
	VehicleId            string          `json:"vehicle_id" dynamodbav:"vehicle_id"`
	VehicleInfo          VehicleInfo     `json:"vehicle_info" dynamodbav:"vehicle_info"`
	OutletId             string          `json:"outlet_id" dynamodbav:"outlet_id"`
	OutletName           string          `json:"outlet_name" dynamodbav:"outlet_name"`
	OutletLocation       string          `json:"outlet_location" dynamodbav:"outlet_location"`
	ServiceType          string          `json:"service_type" dynamodbav:"service_type"`
	Price                int64           `json:"price" dynamodbav:"price"`
	Notes                string          `json:"notes,omitempty" dynamodbav:"notes,omitempty"`
	TransactionReference string          `json:"transaction_reference" dynamodbav:"transaction_reference"`
	WashCode             string          `json:"wash_code" dynamodbav:"wash_code"`
	Status               WashStatus      `json:"status" dynamodbav:"status"`
	CurrentStep          int             `json:"current_step" dynamodbav:"current_step"`
	StatusTimeline       []TimelineEntry `json:"status_timeline" dynamodbav:"status_timeline"`
	PaymentStatus        PaymentStatus   `json:"payment_status" dynamodbav:"payment_status"`
	UserRating           *int            `json:"user_rating,omitempty" dynamodbav:"user_rating,omitempty"`
	UserReview           *string         `json:"user_review,omitempty" dynamodbav:"user_review,omitempty"`
	ReviewedAt           *time.Time      `json:"reviewed_at,omitempty" dynamodbav:"reviewed_at,omitempty"`
	CompletedAt          *time.Time      `json:"completed_at,omitempty" dynamodbav:"completed_at,omitempty"`
	CancelledAt          *time.Time      `json:"cancelled_at,omitempty" dynamodbav:"cancelled_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at" dynamodbav:"updated_at"`
}

// LastTimelineAt returns the timestamp of the most recent timeline entry, or
// the zero time when the timeline is empty.
func (w *WashRequest) LastTimelineAt() time.Time {
	if len(w.StatusTimeline) == 0 {
		return time.Time{}
	}
	return w.StatusTimeline[len(w.StatusTimeline)-1].Timestamp
}

// Outlet is the subset of the outlet record this service reads and writes.
// RatingSum and RatingCount are the running tally behind Rating.
type Outlet struct {
	Id          string  `json:"id" dynamodbav:"id"`
	Name        string  `json:"name" dynamodbav:"name"`
	Location    string  `json:"location" dynamodbav:"location"`
	Rating      float64 `json:"rating" dynamodbav:"rating"`
	RatingSum   int64   `json:"-" dynamodbav:"rating_sum"`
	RatingCount int64   `json:"-" dynamodbav:"rating_count"`
	IsActive    bool    `json:"is_active" dynamodbav:"is_active"`
}

// Vehicle is the subset of the vehicle registry record needed to book a wash.
type Vehicle struct {
	Id           string `dynamodbav:"id"`
	UserId       string `dynamodbav:"user_id"`
	VehicleType  string `dynamodbav:"vehicle_type"`
	VehicleMake  string `dynamodbav:"vehicle_make"`
	VehicleModel string `dynamodbav:"vehicle_model"`
	LicensePlate string `dynamodbav:"license_plate"`
	VehicleColor string `dynamodbav:"vehicle_color"`
	Image        string `dynamodbav:"image,omitempty"`
}
