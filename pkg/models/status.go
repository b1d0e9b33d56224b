package models

// WashStatus is the lifecycle status of a wash request.
type WashStatus string

const (
	StatusInitiated       WashStatus = "initiated"
	StatusScheduled       WashStatus = "scheduled"
	StatusOrderReceived   WashStatus = "order_received"
	StatusVehicleChecked  WashStatus = "vehicle_checked"
	StatusInProgress      WashStatus = "in_progress"
	StatusDryingFinishing WashStatus = "drying_finishing"
	StatusReadyForPickup  WashStatus = "ready_for_pickup"
	StatusCompleted       WashStatus = "completed"
	StatusCancelled       WashStatus = "cancelled"
)

// StatusOrder is the canonical progression. A request's CurrentStep is the
// index of its status in this list. Cancelled is a side-state and is not part
// of the order.
var StatusOrder = []WashStatus{
	StatusInitiated,
	StatusScheduled,
	StatusOrderReceived,
	StatusVehicleChecked,
	StatusInProgress,
	StatusDryingFinishing,
	StatusReadyForPickup,
	StatusCompleted,
}

// StepLabels are the customer-facing labels for each step in StatusOrder.
var StepLabels = []string{
	"Wash Request Initiated",
	"Wash Booked Successfully",
	"Wash Order Received",
	"Vehicle Checked",
	"Wash in Progress",
	"Drying & Finishing",
	"Ready for Pickup",
	"Wash Completed",
}

// Index returns the position of s in StatusOrder, or -1 if s is not part of
// the ordered progression.
func (s WashStatus) Index() int {
	for i, st := range StatusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no further status changes are allowed.
func (s WashStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsValid reports whether s is a known status.
func (s WashStatus) IsValid() bool {
	return s == StatusCancelled || s.Index() >= 0
}

// CancelledLabel is shown instead of a step label once a request is cancelled.
const CancelledLabel = "Wash Cancelled"

// StepLabel returns the customer-facing label for the request's status.
func (w *WashRequest) StepLabel() string {
	if w.Status == StatusCancelled {
		return CancelledLabel
	}
	if w.CurrentStep < 0 || w.CurrentStep >= len(StepLabels) {
		return ""
	}
	return StepLabels[w.CurrentStep]
}
