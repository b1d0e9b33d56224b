package websockets

import "time"

// MessageType defines the type of a WebSocket message.
type MessageType string

const (
	// MessageTypeWashStatusUpdate is sent whenever a wash request changes status.
	MessageTypeWashStatusUpdate MessageType = "washStatusUpdate"
)

// Message represents a generic WebSocket message.
type Message struct {
	Type    MessageType `json:"type"`
	Payload interface{} `json:"payload"`
}

// WashStatusUpdatePayload is the payload for a washStatusUpdate message.
type WashStatusUpdatePayload struct {
	WashRequestID string    `json:"wash_request_id"`
	WashCode      string    `json:"wash_code"`
	Status        string    `json:"status"`
	CurrentStep   int       `json:"current_step"`
	StepLabel     string    `json:"step_label,omitempty"`
	PaymentStatus string    `json:"payment_status"`
	UpdatedBy     string    `json:"updated_by"`
	Timestamp     time.Time `json:"timestamp"`
}
