package gateway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"

	"github.com/chris/washflow/pkg/apperr"
)

// SignatureHeader carries the hex HMAC-SHA512 of the raw webhook body.
const SignatureHeader = "X-Paystack-Signature"

const eventChargeSuccess = "charge.success"

// ErrSignatureInvalid is returned when a webhook body does not match its signature.
var ErrSignatureInvalid = apperr.New(apperr.ErrValidation, "invalid webhook signature")

// Event is a decoded webhook delivery.
type Event struct {
	Event string     `json:"event"`
	Data  chargeData `json:"data"`
}

// IsChargeSuccess reports whether the event reports a successful charge.
func (e *Event) IsChargeSuccess() bool {
	return e.Event == eventChargeSuccess
}

// Reference returns the payment reference the event is about.
func (e *Event) Reference() string {
	return e.Data.Reference
}

// Amount returns the charged amount in minor units.
func (e *Event) Amount() int64 {
	return e.Data.Amount
}

// DecodeWebhook verifies signature against the exact bytes received and only
// then parses the body.
func DecodeWebhook(body []byte, signature, secret string) (*Event, error) {
	if signature == "" {
		return nil, ErrSignatureInvalid
	}
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return nil, ErrSignatureInvalid
	}

	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(mac.Sum(nil), expected) {
		return nil, ErrSignatureInvalid
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, apperr.New(apperr.ErrValidation, "malformed webhook body: %v", err)
	}

	return &event, nil
}

// Sign computes the signature Paystack would send for body.
func Sign(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
