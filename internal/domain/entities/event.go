package entities

import "time"

// Analytics event types emitted by the payment-confirmation flow.
const (
	EventTypePaymentVerification = "payment_verification"
	EventTypePaymentCodeWebhook  = "payment_code_webhook"
)

// AnalyticsEvent is an append-only fact shipped to the analytics sink.
// The confirmation flow only ever writes these; nothing reads them back.

type AnalyticsEvent struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Attributes map[string]interface{} `json:"attributes"`
	Timestamp  time.Time              `json:"timestamp"`
}

// VerificationEvent describes the outcome of a verification lookup or a
// webhook-driven transition, in the shape the analytics backend expects.

type VerificationEvent struct {
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	Verified      bool      `json:"verified"`
	PackageID     string    `json:"package_id"`
	Provider      string    `json:"provider"`
	Timestamp     time.Time `json:"timestamp"`
}

func (e VerificationEvent) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"transaction_id": e.TransactionID,
		"status":         e.Status,
		"verified":       e.Verified,
		"package_id":     e.PackageID,
		"provider":       e.Provider,
		"timestamp":      e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}
