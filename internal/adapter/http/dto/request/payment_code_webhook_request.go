package request

import (
	"strings"
	"time"
)

// WebhookMetadata is the application-side correlation data the checkout flow
// attaches when the payment code is created; the provider echoes it back.
type WebhookMetadata struct {
	UserID    string `json:"userId"`
	PackageID string `json:"packageId"`
}

// PaymentCodeWebhookRequest is the provider-shaped callback payload.
//
// Providers are inconsistent about the reference field: card gateways send
// payment_code_id, some regional e-wallets send external_code_id. Both are
// accepted, payment_code_id wins.

type PaymentCodeWebhookRequest struct {
	PaymentCodeID  string          `json:"payment_code_id"`
	ExternalCodeID string          `json:"external_code_id"`
	Status         string          `json:"status"`
	ChannelCode    string          `json:"channel_code"`
	Metadata       WebhookMetadata `json:"metadata"`
	ExpiryTime     *time.Time      `json:"expiry_time,omitempty"`
}

func (r PaymentCodeWebhookRequest) ResolveCodeID() string {
	if v := strings.TrimSpace(r.PaymentCodeID); v != "" {
		return v
	}
	if v := strings.TrimSpace(r.ExternalCodeID); v != "" {
		return v
	}
	return ""
}

func (r PaymentCodeWebhookRequest) ResolveUserID() string {
	return strings.TrimSpace(r.Metadata.UserID)
}
