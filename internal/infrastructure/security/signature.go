package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
)

// SignatureHeader carries the provider's HMAC over the raw webhook body.
const SignatureHeader = "X-Callback-Signature"

var (
	ErrMissingSignature = errors.New("missing webhook signature")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// WebhookVerifier authenticates inbound webhooks before any payload field is
// trusted: HMAC-SHA256 over the raw request body with a shared secret,
// hex-encoded in the signature header.
//
// An empty secret disables verification (local/dev only); NewWebhookVerifier
// logs loudly when that happens so it cannot slip into production unnoticed.

type WebhookVerifier struct {
	secret []byte
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		log.Printf("[webhook][security] WEBHOOK_SIGNATURE_SECRET not set; signature verification DISABLED")
		return &WebhookVerifier{}
	}
	return &WebhookVerifier{secret: []byte(secret)}
}

func (v *WebhookVerifier) Enabled() bool {
	return v != nil && len(v.secret) > 0
}

// Verify checks the hex HMAC from the signature header against the raw body.
// Comparison is constant-time.
func (v *WebhookVerifier) Verify(signature string, body []byte) error {
	if !v.Enabled() {
		return nil
	}

	signature = strings.TrimSpace(signature)
	if signature == "" {
		return ErrMissingSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected)) {
		return ErrInvalidSignature
	}
	return nil
}
