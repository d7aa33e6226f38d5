package entities

import "time"

// TransactionStatus represents the reconciliation state of a payment attempt.
//
// COMPLETED and FAILED are terminal: once a transaction reaches either one,
// no further transition is accepted. EXPIRED is not terminal — a late
// settlement may still move an expired payment code to COMPLETED.

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusExpired   TransactionStatus = "EXPIRED"
)

func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusFailed
}

func (s TransactionStatus) IsValid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted,
		TransactionStatusFailed, TransactionStatusExpired:
		return true
	}
	return false
}

// Transaction is the local record of one payment attempt, keyed by the
// provider-assigned code id.
//
// Storage model (DynamoDB):
//   - PK: id
//
// ID, UserID, PackageID and Provider are immutable after first write; only
// Status and UpdatedAt mutate, and always together.

type Transaction struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	PackageID string            `json:"package_id"`
	Provider  string            `json:"provider"`
	Status    TransactionStatus `json:"status"`
	UpdatedAt time.Time         `json:"updated_at"`

	// ExpiresAt is informational only: cleanup of stale payment codes is a
	// separate concern, nothing in the confirmation flow enforces it.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
