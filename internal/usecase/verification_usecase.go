package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lumalens/internal/domain/entities"
	"lumalens/internal/usecase/interfaces"
)

var (
	ErrMissingTransactionID = errors.New("missing transaction id")
	ErrTransactionNotFound  = errors.New("transaction not found")
)

// statusNotFound is what the analytics event carries for a verification
// lookup miss; it is not a transaction status.
const statusNotFound = "not_found"

// VerificationResult is what the client polls for after redirect-back.

type VerificationResult struct {
	Verified  bool
	Status    entities.TransactionStatus
	PackageID string
	Timestamp time.Time
}

// IVerificationUseCase answers synchronous post-checkout verification queries.

type IVerificationUseCase interface {
	VerifyTransaction(ctx context.Context, transactionID string) (VerificationResult, error)
}

type VerificationUseCase struct {
	repo    interfaces.ITransactionRepository
	tracker interfaces.IEventTracker
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(repo interfaces.ITransactionRepository, tracker interfaces.IEventTracker) *VerificationUseCase {
	return &VerificationUseCase{repo: repo, tracker: tracker}
}

// VerifyTransaction reads the current transaction state. Every lookup — hit
// or miss — emits exactly one analytics event; a store failure emits none
// (nothing concrete to report) and surfaces as a dependency error.
func (u *VerificationUseCase) VerifyTransaction(ctx context.Context, transactionID string) (VerificationResult, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return VerificationResult{}, ErrMissingTransactionID
	}

	tx, err := u.repo.GetByID(ctx, transactionID)
	if err != nil {
		log.Printf("[verify][usecase] lookup failed transaction_id=%s err=%v", transactionID, err)
		return VerificationResult{}, err
	}

	if tx.ID == "" {
		log.Printf("[verify][usecase] transaction not found transaction_id=%s", transactionID)
		u.tracker.Track(entities.EventTypePaymentVerification, entities.VerificationEvent{
			TransactionID: transactionID,
			Status:        statusNotFound,
			Verified:      false,
			Timestamp:     time.Now().UTC(),
		}.Attributes())
		return VerificationResult{}, ErrTransactionNotFound
	}

	verified := tx.Status == entities.TransactionStatusCompleted
	u.tracker.Track(entities.EventTypePaymentVerification, entities.VerificationEvent{
		TransactionID: tx.ID,
		Status:        string(tx.Status),
		Verified:      verified,
		PackageID:     tx.PackageID,
		Provider:      tx.Provider,
		Timestamp:     time.Now().UTC(),
	}.Attributes())

	log.Printf("[verify][usecase] lookup success transaction_id=%s status=%s verified=%t", tx.ID, tx.Status, verified)
	return VerificationResult{
		Verified:  verified,
		Status:    tx.Status,
		PackageID: tx.PackageID,
		Timestamp: tx.UpdatedAt,
	}, nil
}
