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
	ErrMissingUserID        = errors.New("missing metadata userId")
	ErrMissingPaymentCodeID = errors.New("missing payment code id")
)

const upsertTimeout = 10 * time.Second

// providerStatusMap is the fixed translation table from the provider's raw
// status vocabulary to the local transaction status. Raw statuses outside
// this table fail closed: logged as a warning, no transition applied.
var providerStatusMap = map[string]entities.TransactionStatus{
	"CREATED":   entities.TransactionStatusPending,
	"ACTIVE":    entities.TransactionStatusPending,
	"PAID":      entities.TransactionStatusCompleted,
	"COMPLETED": entities.TransactionStatusCompleted,
	"SETTLED":   entities.TransactionStatusCompleted,
	"SUCCEEDED": entities.TransactionStatusCompleted,
	"EXPIRED":   entities.TransactionStatusExpired,
	"FAILED":    entities.TransactionStatusFailed,
	"CANCELLED": entities.TransactionStatusFailed,
}

// MapProviderStatus translates a provider status string. The second return
// reports whether the status is actionable at all.
func MapProviderStatus(raw string) (entities.TransactionStatus, bool) {
	status, ok := providerStatusMap[strings.ToUpper(strings.TrimSpace(raw))]
	return status, ok
}

// PaymentCodeNotification is the normalized form of a provider webhook,
// built by the HTTP layer from the provider-shaped payload.

type PaymentCodeNotification struct {
	CodeID    string
	Status    string
	UserID    string
	PackageID string
	Provider  string
	ExpiresAt *time.Time
}

// WebhookOutcome reports what a delivery did. Applied is false for
// acknowledged no-ops (unrecognized provider status).

type WebhookOutcome struct {
	Applied     bool
	Transaction entities.Transaction
}

// IWebhookUseCase ingests provider payment-code notifications.

type IWebhookUseCase interface {
	ProcessPaymentCode(ctx context.Context, n PaymentCodeNotification) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	repo     interfaces.ITransactionRepository
	tracker  interfaces.IEventTracker
	provider interfaces.IProviderStatusFetcher
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

// NewWebhookUseCase wires the ingestor. provider may be nil; the provider
// cross-check is then skipped.
func NewWebhookUseCase(repo interfaces.ITransactionRepository, tracker interfaces.IEventTracker, provider interfaces.IProviderStatusFetcher) *WebhookUseCase {
	return &WebhookUseCase{repo: repo, tracker: tracker, provider: provider}
}

// ProcessPaymentCode applies one provider notification:
//
//  1. uninteresting statuses are acknowledged without touching the store, so
//     the provider's retry loop stops;
//  2. a notification without metadata.userId cannot be correlated and is
//     rejected before any mutation;
//  3. everything else becomes one conditional upsert plus one analytics
//     event. Terminal transactions absorb repeated deliveries unchanged.
func (u *WebhookUseCase) ProcessPaymentCode(ctx context.Context, n PaymentCodeNotification) (WebhookOutcome, error) {
	log.Printf("[webhook][usecase] process start code_id=%q raw_status=%q provider=%q", n.CodeID, n.Status, n.Provider)

	status, ok := MapProviderStatus(n.Status)
	if !ok {
		log.Printf("[webhook][usecase] unmapped provider status code_id=%s raw_status=%q; acknowledging without transition", n.CodeID, n.Status)
		return WebhookOutcome{Applied: false}, nil
	}

	if strings.TrimSpace(n.UserID) == "" {
		// Full metadata goes to the server log for operator diagnosis; the
		// HTTP layer returns only a generic message.
		log.Printf("[webhook][usecase] missing metadata userId code_id=%s raw_status=%s package_id=%q provider=%q", n.CodeID, n.Status, n.PackageID, n.Provider)
		return WebhookOutcome{}, ErrMissingUserID
	}

	codeID := strings.TrimSpace(n.CodeID)
	if codeID == "" {
		log.Printf("[webhook][usecase] missing payment code id user_id=%s raw_status=%s", n.UserID, n.Status)
		return WebhookOutcome{}, ErrMissingPaymentCodeID
	}

	u.crossCheckProviderStatus(ctx, codeID, n.Status)

	// The mutation must run to completion even if the provider disconnects
	// mid-request, so it is detached from the request context.
	upsertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), upsertTimeout)
	defer cancel()

	stored, err := u.repo.Upsert(upsertCtx, entities.Transaction{
		ID:        codeID,
		UserID:    strings.TrimSpace(n.UserID),
		PackageID: n.PackageID,
		Provider:  n.Provider,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
		ExpiresAt: n.ExpiresAt,
	})
	if err != nil {
		log.Printf("[webhook][usecase] upsert failed code_id=%s err=%v", codeID, err)
		return WebhookOutcome{}, err
	}
	if stored.Status != status {
		log.Printf("[webhook][usecase] transition rejected by terminal state code_id=%s stored_status=%s incoming_status=%s", codeID, stored.Status, status)
	}

	u.tracker.Track(entities.EventTypePaymentCodeWebhook, entities.VerificationEvent{
		TransactionID: stored.ID,
		Status:        string(stored.Status),
		Verified:      stored.Status == entities.TransactionStatusCompleted,
		PackageID:     stored.PackageID,
		Provider:      stored.Provider,
		Timestamp:     stored.UpdatedAt,
	}.Attributes())

	log.Printf("[webhook][usecase] process success code_id=%s status=%s", stored.ID, stored.Status)
	return WebhookOutcome{Applied: true, Transaction: stored}, nil
}

// crossCheckProviderStatus compares what the callback body claims against the
// provider's own record. Observability only: a mismatch or an unavailable
// lookup never changes webhook semantics, signature verification is the
// authenticity gate.
func (u *WebhookUseCase) crossCheckProviderStatus(ctx context.Context, codeID, rawStatus string) {
	if u.provider == nil {
		return
	}

	providerStatus, err := u.provider.FetchStatus(ctx, codeID)
	if err != nil {
		log.Printf("[webhook][usecase] provider cross-check unavailable code_id=%s err=%v", codeID, err)
		return
	}
	if !strings.EqualFold(providerStatus, rawStatus) {
		log.Printf("[webhook][usecase] provider status mismatch code_id=%s payload_status=%q provider_status=%q", codeID, rawStatus, providerStatus)
	}
}
