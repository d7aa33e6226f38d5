package interfaces

import "context"

// IProviderStatusFetcher reads the provider-side status of a payment, used
// to cross-check webhook payloads against the provider's own record.
// Optional: a nil fetcher disables the cross-check.

type IProviderStatusFetcher interface {
	FetchStatus(ctx context.Context, providerPaymentID string) (string, error)
}
