package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"lumalens/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoStatusFetcher reads the provider-side record of a payment so the
// webhook ingestor can cross-check what the callback body claims. This is the
// provider-recommended hardening for card-gateway webhooks: never act on the
// body alone, confirm against the payments API.
//
// Read-only: this client never creates or mutates payments.

type MercadoPagoStatusFetcher struct {
	client payment.Client
}

var _ interfaces.IProviderStatusFetcher = (*MercadoPagoStatusFetcher)(nil)

func NewMercadoPagoStatusFetcher(accessToken string) (*MercadoPagoStatusFetcher, error) {
	if accessToken == "" {
		log.Printf("[payment][provider] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][provider] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][provider] Mercado Pago client initialized")

	return &MercadoPagoStatusFetcher{client: payment.NewClient(cfg)}, nil
}

// FetchStatus returns the provider's raw status string for a payment id.
// Mercado Pago payment ids are numeric; non-numeric ids (regional e-wallet
// codes) have no provider-side record here and report an error to the caller,
// which treats the cross-check as unavailable.
func (f *MercadoPagoStatusFetcher) FetchStatus(ctx context.Context, providerPaymentID string) (string, error) {
	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return "", errors.New("provider payment id is not numeric")
	}

	resp, err := f.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][provider] fetch failed payment_id=%s err=%v", providerPaymentID, err)
		return "", err
	}

	log.Printf("[payment][provider] fetch success payment_id=%s provider_status=%s", providerPaymentID, resp.Status)
	return resp.Status, nil
}
