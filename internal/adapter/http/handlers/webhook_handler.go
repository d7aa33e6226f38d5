package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	request "lumalens/internal/adapter/http/dto/request"
	response "lumalens/internal/adapter/http/dto/response"
	"lumalens/internal/infrastructure/metrics"
	"lumalens/internal/infrastructure/security"
	"lumalens/internal/usecase"
	"lumalens/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives payment-code callbacks from the provider.
//
// Order matters: the signature over the raw body is checked before any field
// of the payload is parsed or trusted.

type WebhookHandler struct {
	usecase  usecase.IWebhookUseCase
	verifier *security.WebhookVerifier
}

func NewWebhookHandler(uc usecase.IWebhookUseCase, verifier *security.WebhookVerifier) *WebhookHandler {
	return &WebhookHandler{usecase: uc, verifier: verifier}
}

func (h *WebhookHandler) HandlePaymentCode(c *gin.Context) {
	metrics.WebhookRequestsTotal.Inc()

	raw, err := c.GetRawData()
	if err != nil {
		log.Printf("[webhook][handler] read body failed err=%v", err)
		metrics.WebhookRejectedTotal.Inc()
		c.JSON(http.StatusBadRequest, response.WebhookError("Invalid request"))
		return
	}

	if err := h.verifier.Verify(c.GetHeader(security.SignatureHeader), raw); err != nil {
		log.Printf("[webhook][handler] signature verification failed err=%v", err)
		metrics.WebhookRejectedTotal.Inc()
		c.JSON(http.StatusUnauthorized, response.WebhookError("Invalid webhook signature"))
		return
	}

	var payload request.PaymentCodeWebhookRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		metrics.WebhookRejectedTotal.Inc()
		c.JSON(http.StatusBadRequest, response.WebhookError("Invalid request"))
		return
	}

	out, err := h.usecase.ProcessPaymentCode(c.Request.Context(), usecase.PaymentCodeNotification{
		CodeID:    payload.ResolveCodeID(),
		Status:    payload.Status,
		UserID:    payload.ResolveUserID(),
		PackageID: payload.Metadata.PackageID,
		Provider:  payload.ChannelCode,
		ExpiresAt: payload.ExpiryTime,
	})
	if err != nil {
		appErr := mapWebhookError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			log.Printf("[webhook][handler] process failed code_id=%s err=%v", payload.ResolveCodeID(), err)
		}
		metrics.WebhookRejectedTotal.Inc()
		c.JSON(appErr.HTTPStatus, response.WebhookError(appErr.Message))
		return
	}

	if !out.Applied {
		metrics.WebhookNoopTotal.Inc()
	}
	c.JSON(http.StatusOK, response.WebhookAccepted())
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingUserID):
		return pkg.NewDomainErrorSimple("MISSING_USER_ID", "Missing metadata userId", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentCodeID):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_CODE_ID", "Missing payment code id", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
