package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "lumalens/internal/adapter/http/dto/request"
	response "lumalens/internal/adapter/http/dto/response"
	"lumalens/internal/infrastructure/metrics"
	"lumalens/internal/usecase"
	"lumalens/pkg"

	"github.com/gin-gonic/gin"
)

// VerificationHandler answers the client's post-checkout polling requests.

type VerificationHandler struct {
	usecase usecase.IVerificationUseCase
}

func NewVerificationHandler(uc usecase.IVerificationUseCase) *VerificationHandler {
	return &VerificationHandler{usecase: uc}
}

// VerifyPayment reports the current transaction state for a transaction id.
// The response always carries a verified boolean, error paths included, so
// the client can branch on it directly.
func (h *VerificationHandler) VerifyPayment(c *gin.Context) {
	started := time.Now()
	metrics.VerificationRequestsTotal.Inc()
	defer func() {
		metrics.VerificationDuration.Observe(time.Since(started).Seconds())
	}()

	var payload request.VerifyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[verify][handler] invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, response.VerifyError("Invalid request"))
		return
	}

	transactionID := payload.ResolveTransactionID()
	log.Printf("[verify][handler] verify start transaction_id=%q", transactionID)

	res, err := h.usecase.VerifyTransaction(c.Request.Context(), transactionID)
	if err != nil {
		appErr := mapVerificationError(err)
		if appErr.HTTPStatus == http.StatusInternalServerError {
			log.Printf("[verify][handler] verify failed transaction_id=%s err=%v", transactionID, err)
		}
		c.JSON(appErr.HTTPStatus, response.VerifyError(appErr.Message))
		return
	}

	log.Printf("[verify][handler] verify success transaction_id=%s status=%s verified=%t", transactionID, res.Status, res.Verified)
	c.JSON(http.StatusOK, response.FromVerificationResult(res))
}

func mapVerificationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("MISSING_TRANSACTION_ID", "Missing transactionId", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
