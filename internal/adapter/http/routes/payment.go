package routes

import (
	"lumalens/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayment  = "/payment"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, verificationHandler *handlers.VerificationHandler, webhookHandler *handlers.WebhookHandler) {
	payment := rg.Group(PathPayment)
	{
		// Polled by the client after redirect-back from the provider.
		payment.POST("/verify", verificationHandler.VerifyPayment)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Provider-initiated; authenticated by signature, not session.
		webhooks.POST("/payment-code", webhookHandler.HandlePaymentCode)
	}
}
