package response

// WebhookAckResponse acknowledges a delivery, applied or no-op; the provider
// only cares about the 2xx.
type WebhookAckResponse struct {
	Success bool `json:"success"`
}

func WebhookAccepted() WebhookAckResponse {
	return WebhookAckResponse{Success: true}
}

type WebhookErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func WebhookError(message string) WebhookErrorResponse {
	return WebhookErrorResponse{Success: false, Message: message}
}
