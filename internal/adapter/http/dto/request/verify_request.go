package request

import "strings"

// VerifyRequest is the body the client posts after redirect-back from the
// payment provider.

type VerifyRequest struct {
	TransactionID string `json:"transactionId"`
}

func (r VerifyRequest) ResolveTransactionID() string {
	return strings.TrimSpace(r.TransactionID)
}
