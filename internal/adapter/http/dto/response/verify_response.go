package response

import (
	"time"

	"lumalens/internal/usecase"
)

// VerifyResponse always carries the verified boolean so the client can
// branch without exception handling, on failure paths included.

type VerifyResponse struct {
	Verified  bool      `json:"verified"`
	Status    string    `json:"status"`
	PackageID string    `json:"packageId"`
	Timestamp time.Time `json:"timestamp"`
}

func FromVerificationResult(res usecase.VerificationResult) VerifyResponse {
	return VerifyResponse{
		Verified:  res.Verified,
		Status:    string(res.Status),
		PackageID: res.PackageID,
		Timestamp: res.Timestamp,
	}
}

type VerifyErrorResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error"`
}

func VerifyError(message string) VerifyErrorResponse {
	return VerifyErrorResponse{Verified: false, Error: message}
}
