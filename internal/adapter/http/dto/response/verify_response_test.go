package response

import (
	"encoding/json"
	"testing"
	"time"

	"lumalens/internal/domain/entities"
	"lumalens/internal/usecase"
)

func TestFromVerificationResult(t *testing.T) {
	now := time.Now().UTC()
	res := usecase.VerificationResult{
		Verified:  true,
		Status:    entities.TransactionStatusCompleted,
		PackageID: "pkg-premium",
		Timestamp: now,
	}

	out := FromVerificationResult(res)
	if !out.Verified || out.Status != "COMPLETED" || out.PackageID != "pkg-premium" {
		t.Fatalf("unexpected response: %+v", out)
	}
	if !out.Timestamp.Equal(now) {
		t.Fatalf("unexpected timestamp: %v", out.Timestamp)
	}
}

func TestVerifyError_Shape(t *testing.T) {
	b, err := json.Marshal(VerifyError("Transaction not found"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `{"verified":false,"error":"Transaction not found"}` {
		t.Fatalf("unexpected body: %s", b)
	}
}

func TestWebhookResponses_Shape(t *testing.T) {
	b, _ := json.Marshal(WebhookAccepted())
	if string(b) != `{"success":true}` {
		t.Fatalf("unexpected body: %s", b)
	}

	b, _ = json.Marshal(WebhookError("Missing metadata userId"))
	if string(b) != `{"success":false,"message":"Missing metadata userId"}` {
		t.Fatalf("unexpected body: %s", b)
	}
}
