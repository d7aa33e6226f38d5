package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lumalens/internal/adapter/http/handlers/mocks"
	"lumalens/internal/domain/entities"
	"lumalens/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newVerifyRouter(h *VerificationHandler) *gin.Engine {
	r := gin.New()
	r.POST("/payment/verify", h.VerifyPayment)
	return r
}

func TestVerificationHandler_VerifyPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerificationHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verified"] != false {
			t.Fatalf("expected verified=false in error body: %s", w.Body.String())
		}
	})

	t.Run("missing transaction id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerificationHandler(uc))

		uc.EXPECT().VerifyTransaction(gomock.Any(), "").Return(usecase.VerificationResult{}, usecase.ErrMissingTransactionID)

		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerificationHandler(uc))

		uc.EXPECT().VerifyTransaction(gomock.Any(), "pc-missing").Return(usecase.VerificationResult{}, usecase.ErrTransactionNotFound)

		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(`{"transactionId":"pc-missing"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verified"] != false || body["error"] == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("completed transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerificationHandler(uc))

		now := time.Now().UTC()
		uc.EXPECT().VerifyTransaction(gomock.Any(), "pc-1").Return(usecase.VerificationResult{
			Verified:  true,
			Status:    entities.TransactionStatusCompleted,
			PackageID: "pkg-premium",
			Timestamp: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(`{"transactionId":"pc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verified"] != true || body["status"] != "COMPLETED" || body["packageId"] != "pkg-premium" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("pending transaction polls as unverified 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerificationHandler(uc))

		uc.EXPECT().VerifyTransaction(gomock.Any(), "pc-1").Return(usecase.VerificationResult{
			Verified: false,
			Status:   entities.TransactionStatusPending,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(`{"transactionId":"pc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verified"] != false || body["status"] != "PENDING" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVerificationUseCase(ctrl)
		r := newVerifyRouter(NewVerificationHandler(uc))

		uc.EXPECT().VerifyTransaction(gomock.Any(), "pc-1").Return(usecase.VerificationResult{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(`{"transactionId":"pc-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["verified"] != false {
			t.Fatalf("expected verified=false in error body: %s", w.Body.String())
		}
	})
}
