package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumalens/internal/adapter/http/handlers/mocks"
	"lumalens/internal/domain/entities"
	"lumalens/internal/infrastructure/security"
	"lumalens/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(h *WebhookHandler) *gin.Engine {
	r := gin.New()
	r.POST("/webhooks/payment-code", h.HandlePaymentCode)
	return r
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestWebhookHandler_SignatureVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)
	body := []byte(`{"payment_code_id":"pc1","status":"PAID","metadata":{"userId":"u1"}}`)

	t.Run("missing signature rejected before parsing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, security.NewWebhookVerifier("shhh")))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("bad signature rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, security.NewWebhookVerifier("shhh")))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBuffer(body))
		req.Header.Set(security.SignatureHeader, signBody("wrong-secret", body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid signature accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, security.NewWebhookVerifier("shhh")))

		uc.EXPECT().ProcessPaymentCode(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome{Applied: true}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBuffer(body))
		req.Header.Set(security.SignatureHeader, signBody("shhh", body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestWebhookHandler_HandlePaymentCode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Verification disabled: local/dev posture.
	verifier := security.NewWebhookVerifier("")

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, verifier))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing userId", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, verifier))

		uc.EXPECT().ProcessPaymentCode(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome{}, usecase.ErrMissingUserID)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBufferString(`{"payment_code_id":"pc1","status":"PAID","metadata":{}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false || body["message"] == "" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unmapped status acknowledged as no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, verifier))

		uc.EXPECT().ProcessPaymentCode(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome{Applied: false}, nil)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBufferString(`{"payment_code_id":"pc1","status":"INACTIVE","metadata":{"userId":"u1"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("payload fields reach the usecase normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, verifier))

		uc.EXPECT().ProcessPaymentCode(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n usecase.PaymentCodeNotification) (usecase.WebhookOutcome, error) {
				if n.CodeID != "pc1" || n.Status != "CREATED" || n.UserID != "u1" || n.Provider != "QRIS" {
					t.Fatalf("unexpected notification: %+v", n)
				}
				return usecase.WebhookOutcome{Applied: true, Transaction: entities.Transaction{ID: "pc1"}}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBufferString(`{"payment_code_id":"pc1","status":"CREATED","channel_code":"QRIS","metadata":{"userId":"u1"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("store failure surfaces 500 for provider retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWebhookUseCase(ctrl)
		r := newWebhookRouter(NewWebhookHandler(uc, verifier))

		uc.EXPECT().ProcessPaymentCode(gomock.Any(), gomock.Any()).Return(usecase.WebhookOutcome{}, errors.New("dynamodb unavailable"))

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payment-code", bytes.NewBufferString(`{"payment_code_id":"pc1","status":"PAID","metadata":{"userId":"u1"}}`))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["success"] != false {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
