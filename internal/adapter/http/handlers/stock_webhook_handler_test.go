package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_xpto/internal/adapter/http/handlers/mocks"
	"mecanica_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T, token string) (*gin.Engine, *mocks.MockIStockSagaUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	saga := mocks.NewMockIStockSagaUseCase(ctrl)
	h := NewStockWebhookHandler(saga, token, zerolog.New(io.Discard))

	r := gin.New()
	r.POST("/webhooks/estoque", h.HandleStockResult)
	return r, saga
}

func postWebhook(r *gin.Engine, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/estoque", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Webhook-Token", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStockWebhookHandler_HandleStockResult(t *testing.T) {
	t.Run("wrong token", func(t *testing.T) {
		r, _ := newWebhookRouter(t, "s3cret")
		w := postWebhook(r, "guess", `{"service_order_id":"os-1","success":true}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing success flag", func(t *testing.T) {
		r, _ := newWebhookRouter(t, "")
		w := postWebhook(r, "", `{"service_order_id":"os-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success confirms", func(t *testing.T) {
		r, saga := newWebhookRouter(t, "s3cret")
		saga.EXPECT().HandleStockResult(gomock.Any(), "os-1", "", true).Return(newTestOrder(t), nil)

		w := postWebhook(r, "s3cret", `{"service_order_id":" os-1 ","success":true}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("failure compensates", func(t *testing.T) {
		r, saga := newWebhookRouter(t, "")
		saga.EXPECT().HandleStockResult(gomock.Any(), "os-1", "att-2", false).Return(newTestOrder(t), nil)

		w := postWebhook(r, "", `{"service_order_id":"os-1","attempt_id":"att-2","success":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		r, saga := newWebhookRouter(t, "")
		saga.EXPECT().HandleStockResult(gomock.Any(), "os-404", "", true).Return(nil, usecase.ErrServiceOrderNotFound)

		w := postWebhook(r, "", `{"service_order_id":"os-404","success":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
