package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mecanica_xpto/internal/adapter/http/handlers"
	"mecanica_xpto/internal/adapter/http/handlers/mocks"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/infrastructure/metrics"
	"mecanica_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T) (*gin.Engine, *mocks.MockIServiceOrderUseCase, *metrics.ServiceOrderMetrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIServiceOrderUseCase(ctrl)
	saga := mocks.NewMockIStockSagaUseCase(ctrl)
	m := metrics.NewServiceOrderMetrics()
	log := zerolog.New(io.Discard)

	r := NewRouter(Handlers{
		ServiceOrders: handlers.NewServiceOrderHandler(uc, saga),
		StockWebhook:  handlers.NewStockWebhookHandler(saga, "", log),
		Metrics:       m.Handler(),
	}, log)
	return r, uc, m
}

func TestRouter_Ping(t *testing.T) {
	r, _, _ := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRouter_StaticSegmentsWinOverID(t *testing.T) {
	r, uc, _ := newTestRouter(t)
	uc.EXPECT().AverageTurnaround(gomock.Any()).Return(entities.TurnaroundReport{}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ordens-servico/tempo-medio", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_Metrics(t *testing.T) {
	r, _, m := newTestRouter(t)
	m.StockSagaOutcome(interfaces.SagaOutcomeConfirmed)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `os_stock_saga_outcomes_total{outcome="confirmed"} 1`)
}

func TestRouter_PanicIsRecovered(t *testing.T) {
	r, uc, _ := newTestRouter(t)
	uc.EXPECT().ListByPriority(gomock.Any()).DoAndReturn(func(context.Context) ([]*entities.ServiceOrder, error) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ordens-servico", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
