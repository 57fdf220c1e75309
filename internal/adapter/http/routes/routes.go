package routes

import (
	"context"
	"errors"
	_ "mecanica_xpto/docs"
	"mecanica_xpto/internal/adapter/http/handlers"
	"mecanica_xpto/internal/adapter/persistence/repository"
	"mecanica_xpto/internal/infrastructure/database"
	"mecanica_xpto/internal/infrastructure/metrics"
	"mecanica_xpto/internal/infrastructure/stock"
	"mecanica_xpto/internal/usecase"
	"mecanica_xpto/pkg/config"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers is everything the router exposes.
type Handlers struct {
	ServiceOrders *handlers.ServiceOrderHandler
	StockWebhook  *handlers.StockWebhookHandler
	Metrics       http.Handler
}

// Run wires the application and serves HTTP until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	h, err := buildHandlers(ctx, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           NewRouter(h, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("[http] listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("[http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine.
func NewRouter(h Handlers, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.Metrics))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceOrderRoutes(v1, h.ServiceOrders)
	addWebhookRoutes(v1, h.StockWebhook)
	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Handlers, error) {
	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, err
	}

	orderRepo := repository.NewServiceOrderDynamoRepository(ddb, cfg.DynamoDB.ServiceOrdersTable, log)
	catalog := repository.NewCatalogDynamoRepository(ddb, cfg.DynamoDB.VehiclesTable, cfg.DynamoDB.ServicesTable, cfg.DynamoDB.StockItemsTable)

	stockClient, err := stock.NewHTTPClient(cfg.Stock.BaseURL, cfg.Stock.Timeout, cfg.Stock.Mock, log)
	if err != nil {
		return Handlers{}, err
	}
	if cfg.Stock.Mock {
		log.Warn().Msg("[stock] mock mode enabled: availability and deductions always succeed")
	}

	orderMetrics := metrics.NewServiceOrderMetrics()

	saga := usecase.NewStockSagaUseCase(orderRepo, stockClient, orderMetrics, cfg.Stock.Timeout, log)
	orders := usecase.NewServiceOrderUseCase(orderRepo, catalog, catalog, catalog, saga, orderMetrics, log)

	return Handlers{
		ServiceOrders: handlers.NewServiceOrderHandler(orders, saga),
		StockWebhook:  handlers.NewStockWebhookHandler(saga, cfg.Stock.WebhookToken, log),
		Metrics:       orderMetrics.Handler(),
	}, nil
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[http] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		event := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("route", route).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("[http] request")
	}
}
