package routes

import (
	"mecanica_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/ordens-servico"
	PathWebhooks      = "/webhooks"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", h.CreateServiceOrder)
		orders.GET("", h.ListServiceOrders)
		orders.GET("/tempo-medio", h.GetTurnaround)
		orders.GET("/codigo/:codigo", h.GetServiceOrderByCode)
		orders.GET("/:id", h.GetServiceOrder)

		orders.POST("/:id/servicos", h.AddService)
		orders.DELETE("/:id/servicos/:servicoIncluidoId", h.RemoveService)
		orders.POST("/:id/itens", h.AddItem)
		orders.DELETE("/:id/itens/:itemIncluidoId", h.RemoveItem)

		orders.PATCH("/:id/status", h.ChangeStatus)
		orders.POST("/:id/cancelar", h.CancelServiceOrder)
		orders.POST("/:id/orcamento/aprovar", h.ApproveBudget)
		orders.POST("/:id/orcamento/rejeitar", h.RejectBudget)
		orders.POST("/:id/estoque/compensar", h.CompensateStock)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, h *handlers.StockWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	webhooks.POST("/estoque", h.HandleStockResult)
}
