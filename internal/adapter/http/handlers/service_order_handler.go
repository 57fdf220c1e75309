package handlers

import (
	"context"
	request "mecanica_xpto/internal/adapter/http/dto/request"
	response "mecanica_xpto/internal/adapter/http/dto/response"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceOrderHandler handles HTTP requests for service orders (ordens de serviço).
type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
	saga    usecase.IStockSagaUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase, saga usecase.IStockSagaUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc, saga: saga}
}

// CreateServiceOrder godoc
// @Summary      Open a service order
// @Tags         ordens-servico
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateServiceOrderRequest  true  "vehicle"
// @Success      201   {object}  response.ServiceOrderResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]interface{}
// @Router       /ordens-servico [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.VehicleID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// ListServiceOrders godoc
// @Summary      List open service orders by priority
// @Description  Finalized, delivered and cancelled orders are left out. Orders in execution come first, then awaiting approval, in diagnosis and received; ties keep the oldest first.
// @Tags         ordens-servico
// @Produce      json
// @Success      200  {array}  response.ServiceOrderResponse
// @Router       /ordens-servico [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.ListByPriority(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

// GetServiceOrder godoc
// @Summary      Get a service order by id
// @Tags         ordens-servico
// @Produce      json
// @Param        id   path      string  true  "service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Failure      404  {object}  map[string]interface{}
// @Router       /ordens-servico/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// GetServiceOrderByCode godoc
// @Summary      Get a service order by its human-readable code
// @Tags         ordens-servico
// @Produce      json
// @Param        codigo  path      string  true  "code, e.g. OS-20240301-ABC123"
// @Success      200     {object}  response.ServiceOrderResponse
// @Failure      400     {object}  map[string]interface{}
// @Failure      404     {object}  map[string]interface{}
// @Router       /ordens-servico/codigo/{codigo} [get]
func (h *ServiceOrderHandler) GetServiceOrderByCode(c *gin.Context) {
	order, err := h.usecase.GetByCode(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// GetTurnaround godoc
// @Summary      Average execution and total turnaround time
// @Tags         ordens-servico
// @Produce      json
// @Success      200  {object}  response.TurnaroundResponse
// @Router       /ordens-servico/tempo-medio [get]
func (h *ServiceOrderHandler) GetTurnaround(c *gin.Context) {
	report, err := h.usecase.AverageTurnaround(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTurnaround(report))
}

// AddService godoc
// @Summary      Add a catalog service to the order
// @Tags         ordens-servico
// @Accept       json
// @Produce      json
// @Param        id    path      string                     true  "service order id"
// @Param        body  body      request.AddServiceRequest  true  "service"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      422   {object}  map[string]interface{}
// @Router       /ordens-servico/{id}/servicos [post]
func (h *ServiceOrderHandler) AddService(c *gin.Context) {
	var payload request.AddServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondOrder(c, func(ctx context.Context, id string) (*entities.ServiceOrder, error) {
		return h.usecase.AddService(ctx, id, payload.ServiceID)
	})
}

// RemoveService godoc
// @Summary      Remove a service line from the order
// @Tags         ordens-servico
// @Produce      json
// @Param        id                 path      string  true  "service order id"
// @Param        servicoIncluidoId  path      string  true  "service line id"
// @Success      200                {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/servicos/{servicoIncluidoId} [delete]
func (h *ServiceOrderHandler) RemoveService(c *gin.Context) {
	lineID := c.Param("servicoIncluidoId")
	h.respondOrder(c, func(ctx context.Context, id string) (*entities.ServiceOrder, error) {
		return h.usecase.RemoveService(ctx, id, lineID)
	})
}

// AddItem godoc
// @Summary      Add a stock item (part or supply) to the order
// @Description  Adding an item that is already on the order raises its quantity.
// @Tags         ordens-servico
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "service order id"
// @Param        body  body      request.AddItemRequest  true  "item"
// @Success      200   {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/itens [post]
func (h *ServiceOrderHandler) AddItem(c *gin.Context) {
	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	h.respondOrder(c, func(ctx context.Context, id string) (*entities.ServiceOrder, error) {
		return h.usecase.AddItem(ctx, id, payload.ItemID, payload.Quantity)
	})
}

// RemoveItem godoc
// @Summary      Remove an item line from the order
// @Tags         ordens-servico
// @Produce      json
// @Param        id              path      string  true  "service order id"
// @Param        itemIncluidoId  path      string  true  "item line id"
// @Success      200             {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/itens/{itemIncluidoId} [delete]
func (h *ServiceOrderHandler) RemoveItem(c *gin.Context) {
	lineID := c.Param("itemIncluidoId")
	h.respondOrder(c, func(ctx context.Context, id string) (*entities.ServiceOrder, error) {
		return h.usecase.RemoveItem(ctx, id, lineID)
	})
}

// ChangeStatus godoc
// @Summary      Move the order to a new status
// @Description  em_execucao checks and deducts stock for the order items.
// @Tags         ordens-servico
// @Accept       json
// @Produce      json
// @Param        id    path      string                       true  "service order id"
// @Param        body  body      request.ChangeStatusRequest  true  "target status"
// @Success      200   {object}  response.ServiceOrderResponse
// @Failure      422   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /ordens-servico/{id}/status [patch]
func (h *ServiceOrderHandler) ChangeStatus(c *gin.Context) {
	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	target, err := payload.ResolveStatus()
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondOrder(c, func(ctx context.Context, id string) (*entities.ServiceOrder, error) {
		return h.usecase.ChangeStatus(ctx, id, target)
	})
}

// CancelServiceOrder godoc
// @Summary      Cancel an order that has not been approved yet
// @Tags         ordens-servico
// @Produce      json
// @Param        id   path      string  true  "service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/cancelar [post]
func (h *ServiceOrderHandler) CancelServiceOrder(c *gin.Context) {
	h.respondOrder(c, h.usecase.Cancel)
}

// ApproveBudget godoc
// @Summary      Approve the budget
// @Tags         ordens-servico
// @Produce      json
// @Param        id   path      string  true  "service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/orcamento/aprovar [post]
func (h *ServiceOrderHandler) ApproveBudget(c *gin.Context) {
	h.respondOrder(c, h.usecase.ApproveBudget)
}

// RejectBudget godoc
// @Summary      Reject the budget, cancelling the order
// @Tags         ordens-servico
// @Produce      json
// @Param        id   path      string  true  "service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/orcamento/rejeitar [post]
func (h *ServiceOrderHandler) RejectBudget(c *gin.Context) {
	h.respondOrder(c, h.usecase.RejectBudget)
}

// CompensateStock godoc
// @Summary      Compensate a failed stock deduction
// @Description  Marks the deduction as failed; an order in execution goes back to aprovada.
// @Tags         ordens-servico
// @Produce      json
// @Param        id   path      string  true  "service order id"
// @Success      200  {object}  response.ServiceOrderResponse
// @Router       /ordens-servico/{id}/estoque/compensar [post]
func (h *ServiceOrderHandler) CompensateStock(c *gin.Context) {
	h.respondOrder(c, h.saga.Compensate)
}

func (h *ServiceOrderHandler) respondOrder(
	c *gin.Context,
	apply func(ctx context.Context, id string) (*entities.ServiceOrder, error),
) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

func respondError(c *gin.Context, err error) {
	appErr := mapServiceOrderError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
