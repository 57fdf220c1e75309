package request

import (
	"mecanica_xpto/internal/domain/entities"
	"strings"
)

type CreateServiceOrderRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

type AddServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

// AddItemRequest adds quantity units of a stock item. Quantity is checked by
// the domain so that zero and negative values get the same error as any
// other invalid input.
type AddItemRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity int    `json:"quantity"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ChangeStatusRequest) ResolveStatus() (entities.ServiceOrderStatus, error) {
	return entities.ParseServiceOrderStatus(r.Status)
}

// StockWebhookRequest is posted by the stock service once a deduction is settled.
// AttemptID echoes the tentativa_id sent with the deduction; results for an
// older attempt are ignored.
type StockWebhookRequest struct {
	ServiceOrderID string `json:"service_order_id" binding:"required"`
	AttemptID      string `json:"attempt_id"`
	Success        *bool  `json:"success" binding:"required"`
}

func (r StockWebhookRequest) ResolveOSID() string {
	return strings.TrimSpace(r.ServiceOrderID)
}
