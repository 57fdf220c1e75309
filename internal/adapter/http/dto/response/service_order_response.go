package response

import (
	"mecanica_xpto/internal/domain/entities"
	"time"
)

type ServiceIncludedResponse struct {
	ID               string `json:"id"`
	CatalogServiceID string `json:"service_id"`
	Name             string `json:"name"`
	Price            string `json:"price"`
}

type ItemIncludedResponse struct {
	ID            string `json:"id"`
	CatalogItemID string `json:"item_id"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	Price         string `json:"price"`
	Quantity      int    `json:"quantity"`
	Subtotal      string `json:"subtotal"`
}

type BudgetResponse struct {
	ID        string    `json:"id"`
	Price     string    `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

type StockInteractionResponse struct {
	State                    string `json:"state"`
	AttemptID                string `json:"attempt_id,omitempty"`
	MustRemoveStock          bool   `json:"must_remove_stock"`
	StockRemovedSuccessfully *bool  `json:"stock_removed_successfully"`
}

type ServiceOrderResponse struct {
	ID                 string                    `json:"id"`
	Code               string                    `json:"code"`
	VehicleID          string                    `json:"vehicle_id"`
	Status             string                    `json:"status"`
	CreatedAt          time.Time                 `json:"created_at"`
	ExecutionStartedAt *time.Time                `json:"execution_started_at,omitempty"`
	FinalizedAt        *time.Time                `json:"finalized_at,omitempty"`
	DeliveredAt        *time.Time                `json:"delivered_at,omitempty"`
	Services           []ServiceIncludedResponse `json:"services"`
	Items              []ItemIncludedResponse    `json:"items"`
	Budget             *BudgetResponse           `json:"budget,omitempty"`
	Stock              StockInteractionResponse  `json:"stock"`
	Version            int64                     `json:"version"`
}

// FromServiceOrder renders money with two decimal places.
func FromServiceOrder(o *entities.ServiceOrder) ServiceOrderResponse {
	h := o.History()
	res := ServiceOrderResponse{
		ID:                 o.ID(),
		Code:               o.Code().String(),
		VehicleID:          o.VehicleID(),
		Status:             string(o.Status()),
		CreatedAt:          h.CreatedAt(),
		ExecutionStartedAt: h.ExecutionStartedAt(),
		FinalizedAt:        h.FinalizedAt(),
		DeliveredAt:        h.DeliveredAt(),
		Services:           make([]ServiceIncludedResponse, 0, len(o.Services())),
		Items:              make([]ItemIncludedResponse, 0, len(o.Items())),
		Stock: StockInteractionResponse{
			State:                    string(o.Stock().State()),
			AttemptID:                o.StockAttemptID(),
			MustRemoveStock:          o.Stock().MustRemoveStock(),
			StockRemovedSuccessfully: o.Stock().StockRemovedSuccessfully(),
		},
		Version: o.Version(),
	}
	for _, s := range o.Services() {
		res.Services = append(res.Services, ServiceIncludedResponse{
			ID:               s.ID(),
			CatalogServiceID: s.CatalogServiceID(),
			Name:             s.Name(),
			Price:            s.Price().StringFixed(2),
		})
	}
	for _, i := range o.Items() {
		res.Items = append(res.Items, ItemIncludedResponse{
			ID:            i.ID(),
			CatalogItemID: i.CatalogItemID(),
			Name:          i.Name(),
			Kind:          string(i.Kind()),
			Price:         i.Price().StringFixed(2),
			Quantity:      i.Quantity(),
			Subtotal:      i.Subtotal().StringFixed(2),
		})
	}
	if b := o.Budget(); b != nil {
		res.Budget = &BudgetResponse{ID: b.ID(), Price: b.Price().StringFixed(2), CreatedAt: b.CreatedAt()}
	}
	return res
}

func FromServiceOrders(orders []*entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

type TurnaroundResponse struct {
	FinalizedOrders         int     `json:"finalized_orders"`
	DeliveredOrders         int     `json:"delivered_orders"`
	AverageExecutionSeconds float64 `json:"average_execution_seconds"`
	AverageTotalSeconds     float64 `json:"average_total_seconds"`
	AverageExecution        string  `json:"average_execution"`
	AverageTotal            string  `json:"average_total"`
}

func FromTurnaround(r entities.TurnaroundReport) TurnaroundResponse {
	return TurnaroundResponse{
		FinalizedOrders:         r.FinalizedOrders,
		DeliveredOrders:         r.DeliveredOrders,
		AverageExecutionSeconds: r.AverageExecution.Seconds(),
		AverageTotalSeconds:     r.AverageTotal.Seconds(),
		AverageExecution:        r.AverageExecution.String(),
		AverageTotal:            r.AverageTotal.String(),
	}
}
