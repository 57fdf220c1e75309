package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ServiceOrderSnapshot is the flat, persistence-friendly view of a ServiceOrder.
type ServiceOrderSnapshot struct {
	ID        string
	Code      string
	VehicleID string
	Status    ServiceOrderStatus

	CreatedAt          time.Time
	ExecutionStartedAt *time.Time
	FinalizedAt        *time.Time
	DeliveredAt        *time.Time

	Services []ServiceIncludedSnapshot
	Items    []ItemIncludedSnapshot
	Budget   *BudgetSnapshot

	MustRemoveStock          bool
	StockRemovedSuccessfully *bool
	StockAttemptID           string

	Version int64
}

type ServiceIncludedSnapshot struct {
	ID               string
	CatalogServiceID string
	Name             string
	Price            decimal.Decimal
}

type ItemIncludedSnapshot struct {
	ID            string
	CatalogItemID string
	Name          string
	Price         decimal.Decimal
	Quantity      int
	Kind          ItemKind
}

type BudgetSnapshot struct {
	ID        string
	CreatedAt time.Time
	Price     decimal.Decimal
}

// Snapshot exports the aggregate state.
func (o *ServiceOrder) Snapshot() ServiceOrderSnapshot {
	snap := ServiceOrderSnapshot{
		ID:                       o.id,
		Code:                     o.code.String(),
		VehicleID:                o.vehicleID,
		Status:                   o.status,
		CreatedAt:                o.history.CreatedAt(),
		ExecutionStartedAt:       o.history.ExecutionStartedAt(),
		FinalizedAt:              o.history.FinalizedAt(),
		DeliveredAt:              o.history.DeliveredAt(),
		MustRemoveStock:          o.stock.MustRemoveStock(),
		StockRemovedSuccessfully: o.stock.StockRemovedSuccessfully(),
		StockAttemptID:           o.stockAttempt,
		Version:                  o.version,
	}
	for _, s := range o.services {
		snap.Services = append(snap.Services, ServiceIncludedSnapshot{
			ID:               s.ID(),
			CatalogServiceID: s.CatalogServiceID(),
			Name:             s.Name(),
			Price:            s.Price(),
		})
	}
	for _, i := range o.items {
		snap.Items = append(snap.Items, ItemIncludedSnapshot{
			ID:            i.ID(),
			CatalogItemID: i.CatalogItemID(),
			Name:          i.Name(),
			Price:         i.Price(),
			Quantity:      i.Quantity(),
			Kind:          i.Kind(),
		})
	}
	if o.budget != nil {
		snap.Budget = &BudgetSnapshot{
			ID:        o.budget.ID(),
			CreatedAt: o.budget.CreatedAt(),
			Price:     o.budget.Price(),
		}
	}
	return snap
}

// RestoreServiceOrder rebuilds an aggregate from a snapshot and re-checks every
// invariant, so a corrupt record never becomes a live order.
func RestoreServiceOrder(snap ServiceOrderSnapshot) (*ServiceOrder, error) {
	id := strings.TrimSpace(snap.ID)
	if id == "" {
		return nil, invalidInput("service order id is required")
	}
	code, err := NewCode(snap.Code)
	if err != nil {
		return nil, err
	}
	vehicleID := strings.TrimSpace(snap.VehicleID)
	if vehicleID == "" {
		return nil, invalidInput("vehicle id is required")
	}
	if !snap.Status.IsValid() {
		return nil, invalidInput("invalid service order status %q", snap.Status)
	}
	history, err := RestoreTemporalHistory(snap.CreatedAt, snap.ExecutionStartedAt, snap.FinalizedAt, snap.DeliveredAt)
	if err != nil {
		return nil, err
	}
	if err := checkHistoryMatchesStatus(snap.Status, history); err != nil {
		return nil, err
	}

	o := &ServiceOrder{
		id:           id,
		code:         code,
		vehicleID:    vehicleID,
		status:       snap.Status,
		history:      history,
		stock:        RestoreStockInteraction(snap.MustRemoveStock, snap.StockRemovedSuccessfully),
		stockAttempt: strings.TrimSpace(snap.StockAttemptID),
		version:      snap.Version,
	}

	seenServices := make(map[string]struct{}, len(snap.Services))
	for _, s := range snap.Services {
		svc, err := restoreServiceIncluded(s.ID, s.CatalogServiceID, s.Name, s.Price)
		if err != nil {
			return nil, err
		}
		if _, dup := seenServices[svc.CatalogServiceID()]; dup {
			return nil, invalidInput("service %s included twice in service order %s", svc.CatalogServiceID(), code)
		}
		seenServices[svc.CatalogServiceID()] = struct{}{}
		o.services = append(o.services, svc)
	}

	seenItems := make(map[string]struct{}, len(snap.Items))
	for _, i := range snap.Items {
		item, err := restoreItemIncluded(i.ID, i.CatalogItemID, i.Name, i.Price, i.Quantity, i.Kind)
		if err != nil {
			return nil, err
		}
		if _, dup := seenItems[item.CatalogItemID()]; dup {
			return nil, invalidInput("item %s included twice in service order %s", item.CatalogItemID(), code)
		}
		seenItems[item.CatalogItemID()] = struct{}{}
		o.items = append(o.items, item)
	}

	if snap.Budget != nil {
		b, err := RestoreBudget(snap.Budget.ID, snap.Budget.CreatedAt, snap.Budget.Price)
		if err != nil {
			return nil, err
		}
		o.budget = &b
	}
	switch {
	case snap.Status.reachedApproval() && o.budget == nil:
		return nil, invalidInput("service order %s is %s but has no budget", code, snap.Status)
	case (snap.Status == StatusRecebida || snap.Status == StatusEmDiagnostico) && o.budget != nil:
		return nil, invalidInput("service order %s is %s but already has a budget", code, snap.Status)
	}
	return o, nil
}

func checkHistoryMatchesStatus(status ServiceOrderStatus, h TemporalHistory) error {
	switch status {
	case StatusEmExecucao:
		if h.ExecutionStartedAt() == nil {
			return invalidInput("status %s requires an execution start date", status)
		}
	case StatusFinalizada:
		if h.FinalizedAt() == nil {
			return invalidInput("status %s requires a finalization date", status)
		}
	case StatusEntregue:
		if h.DeliveredAt() == nil {
			return invalidInput("status %s requires a delivery date", status)
		}
	}
	return nil
}
