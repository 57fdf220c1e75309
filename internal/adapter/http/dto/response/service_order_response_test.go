package response

import (
	"testing"
	"time"

	"mecanica_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromServiceOrder(t *testing.T) {
	created := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	o, err := entities.RestoreServiceOrder(entities.ServiceOrderSnapshot{
		ID:        "os-1",
		Code:      "OS-20240301-ABC123",
		VehicleID: "veh-1",
		Status:    entities.StatusAguardandoAprovacao,
		CreatedAt: created,
		Services: []entities.ServiceIncludedSnapshot{
			{ID: "si-1", CatalogServiceID: "svc-1", Name: "Troca de oleo", Price: decimal.RequireFromString("120")},
		},
		Items: []entities.ItemIncludedSnapshot{
			{ID: "ii-1", CatalogItemID: "item-1", Name: "Filtro", Price: decimal.RequireFromString("35.5"), Quantity: 2, Kind: entities.ItemKindPeca},
		},
		Budget:  &entities.BudgetSnapshot{ID: "b-1", CreatedAt: created, Price: decimal.RequireFromString("191")},
		Version: 4,
	})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}

	res := FromServiceOrder(o)
	if res.ID != "os-1" || res.Code != "OS-20240301-ABC123" || res.Status != "aguardando_aprovacao" || res.Version != 4 {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Services) != 1 || res.Services[0].Price != "120.00" {
		t.Fatalf("unexpected services: %+v", res.Services)
	}
	if len(res.Items) != 1 || res.Items[0].Subtotal != "71.00" || res.Items[0].Kind != "peca" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Budget == nil || res.Budget.Price != "191.00" {
		t.Fatalf("unexpected budget: %+v", res.Budget)
	}
	if res.Stock.State != "sem_interacao" || res.ExecutionStartedAt != nil {
		t.Fatalf("unexpected stock/history: %+v", res)
	}
}

func TestFromTurnaround(t *testing.T) {
	res := FromTurnaround(entities.TurnaroundReport{
		FinalizedOrders:  2,
		DeliveredOrders:  1,
		AverageExecution: 90 * time.Minute,
		AverageTotal:     5 * time.Hour,
	})
	if res.AverageExecutionSeconds != 5400 || res.AverageTotal != "5h0m0s" || res.FinalizedOrders != 2 {
		t.Fatalf("unexpected response: %+v", res)
	}
}
