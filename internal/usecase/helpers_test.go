package usecase

import (
	"context"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase/interfaces"
	mock_interfaces "mecanica_xpto/internal/usecase/interfaces/mocks"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const (
	testOrderID = "0192a5f0-0000-7000-8000-000000000001"
	testCode    = "OS-20240301-ABC123"
)

var testCreatedAt = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

// withFastRetries removes the waits between retries for the duration of a test.
func withFastRetries(t *testing.T) {
	t.Helper()
	prevConflict, prevStock := conflictBackOff, stockBackOff
	conflictBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxConcurrentUpdateAttempts-1)
	}
	stockBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, maxDeductionRetries)
	}
	t.Cleanup(func() {
		conflictBackOff, stockBackOff = prevConflict, prevStock
	})
}

// snapshotAt builds a consistent persisted order in the given status, with one
// service and, optionally, one item (2 x 35.50).
func snapshotAt(status entities.ServiceOrderStatus, withItem bool) entities.ServiceOrderSnapshot {
	snap := entities.ServiceOrderSnapshot{
		ID:        testOrderID,
		Code:      testCode,
		VehicleID: "veh-1",
		Status:    status,
		CreatedAt: testCreatedAt,
		Version:   1,
		Services: []entities.ServiceIncludedSnapshot{{
			ID:               "si-1",
			CatalogServiceID: "svc-1",
			Name:             "Troca de oleo",
			Price:            decimal.RequireFromString("120.00"),
		}},
	}
	total := decimal.RequireFromString("120.00")
	if withItem {
		snap.Items = []entities.ItemIncludedSnapshot{{
			ID:            "ii-1",
			CatalogItemID: "item-1",
			Name:          "Filtro de oleo",
			Price:         decimal.RequireFromString("35.50"),
			Quantity:      2,
			Kind:          entities.ItemKindPeca,
		}}
		total = total.Add(decimal.RequireFromString("71.00"))
	}

	switch status {
	case entities.StatusAguardandoAprovacao, entities.StatusAprovada, entities.StatusEmExecucao,
		entities.StatusFinalizada, entities.StatusEntregue:
		snap.Budget = &entities.BudgetSnapshot{ID: "budget-1", CreatedAt: testCreatedAt.Add(time.Hour), Price: total}
	}
	at := func(h int) *time.Time {
		v := testCreatedAt.Add(time.Duration(h) * time.Hour)
		return &v
	}
	switch status {
	case entities.StatusEmExecucao:
		snap.ExecutionStartedAt = at(2)
		snap.MustRemoveStock = withItem
	case entities.StatusFinalizada:
		snap.ExecutionStartedAt, snap.FinalizedAt = at(2), at(3)
	case entities.StatusEntregue:
		snap.ExecutionStartedAt, snap.FinalizedAt, snap.DeliveredAt = at(2), at(3), at(4)
	}
	return snap
}

func restore(t *testing.T, snap entities.ServiceOrderSnapshot) *entities.ServiceOrder {
	t.Helper()
	o, err := entities.RestoreServiceOrder(snap)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	return o
}

// storedOrder makes the repository mock behave like a versioned store holding
// one order. It returns the live snapshot so tests can inspect what was saved.
func storedOrder(t *testing.T, repo *mock_interfaces.MockIServiceOrderRepository, snap entities.ServiceOrderSnapshot) *entities.ServiceOrderSnapshot {
	t.Helper()
	stored := snap
	repo.EXPECT().GetByID(gomock.Any(), snap.ID).DoAndReturn(
		func(ctx context.Context, _ string) (*entities.ServiceOrder, error) {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return entities.RestoreServiceOrder(stored)
		},
	).AnyTimes()
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, o *entities.ServiceOrder) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if o.Version() != stored.Version {
				return interfaces.ErrConcurrentModification
			}
			o.SetVersion(o.Version() + 1)
			stored = o.Snapshot()
			return nil
		},
	).AnyTimes()
	return &stored
}
