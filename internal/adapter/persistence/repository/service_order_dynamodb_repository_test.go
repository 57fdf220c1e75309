package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func executingSnapshot(id, code string) entities.ServiceOrderSnapshot {
	started := created.Add(2 * time.Hour)
	return entities.ServiceOrderSnapshot{
		ID:                 id,
		Code:               code,
		VehicleID:          "veh-1",
		Status:             entities.StatusEmExecucao,
		CreatedAt:          created,
		ExecutionStartedAt: &started,
		Services: []entities.ServiceIncludedSnapshot{
			{ID: "si-1", CatalogServiceID: "svc-1", Name: "Troca de oleo", Price: decimal.RequireFromString("120.00")},
		},
		Items: []entities.ItemIncludedSnapshot{
			{ID: "ii-1", CatalogItemID: "item-1", Name: "Filtro", Price: decimal.RequireFromString("35.50"), Quantity: 2, Kind: entities.ItemKindPeca},
		},
		Budget:          &entities.BudgetSnapshot{ID: "b-1", CreatedAt: created.Add(time.Hour), Price: decimal.RequireFromString("191.00")},
		MustRemoveStock: true,
		StockAttemptID:  "attempt-1",
	}
}

func newOrder(t *testing.T, snap entities.ServiceOrderSnapshot) *entities.ServiceOrder {
	t.Helper()
	o, err := entities.RestoreServiceOrder(snap)
	require.NoError(t, err)
	return o
}

func TestServiceOrderDynamoRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewServiceOrderDynamoRepository(ddb, "", zerolog.Nop())

	order := newOrder(t, executingSnapshot("os-1", "OS-20240301-ABC123"))
	require.NoError(t, repo.Create(ctx, order))
	assert.Equal(t, int64(1), order.Version())
	assert.Contains(t, ddb.tables, defaultServiceOrdersTableName)

	got, err := repo.GetByID(ctx, "os-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	snap := got.Snapshot()
	assert.Equal(t, entities.StatusEmExecucao, snap.Status)
	assert.Equal(t, entities.Code("OS-20240301-ABC123"), got.Code())
	assert.True(t, snap.CreatedAt.Equal(created))
	require.NotNil(t, snap.ExecutionStartedAt)
	assert.True(t, snap.ExecutionStartedAt.Equal(created.Add(2*time.Hour)))
	assert.Nil(t, snap.FinalizedAt)
	require.Len(t, snap.Services, 1)
	assert.True(t, snap.Services[0].Price.Equal(decimal.RequireFromString("120")))
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
	assert.Equal(t, entities.ItemKindPeca, snap.Items[0].Kind)
	require.NotNil(t, snap.Budget)
	assert.True(t, snap.Budget.Price.Equal(decimal.RequireFromString("191")))
	assert.True(t, got.Stock().AwaitingStockRemoval())
	assert.Equal(t, "attempt-1", got.StockAttemptID())
	assert.Equal(t, int64(1), got.Version())

	byCode, err := repo.GetByCode(ctx, "OS-20240301-ABC123")
	require.NoError(t, err)
	require.NotNil(t, byCode)
	assert.Equal(t, "os-1", byCode.ID())
}

func TestServiceOrderDynamoRepository_Missing(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "orders", zerolog.Nop())

	got, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByCode(ctx, "OS-20240301-ZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestServiceOrderDynamoRepository_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "", zerolog.Nop())

	require.NoError(t, repo.Create(ctx, newOrder(t, executingSnapshot("os-1", "OS-20240301-ABC123"))))
	err := repo.Create(ctx, newOrder(t, executingSnapshot("os-1", "OS-20240301-ABC124")))

	var cfe *types.ConditionalCheckFailedException
	assert.True(t, errors.As(err, &cfe), "expected conditional check failure, got %v", err)
}

func TestServiceOrderDynamoRepository_OptimisticUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "", zerolog.Nop())
	require.NoError(t, repo.Create(ctx, newOrder(t, executingSnapshot("os-1", "OS-20240301-ABC123"))))

	first, err := repo.GetByID(ctx, "os-1")
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, "os-1")
	require.NoError(t, err)

	first.ConfirmStockReduction()
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, int64(2), first.Version())

	second.CompensateSagaFailure()
	err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, interfaces.ErrConcurrentModification)
	assert.Equal(t, int64(1), second.Version())

	stored, err := repo.GetByID(ctx, "os-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StockConfirmed, stored.Stock().State())
	assert.Equal(t, entities.StatusEmExecucao, stored.Status())
	assert.Equal(t, int64(2), stored.Version())
}

func TestServiceOrderDynamoRepository_UpdateMissing(t *testing.T) {
	repo := NewServiceOrderDynamoRepository(newFakeDynamo(), "", zerolog.Nop())
	err := repo.Update(context.Background(), newOrder(t, executingSnapshot("os-1", "OS-20240301-ABC123")))
	assert.ErrorIs(t, err, interfaces.ErrConcurrentModification)
}

func TestServiceOrderDynamoRepository_List(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 2
	repo := NewServiceOrderDynamoRepository(ddb, "", zerolog.Nop())

	codes := []string{"OS-20240301-AAAAA1", "OS-20240301-AAAAA2", "OS-20240301-AAAAA3", "OS-20240301-AAAAA4", "OS-20240301-AAAAA5"}
	for i, code := range codes {
		require.NoError(t, repo.Create(ctx, newOrder(t, executingSnapshot("os-"+string(rune('a'+i)), code))))
	}

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, len(codes))
	assert.Equal(t, 3, ddb.scans)
}

func TestServiceOrderDynamoRepository_CorruptRecord(t *testing.T) {
	ddb := newFakeDynamo()
	repo := NewServiceOrderDynamoRepository(ddb, "", zerolog.Nop())
	ddb.put(defaultServiceOrdersTableName, record{
		"id":         &types.AttributeValueMemberS{Value: "os-1"},
		"code":       &types.AttributeValueMemberS{Value: "OS-20240301-ABC123"},
		"vehicle_id": &types.AttributeValueMemberS{Value: "veh-1"},
		"status":     &types.AttributeValueMemberS{Value: "em_execucao"},
		"created_at": &types.AttributeValueMemberS{Value: created.Format(time.RFC3339Nano)},
		"version":    &types.AttributeValueMemberN{Value: "3"},
	})

	_, err := repo.GetByID(context.Background(), "os-1")
	assert.True(t, entities.IsKind(err, entities.ErrorKindInvalidInput), "expected invalid_input, got %v", err)
}

func TestServiceOrderDynamoRepository_ListSkipsCorruptRecord(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewServiceOrderDynamoRepository(ddb, "", zerolog.Nop())
	require.NoError(t, repo.Create(ctx, newOrder(t, executingSnapshot("os-1", "OS-20240301-ABC123"))))
	ddb.put(defaultServiceOrdersTableName, record{
		"id":         &types.AttributeValueMemberS{Value: "os-2"},
		"code":       &types.AttributeValueMemberS{Value: "OS-20240301-ABC124"},
		"vehicle_id": &types.AttributeValueMemberS{Value: "veh-1"},
		"status":     &types.AttributeValueMemberS{Value: "entregue"},
		"created_at": &types.AttributeValueMemberS{Value: created.Format(time.RFC3339Nano)},
		"version":    &types.AttributeValueMemberN{Value: "1"},
	})

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "os-1", orders[0].ID())
}

func TestServiceOrderDynamoRepository_BackendError(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.err = errors.New("throttled")
	repo := NewServiceOrderDynamoRepository(ddb, "", zerolog.Nop())

	_, err := repo.GetByID(context.Background(), "os-1")
	assert.EqualError(t, err, "throttled")
	_, err = repo.List(context.Background())
	assert.EqualError(t, err, "throttled")
}
