package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(ddb *fakeDynamo) {
	ddb.put("vehicles", record{
		"id":    &types.AttributeValueMemberS{Value: "veh-1"},
		"plate": &types.AttributeValueMemberS{Value: "ABC1D23"},
	})
	ddb.put("services", record{
		"id":    &types.AttributeValueMemberS{Value: "svc-1"},
		"name":  &types.AttributeValueMemberS{Value: "Troca de oleo"},
		"price": &types.AttributeValueMemberS{Value: "120.00"},
	})
	ddb.put("stock_items", record{
		"id":       &types.AttributeValueMemberS{Value: "item-1"},
		"name":     &types.AttributeValueMemberS{Value: "Filtro de oleo"},
		"price":    &types.AttributeValueMemberS{Value: "35.50"},
		"quantity": &types.AttributeValueMemberN{Value: "40"},
		"kind":     &types.AttributeValueMemberS{Value: "peca"},
	})
	ddb.put("stock_items", record{
		"id":    &types.AttributeValueMemberS{Value: "item-bad"},
		"name":  &types.AttributeValueMemberS{Value: "Broken"},
		"price": &types.AttributeValueMemberS{Value: "n/a"},
	})
}

func TestCatalogDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	seedCatalog(ddb)
	repo := NewCatalogDynamoRepository(ddb, "", "", "")

	t.Run("vehicle exists", func(t *testing.T) {
		ok, err := repo.Exists(ctx, "veh-1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.Exists(ctx, "veh-2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("service", func(t *testing.T) {
		svc, err := repo.GetService(ctx, "svc-1")
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, "Troca de oleo", svc.Name)
		assert.True(t, svc.Price.Equal(decimal.RequireFromString("120")))

		svc, err = repo.GetService(ctx, "svc-2")
		require.NoError(t, err)
		assert.Nil(t, svc)
	})

	t.Run("stock item", func(t *testing.T) {
		item, err := repo.GetStockItem(ctx, "item-1")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 40, item.Quantity)
		assert.Equal(t, "peca", item.Kind)
		assert.True(t, item.Price.Equal(decimal.RequireFromString("35.5")))

		item, err = repo.GetStockItem(ctx, "item-2")
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("unparseable price", func(t *testing.T) {
		_, err := repo.GetStockItem(ctx, "item-bad")
		assert.Error(t, err)
	})
}
