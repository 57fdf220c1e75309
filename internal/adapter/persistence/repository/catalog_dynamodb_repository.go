package repository

import (
	"context"
	"fmt"

	"mecanica_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultVehiclesTableName   = "vehicles"
	defaultServicesTableName   = "services"
	defaultStockItemsTableName = "stock_items"
)

type catalogServiceItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Price string `dynamodbav:"price"`
}

type catalogStockItem struct {
	ID       string `dynamodbav:"id"`
	Name     string `dynamodbav:"name"`
	Price    string `dynamodbav:"price"`
	Quantity int    `dynamodbav:"quantity"`
	Kind     string `dynamodbav:"kind"`
}

// CatalogDynamoRepository reads the vehicle, service and stock item tables
// owned by the registration services. It never writes to them.
//
// Table requirements (all three):
//   - PK: id (string)
type CatalogDynamoRepository struct {
	ddb             DynamoDBAPI
	vehiclesTable   string
	servicesTable   string
	stockItemsTable string
}

var (
	_ interfaces.IVehicleCatalog   = (*CatalogDynamoRepository)(nil)
	_ interfaces.IServiceCatalog   = (*CatalogDynamoRepository)(nil)
	_ interfaces.IStockItemCatalog = (*CatalogDynamoRepository)(nil)
)

func NewCatalogDynamoRepository(ddb DynamoDBAPI, vehiclesTable, servicesTable, stockItemsTable string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:             ddb,
		vehiclesTable:   tableOrDefault(vehiclesTable, defaultVehiclesTableName),
		servicesTable:   tableOrDefault(servicesTable, defaultServicesTableName),
		stockItemsTable: tableOrDefault(stockItemsTable, defaultStockItemsTableName),
	}
}

func (r *CatalogDynamoRepository) Exists(ctx context.Context, vehicleID string) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.vehiclesTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: vehicleID},
		},
		ProjectionExpression: aws.String("#id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return false, err
	}
	return len(out.Item) > 0, nil
}

func (r *CatalogDynamoRepository) GetService(ctx context.Context, serviceID string) (*interfaces.CatalogService, error) {
	var it catalogServiceItem
	found, err := r.get(ctx, r.servicesTable, serviceID, &it)
	if err != nil || !found {
		return nil, err
	}
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return nil, fmt.Errorf("service %s price: %w", it.ID, err)
	}
	return &interfaces.CatalogService{ID: it.ID, Name: it.Name, Price: price}, nil
}

func (r *CatalogDynamoRepository) GetStockItem(ctx context.Context, itemID string) (*interfaces.CatalogStockItem, error) {
	var it catalogStockItem
	found, err := r.get(ctx, r.stockItemsTable, itemID, &it)
	if err != nil || !found {
		return nil, err
	}
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return nil, fmt.Errorf("stock item %s price: %w", it.ID, err)
	}
	return &interfaces.CatalogStockItem{
		ID:       it.ID,
		Name:     it.Name,
		Price:    price,
		Quantity: it.Quantity,
		Kind:     it.Kind,
	}, nil
}

func (r *CatalogDynamoRepository) get(ctx context.Context, table, id string, into any) (bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, err
	}
	if len(out.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(out.Item, into); err != nil {
		return false, err
	}
	return true, nil
}
