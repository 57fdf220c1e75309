package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// CatalogService is the subset of a catalog service copied into a line item.
type CatalogService struct {
	ID    string
	Name  string
	Price decimal.Decimal
}

// CatalogStockItem is the subset of a stock item copied into a line item.
type CatalogStockItem struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Kind     string
}

// Catalog lookups return (nil, nil) / (false, nil) when the id is unknown.

type IVehicleCatalog interface {
	Exists(ctx context.Context, vehicleID string) (bool, error)
}

type IServiceCatalog interface {
	GetService(ctx context.Context, serviceID string) (*CatalogService, error)
}

type IStockItemCatalog interface {
	GetStockItem(ctx context.Context, itemID string) (*CatalogStockItem, error)
}
