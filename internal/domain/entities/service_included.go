package entities

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxServiceNameLength = 500

// ServiceIncluded is a catalog service attached to a service order. It is
// immutable once created.
type ServiceIncluded struct {
	id               string
	catalogServiceID string
	name             string
	price            decimal.Decimal
}

// NewServiceIncluded copies name and price from the catalog into a new line item.
func NewServiceIncluded(catalogServiceID, name string, price decimal.Decimal) (ServiceIncluded, error) {
	return restoreServiceIncluded(NewID(), catalogServiceID, name, price)
}

func restoreServiceIncluded(id, catalogServiceID, name string, price decimal.Decimal) (ServiceIncluded, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ServiceIncluded{}, invalidInput("service line item id is required")
	}
	catalogServiceID = strings.TrimSpace(catalogServiceID)
	if catalogServiceID == "" {
		return ServiceIncluded{}, invalidInput("catalog service id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ServiceIncluded{}, invalidInput("service name cannot be blank")
	}
	if utf8.RuneCountInString(name) > maxServiceNameLength {
		return ServiceIncluded{}, invalidInput("service name cannot exceed %d characters", maxServiceNameLength)
	}
	if price.IsNegative() {
		return ServiceIncluded{}, invalidInput("service price cannot be negative: %s", price.String())
	}
	return ServiceIncluded{
		id:               id,
		catalogServiceID: catalogServiceID,
		name:             name,
		price:            price,
	}, nil
}

func (s ServiceIncluded) ID() string               { return s.id }
func (s ServiceIncluded) CatalogServiceID() string { return s.catalogServiceID }
func (s ServiceIncluded) Name() string             { return s.name }
func (s ServiceIncluded) Price() decimal.Decimal   { return s.price }
