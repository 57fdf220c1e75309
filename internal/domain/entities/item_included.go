package entities

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxItemNameLength = 200

// ItemKind distinguishes parts from consumables.
type ItemKind string

const (
	ItemKindPeca   ItemKind = "peca"
	ItemKindInsumo ItemKind = "insumo"
)

func (k ItemKind) IsValid() bool {
	return k == ItemKindPeca || k == ItemKindInsumo
}

// ParseItemKind normalizes case and surrounding blanks.
func ParseItemKind(raw string) (ItemKind, error) {
	k := ItemKind(strings.ToLower(strings.TrimSpace(raw)))
	if !k.IsValid() {
		return "", invalidInput("invalid item kind %q", raw)
	}
	return k, nil
}

// ItemIncluded is a stock item attached to a service order. Only its quantity
// may change, and only upwards through IncreaseQuantity.
type ItemIncluded struct {
	id            string
	catalogItemID string
	name          string
	price         decimal.Decimal
	quantity      int
	kind          ItemKind
}

// NewItemIncluded creates a line item. The quantity must be positive.
func NewItemIncluded(catalogItemID, name string, price decimal.Decimal, quantity int, kind ItemKind) (ItemIncluded, error) {
	if quantity <= 0 {
		return ItemIncluded{}, invalidInput("item quantity must be greater than zero: %d", quantity)
	}
	return restoreItemIncluded(NewID(), catalogItemID, name, price, quantity, kind)
}

func restoreItemIncluded(id, catalogItemID, name string, price decimal.Decimal, quantity int, kind ItemKind) (ItemIncluded, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ItemIncluded{}, invalidInput("item line item id is required")
	}
	catalogItemID = strings.TrimSpace(catalogItemID)
	if catalogItemID == "" {
		return ItemIncluded{}, invalidInput("catalog item id is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ItemIncluded{}, invalidInput("item name cannot be blank")
	}
	if utf8.RuneCountInString(name) > maxItemNameLength {
		return ItemIncluded{}, invalidInput("item name cannot exceed %d characters", maxItemNameLength)
	}
	if price.IsNegative() {
		return ItemIncluded{}, invalidInput("item price cannot be negative: %s", price.String())
	}
	if quantity < 0 {
		return ItemIncluded{}, invalidInput("item quantity cannot be negative: %d", quantity)
	}
	if !kind.IsValid() {
		return ItemIncluded{}, invalidInput("invalid item kind %q", kind)
	}
	return ItemIncluded{
		id:            id,
		catalogItemID: catalogItemID,
		name:          name,
		price:         price,
		quantity:      quantity,
		kind:          kind,
	}, nil
}

// IncreaseQuantity returns a copy with the quantity raised by delta.
func (i ItemIncluded) IncreaseQuantity(delta int) (ItemIncluded, error) {
	if delta <= 0 {
		return ItemIncluded{}, invalidInput("quantity increment must be greater than zero: %d", delta)
	}
	i.quantity += delta
	return i, nil
}

// Subtotal is price × quantity.
func (i ItemIncluded) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i ItemIncluded) ID() string             { return i.id }
func (i ItemIncluded) CatalogItemID() string  { return i.catalogItemID }
func (i ItemIncluded) Name() string           { return i.name }
func (i ItemIncluded) Price() decimal.Decimal { return i.price }
func (i ItemIncluded) Quantity() int          { return i.quantity }
func (i ItemIncluded) Kind() ItemKind         { return i.kind }
