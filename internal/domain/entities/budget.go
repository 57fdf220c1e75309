package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the quote (orçamento) generated from the line items present at the
// moment of generation. Later edits to the order do not change it.
//
// Monetary representation:
//   - Price = sum(service.Price) + sum(item.Price * item.Quantity), exact decimal.
type Budget struct {
	id        string
	createdAt time.Time
	price     decimal.Decimal
}

func newBudget(services []ServiceIncluded, items []ItemIncluded, at time.Time) Budget {
	return Budget{
		id:        NewID(),
		createdAt: at,
		price:     CalculateBudgetPrice(services, items),
	}
}

// CalculateBudgetPrice applies the budget sum rule to a set of line items.
func CalculateBudgetPrice(services []ServiceIncluded, items []ItemIncluded) decimal.Decimal {
	total := decimal.Zero
	for _, s := range services {
		total = total.Add(s.Price())
	}
	for _, i := range items {
		total = total.Add(i.Subtotal())
	}
	return total
}

// RestoreBudget rebuilds a persisted budget.
func RestoreBudget(id string, createdAt time.Time, price decimal.Decimal) (Budget, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Budget{}, invalidInput("budget id is required")
	}
	if createdAt.IsZero() {
		return Budget{}, invalidInput("budget creation date is required")
	}
	if price.IsNegative() {
		return Budget{}, invalidInput("budget price cannot be negative: %s", price.String())
	}
	return Budget{id: id, createdAt: createdAt, price: price}, nil
}

func (b Budget) ID() string             { return b.id }
func (b Budget) CreatedAt() time.Time   { return b.createdAt }
func (b Budget) Price() decimal.Decimal { return b.price }
