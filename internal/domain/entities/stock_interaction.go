package entities

// StockInteractionState is the tagged view of a StockInteraction.
type StockInteractionState string

const (
	StockNoInteraction     StockInteractionState = "sem_interacao"
	StockAwaitingReduction StockInteractionState = "aguardando_reducao"
	StockConfirmed         StockInteractionState = "confirmada"
	StockFailed            StockInteractionState = "falhou"
)

// StockInteraction tracks the inventory deduction saga of a service order. It
// changes independently of the order status because the stock service answers
// asynchronously. Mutators return a new value.
type StockInteraction struct {
	mustRemoveStock          bool
	stockRemovedSuccessfully *bool
}

// NoStockInteraction is the state of an order whose execution needs no stock.
func NoStockInteraction() StockInteraction {
	return StockInteraction{}
}

// AwaitingStockReduction is the state right after execution starts with items.
func AwaitingStockReduction() StockInteraction {
	return StockInteraction{mustRemoveStock: true}
}

// RestoreStockInteraction rebuilds a persisted value. Any combination is
// accepted: a late webhook may resolve an order that never needed stock.
func RestoreStockInteraction(mustRemoveStock bool, stockRemovedSuccessfully *bool) StockInteraction {
	return StockInteraction{mustRemoveStock: mustRemoveStock, stockRemovedSuccessfully: copyBool(stockRemovedSuccessfully)}
}

// Confirmed records a successful deduction.
func (s StockInteraction) Confirmed() StockInteraction {
	ok := true
	return StockInteraction{mustRemoveStock: s.mustRemoveStock, stockRemovedSuccessfully: &ok}
}

// Failed records a failed deduction.
func (s StockInteraction) Failed() StockInteraction {
	ok := false
	return StockInteraction{mustRemoveStock: s.mustRemoveStock, stockRemovedSuccessfully: &ok}
}

func (s StockInteraction) MustRemoveStock() bool { return s.mustRemoveStock }

func (s StockInteraction) StockRemovedSuccessfully() *bool { return copyBool(s.stockRemovedSuccessfully) }

// AwaitingStockRemoval reports a deduction that was requested and not yet answered.
func (s StockInteraction) AwaitingStockRemoval() bool {
	return s.mustRemoveStock && s.stockRemovedSuccessfully == nil
}

// StockResolved reports that no inventory concern is pending or failed.
func (s StockInteraction) StockResolved() bool {
	return !s.mustRemoveStock || (s.stockRemovedSuccessfully != nil && *s.stockRemovedSuccessfully)
}

func (s StockInteraction) State() StockInteractionState {
	switch {
	case s.stockRemovedSuccessfully != nil && *s.stockRemovedSuccessfully:
		return StockConfirmed
	case s.stockRemovedSuccessfully != nil:
		return StockFailed
	case s.mustRemoveStock:
		return StockAwaitingReduction
	default:
		return StockNoInteraction
	}
}

func copyBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
