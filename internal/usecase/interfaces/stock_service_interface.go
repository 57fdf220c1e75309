package interfaces

import (
	"context"
	"errors"
)

// ErrStockRejected marks a definitive refusal from the stock service (unknown
// item, insufficient quantity). Retrying will not help.
var ErrStockRejected = errors.New("stock service rejected the request")

// StockDeductionAck is the stock service's answer to a deduction request.
// Confirmed is true when the deduction was applied synchronously; otherwise
// the outcome arrives later through the stock webhook.
type StockDeductionAck struct {
	RequestID string
	Confirmed bool
}

// IStockService abstracts the external inventory service.
type IStockService interface {
	CheckAvailability(ctx context.Context, itemID string, quantity int) (bool, error)
	// DeductQuantity removes quantity units of itemID on behalf of a service
	// order. attemptID identifies the deduction round and is echoed back by the
	// asynchronous webhook.
	DeductQuantity(ctx context.Context, serviceOrderID, attemptID, itemID string, quantity int) (StockDeductionAck, error)
}
