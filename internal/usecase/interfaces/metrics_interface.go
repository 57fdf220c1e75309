package interfaces

import "mecanica_xpto/internal/domain/entities"

// Saga outcomes reported to IServiceOrderMetrics.
const (
	SagaOutcomeConfirmed   = "confirmed"
	SagaOutcomePending     = "pending"
	SagaOutcomeFailed      = "failed"
	SagaOutcomeCompensated = "compensated"
)

// IServiceOrderMetrics receives business counters. A nil implementation is
// replaced by a no-op in the use cases.
type IServiceOrderMetrics interface {
	StatusChanged(from, to entities.ServiceOrderStatus)
	StockSagaOutcome(outcome string)
}
