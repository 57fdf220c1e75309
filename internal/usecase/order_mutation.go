package usecase

import (
	"context"
	"errors"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const maxConcurrentUpdateAttempts = 5

// conflictBackOff paces re-fetches after an optimistic-lock conflict.
var conflictBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	return backoff.WithMaxRetries(b, maxConcurrentUpdateAttempts-1)
}

// orderMutator loads an order, applies exactly one aggregate operation and
// saves it. On a version conflict the whole load-apply-save cycle is retried,
// so the operation is re-validated against the fresh state.
type orderMutator struct {
	repo    interfaces.IServiceOrderRepository
	metrics interfaces.IServiceOrderMetrics
	log     zerolog.Logger
}

func (m orderMutator) load(ctx context.Context, id string) (*entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidServiceOrderID
	}
	order, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrServiceOrderNotFound
	}
	return order, nil
}

func (m orderMutator) mutate(ctx context.Context, id, operation string, apply func(o *entities.ServiceOrder) error) (*entities.ServiceOrder, error) {
	var result *entities.ServiceOrder
	attempt := 0

	run := func() error {
		attempt++
		order, err := m.load(ctx, id)
		if err != nil {
			return backoff.Permanent(err)
		}
		from := order.Status()
		if err := apply(order); err != nil {
			return backoff.Permanent(err)
		}
		if err := m.repo.Update(ctx, order); err != nil {
			if errors.Is(err, interfaces.ErrConcurrentModification) {
				m.log.Warn().Str("os_id", id).Str("operation", operation).Int("attempt", attempt).Msg("[os][usecase] concurrent modification, retrying")
				return err
			}
			return backoff.Permanent(err)
		}
		if from != order.Status() {
			m.metrics.StatusChanged(from, order.Status())
		}
		result = order
		return nil
	}

	if err := backoff.Retry(run, backoff.WithContext(conflictBackOff(), ctx)); err != nil {
		m.log.Info().Err(err).Str("os_id", id).Str("operation", operation).Msg("[os][usecase] operation rejected")
		return nil, err
	}
	m.log.Info().Str("os_id", result.ID()).Str("code", result.Code().String()).Str("operation", operation).Str("status", string(result.Status())).Msg("[os][usecase] operation applied")
	return result, nil
}

type noopMetrics struct{}

func (noopMetrics) StatusChanged(entities.ServiceOrderStatus, entities.ServiceOrderStatus) {}
func (noopMetrics) StockSagaOutcome(string)                                              {}

func metricsOrNoop(m interfaces.IServiceOrderMetrics) interfaces.IServiceOrderMetrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
