package usecase

import (
	"context"
	"errors"
	"fmt"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase/interfaces"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrStockUnavailable     = errors.New("stock unavailable")
	ErrStockDeductionFailed = errors.New("stock deduction failed")
	// ErrStaleStockResult marks a webhook answering a deduction that has since
	// been replaced by a new execution attempt.
	ErrStaleStockResult = errors.New("stock result belongs to a previous attempt")
)

const (
	defaultStockTimeout = 10 * time.Second
	maxDeductionRetries = 2
)

// stockBackOff paces retries of a single deduction request.
var stockBackOff = func() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second
	return backoff.WithMaxRetries(b, maxDeductionRetries)
}

// IStockSagaUseCase drives the stock deduction that accompanies the start of
// execution, and its compensation.
//
//   - PATCH /ordens-servico/{id}/status (em_execucao) => StartExecution()
//   - POST /webhooks/estoque => HandleStockResult()
//   - POST /ordens-servico/{id}/estoque/compensar => Compensate()
type IStockSagaUseCase interface {
	StartExecution(ctx context.Context, orderID string) (*entities.ServiceOrder, error)
	HandleStockResult(ctx context.Context, orderID, attemptID string, success bool) (*entities.ServiceOrder, error)
	Compensate(ctx context.Context, orderID string) (*entities.ServiceOrder, error)
}

type StockSagaUseCase struct {
	orderMutator
	stock   interfaces.IStockService
	timeout time.Duration
}

var _ IStockSagaUseCase = (*StockSagaUseCase)(nil)

func NewStockSagaUseCase(
	repo interfaces.IServiceOrderRepository,
	stock interfaces.IStockService,
	metrics interfaces.IServiceOrderMetrics,
	timeout time.Duration,
	log zerolog.Logger,
) *StockSagaUseCase {
	if timeout <= 0 {
		timeout = defaultStockTimeout
	}
	return &StockSagaUseCase{
		orderMutator: orderMutator{repo: repo, metrics: metricsOrNoop(metrics), log: log},
		stock:        stock,
		timeout:      timeout,
	}
}

// StartExecution checks availability for every item, moves the order to
// em_execucao and asks the stock service to deduct the items. A deduction that
// cannot be requested is compensated before returning.
func (u *StockSagaUseCase) StartExecution(ctx context.Context, orderID string) (*entities.ServiceOrder, error) {
	current, err := u.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if current.Status() == entities.StatusAprovada {
		if err := u.checkAvailability(ctx, current.Items()); err != nil {
			return nil, err
		}
	}

	order, err := u.mutate(ctx, orderID, "start execution", func(o *entities.ServiceOrder) error {
		return o.StartExecution()
	})
	if err != nil {
		return nil, err
	}
	if !order.Stock().AwaitingStockRemoval() {
		return order, nil
	}

	acks, err := u.deductItems(ctx, order)
	if err != nil {
		u.log.Error().Err(err).Str("os_id", order.ID()).Msg("[os][saga] stock deduction failed, compensating")
		// The compensation must land even when the request that started the
		// execution has been cancelled.
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.timeout)
		defer cancel()
		if _, cerr := u.Compensate(cctx, order.ID()); cerr != nil {
			u.log.Error().Err(cerr).Str("os_id", order.ID()).Msg("[os][saga] compensation failed")
			return nil, errors.Join(fmt.Errorf("%w: %v", ErrStockDeductionFailed, err), cerr)
		}
		return nil, fmt.Errorf("%w: %v", ErrStockDeductionFailed, err)
	}

	for _, ack := range acks {
		if !ack.Confirmed {
			u.metrics.StockSagaOutcome(interfaces.SagaOutcomePending)
			u.log.Info().Str("os_id", order.ID()).Msg("[os][saga] stock deduction requested, awaiting confirmation")
			return order, nil
		}
	}
	confirmed, err := u.mutate(ctx, order.ID(), "confirm stock reduction", func(o *entities.ServiceOrder) error {
		o.ConfirmStockReduction()
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.metrics.StockSagaOutcome(interfaces.SagaOutcomeConfirmed)
	return confirmed, nil
}

// HandleStockResult records the stock service's asynchronous answer. A
// failure also runs the compensation. An answer for a superseded attempt is
// ignored and the current order is returned unchanged.
func (u *StockSagaUseCase) HandleStockResult(ctx context.Context, orderID, attemptID string, success bool) (*entities.ServiceOrder, error) {
	operation := "compensate stock saga"
	if success {
		operation = "confirm stock reduction"
	}
	reverted := false
	order, err := u.mutate(ctx, orderID, operation, func(o *entities.ServiceOrder) error {
		if !o.IsCurrentStockAttempt(attemptID) {
			return ErrStaleStockResult
		}
		if success {
			o.ConfirmStockReduction()
			return nil
		}
		reverted = o.CompensateSagaFailure()
		return nil
	})
	if errors.Is(err, ErrStaleStockResult) {
		u.log.Warn().Str("os_id", orderID).Str("attempt_id", attemptID).Bool("success", success).Msg("[os][saga] ignoring stock result for a previous attempt")
		return u.load(ctx, orderID)
	}
	if err != nil {
		return nil, err
	}
	if success {
		u.metrics.StockSagaOutcome(interfaces.SagaOutcomeConfirmed)
		return order, nil
	}
	u.metrics.StockSagaOutcome(interfaces.SagaOutcomeFailed)
	u.metrics.StockSagaOutcome(interfaces.SagaOutcomeCompensated)
	u.log.Warn().Str("os_id", order.ID()).Bool("reverted", reverted).Str("status", string(order.Status())).Msg("[os][saga] saga compensated")
	return order, nil
}

func (u *StockSagaUseCase) Compensate(ctx context.Context, orderID string) (*entities.ServiceOrder, error) {
	reverted := false
	order, err := u.mutate(ctx, orderID, "compensate stock saga", func(o *entities.ServiceOrder) error {
		reverted = o.CompensateSagaFailure()
		return nil
	})
	if err != nil {
		return nil, err
	}
	u.metrics.StockSagaOutcome(interfaces.SagaOutcomeCompensated)
	u.log.Warn().Str("os_id", order.ID()).Bool("reverted", reverted).Str("status", string(order.Status())).Msg("[os][saga] saga compensated")
	return order, nil
}

func (u *StockSagaUseCase) checkAvailability(ctx context.Context, items []entities.ItemIncluded) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, item := range items {
		g.Go(func() error {
			ok, err := u.stock.CheckAvailability(gctx, item.CatalogItemID(), item.Quantity())
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: item %s quantity %d", ErrStockUnavailable, item.CatalogItemID(), item.Quantity())
			}
			return nil
		})
	}
	return g.Wait()
}

func (u *StockSagaUseCase) deductItems(ctx context.Context, order *entities.ServiceOrder) ([]interfaces.StockDeductionAck, error) {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	items := order.Items()
	acks := make([]interfaces.StockDeductionAck, 0, len(items))
	for _, item := range items {
		var ack interfaces.StockDeductionAck
		request := func() error {
			var err error
			ack, err = u.stock.DeductQuantity(ctx, order.ID(), order.StockAttemptID(), item.CatalogItemID(), item.Quantity())
			if errors.Is(err, interfaces.ErrStockRejected) {
				return backoff.Permanent(err)
			}
			return err
		}
		if err := backoff.Retry(request, backoff.WithContext(stockBackOff(), ctx)); err != nil {
			return nil, fmt.Errorf("item %s: %w", item.CatalogItemID(), err)
		}
		acks = append(acks, ack)
	}
	return acks, nil
}
