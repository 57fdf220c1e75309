package usecase

import (
	"context"
	"errors"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	ErrServiceOrderNotFound    = errors.New("service order not found")
	ErrInvalidServiceOrderID   = errors.New("invalid service order id")
	ErrInvalidServiceOrderCode = errors.New("invalid service order code")
	ErrInvalidVehicleID        = errors.New("invalid vehicle id")
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrInvalidCatalogID        = errors.New("invalid catalog id")
	ErrCatalogServiceNotFound  = errors.New("catalog service not found")
	ErrStockItemNotFound       = errors.New("stock item not found")
	ErrCodeGenerationExhausted = errors.New("could not generate a unique service order code")
)

// maxCodeAttempts bounds how many fresh codes Create tries before giving up.
const maxCodeAttempts = 10

// IServiceOrderUseCase exposes the service order lifecycle.
//
//   - POST /ordens-servico => Create()
//   - POST /ordens-servico/{id}/servicos, /itens => AddService(), AddItem()
//   - PATCH /ordens-servico/{id}/status => ChangeStatus()
//   - POST /ordens-servico/{id}/orcamento/aprovar|rejeitar => ApproveBudget(), RejectBudget()
//   - GET /ordens-servico => ListByPriority()
type IServiceOrderUseCase interface {
	Create(ctx context.Context, vehicleID string) (*entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (*entities.ServiceOrder, error)
	GetByCode(ctx context.Context, code string) (*entities.ServiceOrder, error)
	ListByPriority(ctx context.Context) ([]*entities.ServiceOrder, error)
	AverageTurnaround(ctx context.Context) (entities.TurnaroundReport, error)

	AddService(ctx context.Context, orderID, catalogServiceID string) (*entities.ServiceOrder, error)
	AddItem(ctx context.Context, orderID, catalogItemID string, quantity int) (*entities.ServiceOrder, error)
	RemoveService(ctx context.Context, orderID, serviceIncludedID string) (*entities.ServiceOrder, error)
	RemoveItem(ctx context.Context, orderID, itemIncludedID string) (*entities.ServiceOrder, error)

	ChangeStatus(ctx context.Context, orderID string, target entities.ServiceOrderStatus) (*entities.ServiceOrder, error)
	ApproveBudget(ctx context.Context, orderID string) (*entities.ServiceOrder, error)
	RejectBudget(ctx context.Context, orderID string) (*entities.ServiceOrder, error)
	Cancel(ctx context.Context, orderID string) (*entities.ServiceOrder, error)
}

type ServiceOrderUseCase struct {
	orderMutator
	vehicles   interfaces.IVehicleCatalog
	services   interfaces.IServiceCatalog
	stockItems interfaces.IStockItemCatalog
	saga       IStockSagaUseCase
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(
	repo interfaces.IServiceOrderRepository,
	vehicles interfaces.IVehicleCatalog,
	services interfaces.IServiceCatalog,
	stockItems interfaces.IStockItemCatalog,
	saga IStockSagaUseCase,
	metrics interfaces.IServiceOrderMetrics,
	log zerolog.Logger,
) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{
		orderMutator: orderMutator{repo: repo, metrics: metricsOrNoop(metrics), log: log},
		vehicles:     vehicles,
		services:     services,
		stockItems:   stockItems,
		saga:         saga,
	}
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, vehicleID string) (*entities.ServiceOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, ErrInvalidVehicleID
	}
	exists, err := u.vehicles.Exists(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrVehicleNotFound
	}

	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code := entities.GenerateCode(time.Now().UTC())
		existing, err := u.repo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			u.log.Warn().Str("code", code.String()).Int("attempt", attempt).Msg("[os][usecase] code collision, regenerating")
			continue
		}

		order, err := entities.NewServiceOrder(vehicleID, code)
		if err != nil {
			return nil, err
		}
		if err := u.repo.Create(ctx, order); err != nil {
			return nil, err
		}
		u.log.Info().Str("os_id", order.ID()).Str("code", order.Code().String()).Str("vehicle_id", vehicleID).Msg("[os][usecase] service order created")
		return order, nil
	}
	return nil, ErrCodeGenerationExhausted
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (*entities.ServiceOrder, error) {
	return u.load(ctx, id)
}

func (u *ServiceOrderUseCase) GetByCode(ctx context.Context, code string) (*entities.ServiceOrder, error) {
	c, err := entities.NewCode(code)
	if err != nil {
		return nil, ErrInvalidServiceOrderCode
	}
	order, err := u.repo.GetByCode(ctx, c)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrServiceOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderUseCase) ListByPriority(ctx context.Context) ([]*entities.ServiceOrder, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return entities.ListByPriority(orders), nil
}

func (u *ServiceOrderUseCase) AverageTurnaround(ctx context.Context) (entities.TurnaroundReport, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.TurnaroundReport{}, err
	}
	return entities.ComputeTurnaround(orders), nil
}

func (u *ServiceOrderUseCase) AddService(ctx context.Context, orderID, catalogServiceID string) (*entities.ServiceOrder, error) {
	catalogServiceID = strings.TrimSpace(catalogServiceID)
	if catalogServiceID == "" {
		return nil, ErrInvalidCatalogID
	}
	svc, err := u.services.GetService(ctx, catalogServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrCatalogServiceNotFound
	}
	return u.mutate(ctx, orderID, "add service", func(o *entities.ServiceOrder) error {
		_, err := o.AddService(svc.ID, svc.Name, svc.Price)
		return err
	})
}

func (u *ServiceOrderUseCase) AddItem(ctx context.Context, orderID, catalogItemID string, quantity int) (*entities.ServiceOrder, error) {
	catalogItemID = strings.TrimSpace(catalogItemID)
	if catalogItemID == "" {
		return nil, ErrInvalidCatalogID
	}
	item, err := u.stockItems.GetStockItem(ctx, catalogItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrStockItemNotFound
	}
	kind, err := entities.ParseItemKind(item.Kind)
	if err != nil {
		return nil, err
	}
	return u.mutate(ctx, orderID, "add item", func(o *entities.ServiceOrder) error {
		_, err := o.AddItem(item.ID, item.Name, item.Price, quantity, kind)
		return err
	})
}

func (u *ServiceOrderUseCase) RemoveService(ctx context.Context, orderID, serviceIncludedID string) (*entities.ServiceOrder, error) {
	serviceIncludedID = strings.TrimSpace(serviceIncludedID)
	return u.mutate(ctx, orderID, "remove service", func(o *entities.ServiceOrder) error {
		return o.RemoveService(serviceIncludedID)
	})
}

func (u *ServiceOrderUseCase) RemoveItem(ctx context.Context, orderID, itemIncludedID string) (*entities.ServiceOrder, error) {
	itemIncludedID = strings.TrimSpace(itemIncludedID)
	return u.mutate(ctx, orderID, "remove item", func(o *entities.ServiceOrder) error {
		return o.RemoveItem(itemIncludedID)
	})
}

// ChangeStatus applies the transition that leads to target. Starting
// execution is handed to the stock saga so the deduction is requested.
func (u *ServiceOrderUseCase) ChangeStatus(ctx context.Context, orderID string, target entities.ServiceOrderStatus) (*entities.ServiceOrder, error) {
	if target == entities.StatusEmExecucao && u.saga != nil {
		return u.saga.StartExecution(ctx, orderID)
	}
	return u.mutate(ctx, orderID, "change status to "+string(target), func(o *entities.ServiceOrder) error {
		return o.ChangeStatus(target)
	})
}

func (u *ServiceOrderUseCase) ApproveBudget(ctx context.Context, orderID string) (*entities.ServiceOrder, error) {
	return u.mutate(ctx, orderID, "approve budget", func(o *entities.ServiceOrder) error {
		return o.ApproveBudget()
	})
}

func (u *ServiceOrderUseCase) RejectBudget(ctx context.Context, orderID string) (*entities.ServiceOrder, error) {
	return u.mutate(ctx, orderID, "reject budget", func(o *entities.ServiceOrder) error {
		return o.RejectBudget()
	})
}

func (u *ServiceOrderUseCase) Cancel(ctx context.Context, orderID string) (*entities.ServiceOrder, error) {
	return u.mutate(ctx, orderID, "cancel", func(o *entities.ServiceOrder) error {
		return o.Cancel()
	})
}
