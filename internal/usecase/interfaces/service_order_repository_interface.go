package interfaces

import (
	"context"
	"errors"
	"mecanica_xpto/internal/domain/entities"
)

// ErrConcurrentModification is returned by Update when the stored version no
// longer matches the version the aggregate was loaded with.
var ErrConcurrentModification = errors.New("service order was modified concurrently")

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Contract:
//   - GetByID / GetByCode return (nil, nil) when nothing matches.
//   - Create fails if the id already exists.
//   - Update is optimistic: it only succeeds when the stored version equals
//     order.Version(), then bumps the version on the aggregate.

type IServiceOrderRepository interface {
	Create(ctx context.Context, order *entities.ServiceOrder) error
	GetByID(ctx context.Context, id string) (*entities.ServiceOrder, error)
	GetByCode(ctx context.Context, code entities.Code) (*entities.ServiceOrder, error)
	Update(ctx context.Context, order *entities.ServiceOrder) error
	List(ctx context.Context) ([]*entities.ServiceOrder, error)
}
