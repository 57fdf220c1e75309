package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// nowFunc is the aggregate's clock; every milestone is stamped in UTC.
var nowFunc = func() time.Time { return time.Now().UTC() }

// ServiceOrder (ordem de serviço) is the aggregate root of one repair job,
// from intake to delivery. All transitions go through its methods; a failed
// call leaves the order unchanged.
//
// Ownership:
//   - services, items, budget, history and stock are owned exclusively by the order.
//   - getters hand out copies.
//
// Concurrency: the aggregate is not safe for concurrent use. Persistence
// serializes writers per order through the version number.
type ServiceOrder struct {
	id           string
	code         Code
	vehicleID    string
	status       ServiceOrderStatus
	history      TemporalHistory
	services     []ServiceIncluded
	items        []ItemIncluded
	budget       *Budget
	stock        StockInteraction
	stockAttempt string // current deduction; reissued whenever execution starts with items
	version      int64
}

// NewServiceOrder opens an order in status recebida.
func NewServiceOrder(vehicleID string, code Code) (*ServiceOrder, error) {
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return nil, invalidInput("vehicle id is required")
	}
	c, err := NewCode(string(code))
	if err != nil {
		return nil, err
	}
	history, err := NewTemporalHistory(nowFunc())
	if err != nil {
		return nil, err
	}
	return &ServiceOrder{
		id:        NewID(),
		code:      c,
		vehicleID: vehicleID,
		status:    StatusRecebida,
		history:   history,
		stock:     NoStockInteraction(),
	}, nil
}

func (o *ServiceOrder) ID() string                 { return o.id }
func (o *ServiceOrder) Code() Code                 { return o.code }
func (o *ServiceOrder) VehicleID() string          { return o.vehicleID }
func (o *ServiceOrder) Status() ServiceOrderStatus { return o.status }
func (o *ServiceOrder) History() TemporalHistory   { return o.history }
func (o *ServiceOrder) Stock() StockInteraction    { return o.stock }
func (o *ServiceOrder) StockAttemptID() string     { return o.stockAttempt }

// IsCurrentStockAttempt reports whether a stock answer belongs to the latest
// deduction. An empty id is accepted for callers that do not echo it.
func (o *ServiceOrder) IsCurrentStockAttempt(attemptID string) bool {
	attemptID = strings.TrimSpace(attemptID)
	return attemptID == "" || attemptID == o.stockAttempt
}

// Version is the optimistic-concurrency token owned by persistence.
func (o *ServiceOrder) Version() int64 { return o.version }

// SetVersion is called by persistence after a successful write.
func (o *ServiceOrder) SetVersion(v int64) { o.version = v }

func (o *ServiceOrder) Services() []ServiceIncluded {
	out := make([]ServiceIncluded, len(o.services))
	copy(out, o.services)
	return out
}

func (o *ServiceOrder) Items() []ItemIncluded {
	out := make([]ItemIncluded, len(o.items))
	copy(out, o.items)
	return out
}

// Budget returns nil until GenerateBudget succeeds.
func (o *ServiceOrder) Budget() *Budget {
	if o.budget == nil {
		return nil
	}
	b := *o.budget
	return &b
}

// ---- line items -----------------------------------------------------------

func (o *ServiceOrder) ensureEditable(operation string) error {
	if o.status != StatusRecebida && o.status != StatusEmDiagnostico {
		return ruleBroken("cannot %s: service order %s is %s; line items can only change while %s or %s",
			operation, o.code, o.status, StatusRecebida, StatusEmDiagnostico)
	}
	return nil
}

// AddService attaches a catalog service. The same catalog service cannot be added twice.
func (o *ServiceOrder) AddService(catalogServiceID, name string, price decimal.Decimal) (ServiceIncluded, error) {
	if err := o.ensureEditable("add service"); err != nil {
		return ServiceIncluded{}, err
	}
	svc, err := NewServiceIncluded(catalogServiceID, name, price)
	if err != nil {
		return ServiceIncluded{}, err
	}
	for _, existing := range o.services {
		if existing.CatalogServiceID() == svc.CatalogServiceID() {
			return ServiceIncluded{}, ruleBroken("service %s is already included in service order %s", svc.CatalogServiceID(), o.code)
		}
	}
	o.services = append(o.services, svc)
	return svc, nil
}

// AddItem attaches a stock item, or raises the quantity of the line that
// already references the same catalog item.
func (o *ServiceOrder) AddItem(catalogItemID, name string, price decimal.Decimal, quantity int, kind ItemKind) (ItemIncluded, error) {
	if err := o.ensureEditable("add item"); err != nil {
		return ItemIncluded{}, err
	}
	catalogItemID = strings.TrimSpace(catalogItemID)
	for idx, existing := range o.items {
		if existing.CatalogItemID() != catalogItemID {
			continue
		}
		updated, err := existing.IncreaseQuantity(quantity)
		if err != nil {
			return ItemIncluded{}, err
		}
		o.items[idx] = updated
		return updated, nil
	}
	item, err := NewItemIncluded(catalogItemID, name, price, quantity, kind)
	if err != nil {
		return ItemIncluded{}, err
	}
	o.items = append(o.items, item)
	return item, nil
}

// RemoveService drops a service line by its line-item id.
func (o *ServiceOrder) RemoveService(serviceIncludedID string) error {
	if err := o.ensureEditable("remove service"); err != nil {
		return err
	}
	for idx, s := range o.services {
		if s.ID() == serviceIncludedID {
			o.services = append(o.services[:idx:idx], o.services[idx+1:]...)
			return nil
		}
	}
	return notFound("service %s not found in service order %s", serviceIncludedID, o.code)
}

// RemoveItem drops an item line by its line-item id.
func (o *ServiceOrder) RemoveItem(itemIncludedID string) error {
	if err := o.ensureEditable("remove item"); err != nil {
		return err
	}
	for idx, i := range o.items {
		if i.ID() == itemIncludedID {
			o.items = append(o.items[:idx:idx], o.items[idx+1:]...)
			return nil
		}
	}
	return notFound("item %s not found in service order %s", itemIncludedID, o.code)
}

// ---- state machine --------------------------------------------------------

func (o *ServiceOrder) requireStatus(operation string, allowed ...ServiceOrderStatus) error {
	for _, s := range allowed {
		if o.status == s {
			return nil
		}
	}
	return ruleBroken("cannot %s: service order %s is %s", operation, o.code, o.status)
}

// StartDiagnosis: recebida -> em_diagnostico.
func (o *ServiceOrder) StartDiagnosis() error {
	if err := o.requireStatus("start diagnosis", StatusRecebida); err != nil {
		return err
	}
	o.status = StatusEmDiagnostico
	return nil
}

// GenerateBudget: em_diagnostico -> aguardando_aprovacao. The budget is
// computed once from the current line items.
func (o *ServiceOrder) GenerateBudget() error {
	if err := o.requireStatus("generate budget", StatusEmDiagnostico); err != nil {
		return err
	}
	if o.budget != nil {
		return ruleBroken("cannot generate budget: service order %s already has budget %s", o.code, o.budget.ID())
	}
	if len(o.services) == 0 && len(o.items) == 0 {
		return ruleBroken("cannot generate budget: service order %s has no services or items", o.code)
	}
	b := newBudget(o.services, o.items, nowFunc())
	o.budget = &b
	o.status = StatusAguardandoAprovacao
	return nil
}

// ApproveBudget: aguardando_aprovacao -> aprovada.
func (o *ServiceOrder) ApproveBudget() error {
	if err := o.requireStatus("approve budget", StatusAguardandoAprovacao); err != nil {
		return err
	}
	if o.budget == nil {
		return ruleBroken("cannot approve budget: service order %s has no budget", o.code)
	}
	o.status = StatusAprovada
	return nil
}

// RejectBudget: aguardando_aprovacao -> cancelada.
func (o *ServiceOrder) RejectBudget() error {
	if err := o.requireStatus("reject budget", StatusAguardandoAprovacao); err != nil {
		return err
	}
	if o.budget == nil {
		return ruleBroken("cannot reject budget: service order %s has no budget", o.code)
	}
	o.status = StatusCancelada
	return nil
}

// StartExecution: aprovada -> em_execucao. With items the order enters the
// stock saga and waits for the deduction to be confirmed.
func (o *ServiceOrder) StartExecution() error {
	if err := o.requireStatus("start execution", StatusAprovada); err != nil {
		return err
	}
	history, err := o.history.WithExecutionStarted(nowFunc())
	if err != nil {
		return err
	}
	stock, attempt := NoStockInteraction(), ""
	if len(o.items) > 0 {
		stock, attempt = AwaitingStockReduction(), NewID()
	}
	o.history = history
	o.stock = stock
	o.stockAttempt = attempt
	o.status = StatusEmExecucao
	return nil
}

// FinalizeExecution: em_execucao -> finalizada. Refused while the stock
// deduction is unanswered.
func (o *ServiceOrder) FinalizeExecution() error {
	if err := o.requireStatus("finalize execution", StatusEmExecucao); err != nil {
		return err
	}
	if o.stock.AwaitingStockRemoval() {
		return ruleBroken("cannot finalize execution: service order %s is %s and still awaiting stock removal", o.code, o.status)
	}
	history, err := o.history.WithFinalized(nowFunc())
	if err != nil {
		return err
	}
	o.history = history
	o.status = StatusFinalizada
	return nil
}

// Deliver: finalizada -> entregue.
func (o *ServiceOrder) Deliver() error {
	if err := o.requireStatus("deliver", StatusFinalizada); err != nil {
		return err
	}
	history, err := o.history.WithDelivered(nowFunc())
	if err != nil {
		return err
	}
	o.history = history
	o.status = StatusEntregue
	return nil
}

// Cancel is only possible before the budget is approved. Committed orders
// leave through RejectBudget or CompensateSagaFailure instead.
func (o *ServiceOrder) Cancel() error {
	if err := o.requireStatus("cancel", StatusRecebida, StatusEmDiagnostico, StatusAguardandoAprovacao); err != nil {
		return err
	}
	o.status = StatusCancelada
	return nil
}

// ChangeStatus routes a requested target status to its transition.
func (o *ServiceOrder) ChangeStatus(target ServiceOrderStatus) error {
	switch target {
	case StatusRecebida:
		return ruleBroken("cannot change status to %s: service order %s is %s", target, o.code, o.status)
	case StatusEmDiagnostico:
		return o.StartDiagnosis()
	case StatusAguardandoAprovacao:
		return o.GenerateBudget()
	case StatusAprovada:
		return o.ApproveBudget()
	case StatusEmExecucao:
		return o.StartExecution()
	case StatusFinalizada:
		return o.FinalizeExecution()
	case StatusEntregue:
		return o.Deliver()
	case StatusCancelada:
		return o.Cancel()
	default:
		return invalidInput("cannot change status to %q: unknown status", target)
	}
}

// ---- stock saga -----------------------------------------------------------

// ConfirmStockReduction records the stock service's success. It does not look
// at the status: the answer may arrive after a compensation already ran.
func (o *ServiceOrder) ConfirmStockReduction() {
	o.stock = o.stock.Confirmed()
}

// MarkStockReductionFailure records the stock service's failure without
// touching the status.
func (o *ServiceOrder) MarkStockReductionFailure() {
	o.stock = o.stock.Failed()
}

// CompensateSagaFailure reverts em_execucao to aprovada so execution can be
// started again. In any other status only the failure flag is set. It reports
// whether the status was reverted.
func (o *ServiceOrder) CompensateSagaFailure() bool {
	o.stock = o.stock.Failed()
	if o.status != StatusEmExecucao {
		return false
	}
	o.status = StatusAprovada
	return true
}
