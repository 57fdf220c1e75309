package entities

import (
	"sort"
	"time"
)

// priorityRank orders open work; lower is more urgent. aprovada is waiting on
// the shop, not the customer, and comes after freshly received orders.
func priorityRank(s ServiceOrderStatus) int {
	switch s {
	case StatusEmExecucao:
		return 1
	case StatusAguardandoAprovacao:
		return 2
	case StatusEmDiagnostico:
		return 3
	case StatusRecebida:
		return 4
	default:
		return 5
	}
}

// ListByPriority drops finalized, delivered and cancelled orders and sorts the
// rest by priority rank, oldest first within a rank. The sort is stable, so
// orders with equal rank and creation date keep their input order.
func ListByPriority(orders []*ServiceOrder) []*ServiceOrder {
	out := make([]*ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if o == nil || o.status.IsTerminal() {
			continue
		}
		out = append(out, o)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := priorityRank(out[i].status), priorityRank(out[j].status)
		if ri != rj {
			return ri < rj
		}
		return out[i].history.CreatedAt().Before(out[j].history.CreatedAt())
	})
	return out
}

// TurnaroundReport summarizes how long orders take in the shop.
type TurnaroundReport struct {
	// FinalizedOrders counts orders with both execution start and finalization.
	FinalizedOrders int
	// DeliveredOrders counts orders with a delivery date.
	DeliveredOrders int
	// AverageExecution is the mean of FinalizedAt - ExecutionStartedAt.
	AverageExecution time.Duration
	// AverageTotal is the mean of DeliveredAt - CreatedAt.
	AverageTotal time.Duration
}

// ComputeTurnaround averages execution and total lead time over the orders
// that reached the corresponding milestones. Averages are zero when no order
// qualifies.
func ComputeTurnaround(orders []*ServiceOrder) TurnaroundReport {
	var (
		report         TurnaroundReport
		executionTotal time.Duration
		leadTotal      time.Duration
	)
	for _, o := range orders {
		if o == nil {
			continue
		}
		started, finalized, delivered := o.history.executionStartedAt, o.history.finalizedAt, o.history.deliveredAt
		if started != nil && finalized != nil {
			report.FinalizedOrders++
			executionTotal += finalized.Sub(*started)
		}
		if delivered != nil {
			report.DeliveredOrders++
			leadTotal += delivered.Sub(o.history.createdAt)
		}
	}
	if report.FinalizedOrders > 0 {
		report.AverageExecution = executionTotal / time.Duration(report.FinalizedOrders)
	}
	if report.DeliveredOrders > 0 {
		report.AverageTotal = leadTotal / time.Duration(report.DeliveredOrders)
	}
	return report
}
