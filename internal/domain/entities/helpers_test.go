package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testCode() Code {
	return GenerateCode(time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC))
}

func newTestOrder(t *testing.T) *ServiceOrder {
	t.Helper()
	o, err := NewServiceOrder("vehicle-1", testCode())
	require.NoError(t, err)
	return o
}

// orderAt drives a fresh order with one service and one item through the
// real transitions until it reaches target.
func orderAt(t *testing.T, target ServiceOrderStatus) *ServiceOrder {
	t.Helper()
	o := newTestOrder(t)
	_, err := o.AddService("svc-1", "Troca de óleo", decimal.RequireFromString("120.00"))
	require.NoError(t, err)
	_, err = o.AddItem("item-1", "Filtro de óleo", decimal.RequireFromString("35.50"), 1, ItemKindPeca)
	require.NoError(t, err)

	if target == StatusRecebida {
		return o
	}
	if target == StatusCancelada {
		require.NoError(t, o.Cancel())
		return o
	}
	steps := []struct {
		status ServiceOrderStatus
		run    func() error
	}{
		{StatusEmDiagnostico, o.StartDiagnosis},
		{StatusAguardandoAprovacao, o.GenerateBudget},
		{StatusAprovada, o.ApproveBudget},
		{StatusEmExecucao, o.StartExecution},
		{StatusFinalizada, func() error { o.ConfirmStockReduction(); return o.FinalizeExecution() }},
		{StatusEntregue, o.Deliver},
	}
	for _, step := range steps {
		require.NoError(t, step.run())
		require.Equal(t, step.status, o.Status())
		if step.status == target {
			return o
		}
	}
	t.Fatalf("unreachable status %s", target)
	return nil
}

// withClock pins the aggregate clock for the duration of a test.
func withClock(t *testing.T, times ...time.Time) {
	t.Helper()
	prev := nowFunc
	idx := 0
	nowFunc = func() time.Time {
		at := times[idx]
		if idx < len(times)-1 {
			idx++
		}
		return at
	}
	t.Cleanup(func() { nowFunc = prev })
}
