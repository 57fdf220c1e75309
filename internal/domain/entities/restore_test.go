package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	for _, status := range AllStatuses {
		t.Run(string(status), func(t *testing.T) {
			o := orderAt(t, status)
			o.SetVersion(7)

			restored, err := RestoreServiceOrder(o.Snapshot())
			require.NoError(t, err)
			assert.Equal(t, o.Snapshot(), restored.Snapshot())
			assert.Equal(t, int64(7), restored.Version())
		})
	}
}

func TestRestoreServiceOrder_RejectsCorruptState(t *testing.T) {
	valid := func(t *testing.T) ServiceOrderSnapshot {
		return orderAt(t, StatusAguardandoAprovacao).Snapshot()
	}
	later := time.Now().UTC().Add(time.Hour)

	cases := []struct {
		name   string
		mutate func(s *ServiceOrderSnapshot)
	}{
		{"missing id", func(s *ServiceOrderSnapshot) { s.ID = "" }},
		{"bad code", func(s *ServiceOrderSnapshot) { s.Code = "OS-XYZ" }},
		{"missing vehicle", func(s *ServiceOrderSnapshot) { s.VehicleID = " " }},
		{"unknown status", func(s *ServiceOrderSnapshot) { s.Status = "pausada" }},
		{"missing creation date", func(s *ServiceOrderSnapshot) { s.CreatedAt = time.Time{} }},
		{"budget missing after approval", func(s *ServiceOrderSnapshot) { s.Budget = nil }},
		{"budget before diagnosis ends", func(s *ServiceOrderSnapshot) { s.Status = StatusEmDiagnostico }},
		{"finalized without execution", func(s *ServiceOrderSnapshot) { s.FinalizedAt = &later }},
		{"executing without start date", func(s *ServiceOrderSnapshot) { s.Status = StatusEmExecucao }},
		{"duplicate service", func(s *ServiceOrderSnapshot) {
			dup := s.Services[0]
			dup.ID = NewID()
			s.Services = append(s.Services, dup)
		}},
		{"duplicate item", func(s *ServiceOrderSnapshot) {
			dup := s.Items[0]
			dup.ID = NewID()
			s.Items = append(s.Items, dup)
		}},
		{"negative item price", func(s *ServiceOrderSnapshot) { s.Items[0].Price = decimal.NewFromInt(-1) }},
		{"negative budget", func(s *ServiceOrderSnapshot) { s.Budget.Price = decimal.NewFromInt(-1) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := valid(t)
			tc.mutate(&snap)
			_, err := RestoreServiceOrder(snap)
			require.Error(t, err)
			assert.True(t, IsKind(err, ErrorKindInvalidInput), err.Error())
		})
	}
}

func TestRestoreServiceOrder_AllowsRestartedExecution(t *testing.T) {
	o := orderAt(t, StatusEmExecucao)
	o.CompensateSagaFailure()

	restored, err := RestoreServiceOrder(o.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, StatusAprovada, restored.Status())
	assert.NotNil(t, restored.History().ExecutionStartedAt())
	assert.Equal(t, StockFailed, restored.Stock().State())
}
