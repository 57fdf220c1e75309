package entities

import "strings"

// ServiceOrderStatus is the lifecycle state of a service order (ordem de serviço).
//
// Happy path:
//
//	recebida -> em_diagnostico -> aguardando_aprovacao -> aprovada -> em_execucao -> finalizada -> entregue
//
// cancelada is absorbing.
type ServiceOrderStatus string

const (
	StatusRecebida            ServiceOrderStatus = "recebida"
	StatusEmDiagnostico       ServiceOrderStatus = "em_diagnostico"
	StatusAguardandoAprovacao ServiceOrderStatus = "aguardando_aprovacao"
	StatusAprovada            ServiceOrderStatus = "aprovada"
	StatusEmExecucao          ServiceOrderStatus = "em_execucao"
	StatusFinalizada          ServiceOrderStatus = "finalizada"
	StatusEntregue            ServiceOrderStatus = "entregue"
	StatusCancelada           ServiceOrderStatus = "cancelada"
)

// AllStatuses lists every defined status in lifecycle order.
var AllStatuses = []ServiceOrderStatus{
	StatusRecebida,
	StatusEmDiagnostico,
	StatusAguardandoAprovacao,
	StatusAprovada,
	StatusEmExecucao,
	StatusFinalizada,
	StatusEntregue,
	StatusCancelada,
}

func (s ServiceOrderStatus) IsValid() bool {
	switch s {
	case StatusRecebida, StatusEmDiagnostico, StatusAguardandoAprovacao, StatusAprovada,
		StatusEmExecucao, StatusFinalizada, StatusEntregue, StatusCancelada:
		return true
	}
	return false
}

// IsTerminal reports whether the order no longer needs shop-floor attention.
func (s ServiceOrderStatus) IsTerminal() bool {
	return s == StatusFinalizada || s == StatusEntregue || s == StatusCancelada
}

// reachedApproval reports whether a budget must exist for an order in this status.
func (s ServiceOrderStatus) reachedApproval() bool {
	switch s {
	case StatusAguardandoAprovacao, StatusAprovada, StatusEmExecucao, StatusFinalizada, StatusEntregue:
		return true
	}
	return false
}

// ParseServiceOrderStatus normalizes case and surrounding blanks.
func ParseServiceOrderStatus(raw string) (ServiceOrderStatus, error) {
	s := ServiceOrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", invalidInput("invalid service order status %q", raw)
	}
	return s, nil
}
