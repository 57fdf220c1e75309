package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DomainError so callers can translate it into a
// transport response without inspecting messages.
type ErrorKind string

const (
	ErrorKindInvalidInput      ErrorKind = "invalid_input"
	ErrorKindRuleBroken        ErrorKind = "rule_broken"
	ErrorKindNotFound          ErrorKind = "not_found"
	ErrorKindReferenceNotFound ErrorKind = "reference_not_found"
)

// DomainError is the only error kind raised by the service-order aggregate and
// its value objects.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newDomainError(kind ErrorKind, format string, args ...any) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) *DomainError {
	return newDomainError(ErrorKindInvalidInput, format, args...)
}

func ruleBroken(format string, args ...any) *DomainError {
	return newDomainError(ErrorKindRuleBroken, format, args...)
}

func notFound(format string, args ...any) *DomainError {
	return newDomainError(ErrorKindNotFound, format, args...)
}

// IsKind reports whether err wraps a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return de.Kind == kind
}
