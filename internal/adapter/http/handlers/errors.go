package handlers

import (
	"errors"
	"mecanica_xpto/internal/domain/entities"
	"mecanica_xpto/internal/usecase"
	"mecanica_xpto/internal/usecase/interfaces"
	"mecanica_xpto/pkg"
	"net/http"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func mapServiceOrderError(err error) *pkg.AppError {
	var de *entities.DomainError
	switch {
	case errors.As(err, &de):
		return mapDomainError(de, err)
	case errors.Is(err, usecase.ErrInvalidServiceOrderID), errors.Is(err, usecase.ErrInvalidServiceOrderCode),
		errors.Is(err, usecase.ErrInvalidVehicleID), errors.Is(err, usecase.ErrInvalidCatalogID):
		return errInvalidPayload
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found in catalog", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Service order was modified concurrently, try again", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockUnavailable):
		return pkg.NewDomainError("STOCK_UNAVAILABLE", "Not enough stock to start execution", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrStockDeductionFailed):
		return pkg.NewDomainError("STOCK_DEDUCTION_FAILED", "Stock deduction failed; execution was rolled back", err, http.StatusBadGateway)
	case errors.Is(err, interfaces.ErrStockRejected):
		return pkg.NewDomainError("STOCK_REJECTED", "Stock service rejected the item", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapDomainError(de *entities.DomainError, err error) *pkg.AppError {
	switch de.Kind {
	case entities.ErrorKindInvalidInput:
		return pkg.NewDomainError("INVALID_INPUT", de.Message, err, http.StatusBadRequest)
	case entities.ErrorKindRuleBroken:
		return pkg.NewDomainError("BUSINESS_RULE_VIOLATION", de.Message, err, http.StatusUnprocessableEntity)
	case entities.ErrorKindNotFound:
		return pkg.NewDomainError("NOT_FOUND", de.Message, err, http.StatusNotFound)
	case entities.ErrorKindReferenceNotFound:
		return pkg.NewDomainError("REFERENCE_NOT_FOUND", de.Message, err, http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
