package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iho/gotrialbalance/internal/adapter/http/dto"
	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError writes an error response classified by its kind.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	writeJSON(w, mapDomainError(err), dto.ErrorResponse{
		Error:   message,
		Message: err.Error(),
		Kind:    usecase.ErrorKind(err),
	})
}

// writeValidationError writes a 400 listing the failed request fields.
func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
		Error:   "invalid request",
		Message: err.Error(),
		Kind:    "invalid_query",
		Fields:  dto.FieldErrors(err),
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidQuery):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCurrency):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidRateType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidExchangeRate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrChartNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInconsistentBalance):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrOrphanAccount),
		errors.Is(err, domain.ErrMissingExchangeRate),
		errors.Is(err, domain.ErrNegativeMovement),
		errors.Is(err, domain.ErrInvalidPostingLine):
		return http.StatusUnprocessableEntity
	case usecase.ErrorKind(err) == "canceled":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
