package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/iho/gotrialbalance/internal/adapter/http/dto"
	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/usecase"
)

// ExchangeRateService reads and stores exchange rates.
type ExchangeRateService interface {
	GetRates(ctx context.Context, rateType string, date time.Time) ([]*domain.ExchangeRate, error)
	SaveRates(ctx context.Context, input usecase.SaveRatesInput) ([]*domain.ExchangeRate, error)
}

// ExchangeRateHandler handles exchange rate HTTP requests.
type ExchangeRateHandler struct {
	rates ExchangeRateService
}

// NewExchangeRateHandler creates a new ExchangeRateHandler.
func NewExchangeRateHandler(rates ExchangeRateService) *ExchangeRateHandler {
	return &ExchangeRateHandler{rates: rates}
}

// List returns the rates of a type on a date. The type defaults to FIX.
func (h *ExchangeRateHandler) List(w http.ResponseWriter, r *http.Request) {
	rateType := r.URL.Query().Get("type")
	if rateType == "" {
		rateType = domain.DefaultRateType
	}

	raw := r.URL.Query().Get("date")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	day, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	rates, err := h.rates.GetRates(r.Context(), rateType, day)
	if err != nil {
		writeDomainError(w, "failed to list exchange rates", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ExchangeRatesFromDomain(rates))
}

// Save stores a batch of rates.
func (h *ExchangeRateHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req dto.SaveRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := dto.Validate(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid exchange rates", err)
		return
	}

	saved, err := h.rates.SaveRates(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to save exchange rates", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ExchangeRatesFromDomain(saved))
}
