package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/gotrialbalance/internal/adapter/http/dto"
	"github.com/iho/gotrialbalance/internal/balance"
	"github.com/iho/gotrialbalance/internal/domain"
)

// TrialBalanceService computes trial balances.
type TrialBalanceService interface {
	Compute(ctx context.Context, query domain.BalanceQuery) (*balance.TrialBalance, error)
}

// TrialBalanceHandler handles trial balance HTTP requests.
type TrialBalanceHandler struct {
	balances TrialBalanceService
}

// NewTrialBalanceHandler creates a new TrialBalanceHandler.
func NewTrialBalanceHandler(balances TrialBalanceService) *TrialBalanceHandler {
	return &TrialBalanceHandler{balances: balances}
}

// Compute computes the trial balance described by the request body.
func (h *TrialBalanceHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.TrialBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := dto.Validate(&req); err != nil {
		writeValidationError(w, err)
		return
	}

	query, err := req.ToQuery()
	if err != nil {
		writeDomainError(w, "invalid balance query", err)
		return
	}

	tb, err := h.balances.Compute(r.Context(), query)
	if err != nil {
		writeDomainError(w, "failed to compute trial balance", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.TrialBalanceFromDomain(tb))
}
