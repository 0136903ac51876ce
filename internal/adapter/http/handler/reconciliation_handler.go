package handler

import (
	"context"
	"net/http"

	"github.com/iho/gotrialbalance/internal/adapter/http/dto"
	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/usecase"
)

// ReconciliationService checks that a balance reconciles.
type ReconciliationService interface {
	ReconcileQuery(ctx context.Context, query domain.BalanceQuery) (*usecase.ReconciliationResult, error)
}

// ReconciliationHandler handles reconciliation checks.
type ReconciliationHandler struct {
	reconciler ReconciliationService
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciler ReconciliationService) *ReconciliationHandler {
	return &ReconciliationHandler{reconciler: reconciler}
}

// Check computes the balance named by the query string and reports whether it
// reconciles. A balance that does not reconcile answers 409.
func (h *ReconciliationHandler) Check(w http.ResponseWriter, r *http.Request) {
	req, err := dto.TrialBalanceRequestFromQuery(r.URL.Query())
	if err != nil {
		writeDomainError(w, "invalid balance query", err)
		return
	}
	if err := dto.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}
	query, err := req.ToQuery()
	if err != nil {
		writeDomainError(w, "invalid balance query", err)
		return
	}

	result, err := h.reconciler.ReconcileQuery(r.Context(), query)
	if err != nil {
		writeDomainError(w, "failed to reconcile balance", err)
		return
	}

	status := http.StatusOK
	if !result.IsReconciled {
		status = http.StatusConflict
	}
	writeJSON(w, status, dto.ReconciliationFromUseCase(result))
}
