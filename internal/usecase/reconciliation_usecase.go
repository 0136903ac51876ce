package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gotrialbalance/internal/domain"
	"github.com/iho/gotrialbalance/internal/infrastructure/metrics"
)

// ReconciliationUseCase handles balance reconciliation operations
type ReconciliationUseCase struct {
	balances TrialBalanceComputer
	metrics  *metrics.Metrics
}

// NewReconciliationUseCase creates a new reconciliation use case
func NewReconciliationUseCase(balances TrialBalanceComputer, m *metrics.Metrics) *ReconciliationUseCase {
	return &ReconciliationUseCase{balances: balances, metrics: m}
}

// ReconciliationResult represents the result of a reconciliation check
type ReconciliationResult struct {
	AccountsChart string
	Period        domain.DateRange
	BalanceType   domain.BalanceType
	// FailedCheck names the first check that failed, empty when reconciled.
	FailedCheck   string
	LeafTotal     decimal.Decimal
	DebtorTotal   decimal.Decimal
	CreditorTotal decimal.Decimal
	Consolidated  decimal.Decimal
	Difference    decimal.Decimal
	IsReconciled  bool
	LastChecked   time.Time
}

// ReconcileQuery computes the balance of a query and reports whether it
// passed every consistency check. Reconciliation failures are reported in
// the result; any other error is returned.
func (uc *ReconciliationUseCase) ReconcileQuery(ctx context.Context, query domain.BalanceQuery) (*ReconciliationResult, error) {
	result := &ReconciliationResult{
		AccountsChart: query.AccountsChart,
		Period:        query.Period,
		BalanceType:   query.BalanceType,
		LastChecked:   time.Now().UTC(),
	}

	tb, err := uc.balances.Compute(ctx, query)
	var inconsistent *domain.InconsistentBalanceError
	switch {
	case errors.As(err, &inconsistent):
		result.FailedCheck = inconsistent.Check
		result.Consolidated = inconsistent.Expected
		result.Difference = inconsistent.Expected.Sub(inconsistent.Actual)
		uc.count("failed")
		return result, nil
	case err != nil:
		return nil, err
	}

	result.LeafTotal = tb.Reconciliation.LeafTotal
	result.DebtorTotal = tb.Reconciliation.DebtorTotal
	result.CreditorTotal = tb.Reconciliation.CreditorTotal
	result.Consolidated = tb.Reconciliation.Consolidated
	result.Difference = tb.Reconciliation.Difference
	result.IsReconciled = true
	uc.count("reconciled")
	return result, nil
}

func (uc *ReconciliationUseCase) count(outcome string) {
	if uc.metrics != nil {
		uc.metrics.Reconciliations.WithLabelValues(outcome).Inc()
	}
}

// ReconciliationReport represents a full reconciliation report
type ReconciliationReport struct {
	TotalQueries      int
	ReconciledQueries int
	Discrepancies     []*ReconciliationResult
	CheckedAt         time.Time
}

// GenerateReconciliationReport reconciles every query and collects the
// discrepancies.
func (uc *ReconciliationUseCase) GenerateReconciliationReport(ctx context.Context, queries []domain.BalanceQuery) (*ReconciliationReport, error) {
	report := &ReconciliationReport{
		TotalQueries:  len(queries),
		Discrepancies: make([]*ReconciliationResult, 0),
		CheckedAt:     time.Now().UTC(),
	}

	for _, q := range queries {
		result, err := uc.ReconcileQuery(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("failed to reconcile %s %s: %w", q.AccountsChart, q.Period, err)
		}
		if result.IsReconciled {
			report.ReconciledQueries++
		} else {
			report.Discrepancies = append(report.Discrepancies, result)
		}
	}

	return report, nil
}
