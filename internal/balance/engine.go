// Package balance implements the trial balance aggregation engine: posting
// entries are rolled up through the account hierarchy, optionally valued into
// a target currency and merged across ledgers, then assembled into a
// reconciled, ordered sequence of typed balance rows.
package balance

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/iho/gotrialbalance/internal/domain"
)

// PostingSource supplies the raw posting entries of a query. Entries come
// filtered by chart, period and account range, in no particular order.
type PostingSource interface {
	FetchPostingEntries(ctx context.Context, query domain.BalanceQuery) ([]domain.PostingEntry, error)
}

// PostingSourceFunc adapts a function to PostingSource.
type PostingSourceFunc func(ctx context.Context, query domain.BalanceQuery) ([]domain.PostingEntry, error)

func (f PostingSourceFunc) FetchPostingEntries(ctx context.Context, query domain.BalanceQuery) ([]domain.PostingEntry, error) {
	return f(ctx, query)
}

// Config holds engine settings.
type Config struct {
	// Tolerance is the largest difference accepted by reconciliation.
	Tolerance decimal.Decimal
	// MaxParallel bounds concurrent ledger branches. Zero means unbounded.
	MaxParallel int
}

// Request is one balance computation.
type Request struct {
	Query    domain.BalanceQuery
	Chart    *domain.AccountsChart
	Postings PostingSource
	Rates    RateProvider
}

// Engine computes trial balances. It holds no per-computation state and is
// safe for concurrent use.
type Engine struct {
	cfg      Config
	observer StageObserver
}

// NewEngine creates an engine. observer may be nil.
func NewEngine(cfg Config, observer StageObserver) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Engine{cfg: cfg, observer: observer}
}

// Compute runs the report variant selected by the query's balance type.
func (e *Engine) Compute(ctx context.Context, req Request) (*TrialBalance, error) {
	if req.Chart == nil {
		return nil, domain.ErrChartNotFound
	}
	if req.Postings == nil {
		return nil, fmt.Errorf("balance: posting source is required")
	}

	strategy, err := StrategyFor(req.Query.BalanceType)
	if err != nil {
		return nil, err
	}

	query := strategy.Prepare(req.Query)
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tree, err := NewAccountTree(req.Chart)
	if err != nil {
		return nil, err
	}

	target, err := query.ResolveTargetCurrency(req.Chart)
	if err != nil {
		return nil, err
	}

	r := &run{
		engine:   e,
		tree:     tree,
		target:   target,
		strategy: strategy,
		postings: req.Postings,
		rates:    req.Rates,
	}

	comparer, comparative := strategy.(PeriodComparer)
	if !comparative {
		tb, p, err := r.execute(ctx, query)
		if err != nil {
			return nil, err
		}
		return r.finish(ctx, p, tb)
	}

	previousQuery := query
	previousQuery.Period = *query.ComparisonPeriod
	previousQuery.ComparisonPeriod = nil

	var (
		current, previous *TrialBalance
		p                 *pipeline
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, p, err = r.execute(gctx, query)
		return err
	})
	g.Go(func() error {
		var err error
		previous, _, err = r.execute(gctx, previousQuery)
		if err != nil {
			return fmt.Errorf("comparison period %s: %w", previousQuery.Period, err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged, err := comparer.Compare(current, previous)
	if err != nil {
		return nil, err
	}
	return r.finish(ctx, p, merged)
}

// run carries the per-computation dependencies shared by every period.
type run struct {
	engine   *Engine
	tree     *AccountTree
	target   string
	strategy Strategy
	postings PostingSource
	rates    RateProvider
}

func (r *run) finish(ctx context.Context, p *pipeline, tb *TrialBalance) (*TrialBalance, error) {
	out, err := r.strategy.PostProcess(tb)
	if err != nil {
		return nil, err
	}
	if err := p.advance(ctx, StageDone, len(out.Entries)); err != nil {
		return nil, err
	}
	return out, nil
}

// execute runs every stage up to assembly for one period.
func (r *run) execute(ctx context.Context, query domain.BalanceQuery) (*TrialBalance, *pipeline, error) {
	p := newPipeline(r.engine.observer)

	postings, err := r.postings.FetchPostingEntries(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch posting entries: %w", err)
	}

	leaves, err := postingLoader{query: query, tree: r.tree}.load(postings)
	if err != nil {
		return nil, nil, err
	}
	if err := p.advance(ctx, StagePostingsLoaded, len(leaves)); err != nil {
		return nil, nil, err
	}

	var valuator *Valuator
	if query.RequiresValuation() {
		valuator = NewValuator(r.rates, query, r.target)
	}

	var rows []*domain.BalanceEntry
	if query.ShowCascadeBalances {
		rows, err = r.cascade(ctx, p, query, valuator, leaves)
	} else {
		rows, err = r.single(ctx, p, query, valuator, leaves)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := r.strategy.Enrich(ctx, valuator, rows); err != nil {
		return nil, nil, err
	}

	tb, err := NewAssembler(r.tree, r.engine.cfg.Tolerance).Assemble(query, r.target, rows)
	if err != nil {
		return nil, nil, err
	}
	if err := p.advance(ctx, StageAssembled, len(tb.Entries)); err != nil {
		return nil, nil, err
	}
	return tb, p, nil
}

// single computes one ledger-agnostic branch, stage by stage.
func (r *run) single(ctx context.Context, p *pipeline, query domain.BalanceQuery, valuator *Valuator, leaves []*domain.BalanceEntry) ([]*domain.BalanceEntry, error) {
	delimiter := r.tree.Delimiter()

	summaries, err := summarize(r.tree, leaves)
	if err != nil {
		return nil, err
	}
	if err := p.advance(ctx, StageSummarized, len(summaries)); err != nil {
		return nil, err
	}

	summaries = sectorize(query, summaries, delimiter)
	if err := p.advance(ctx, StageSectorized, len(summaries)); err != nil {
		return nil, err
	}

	rows := make([]*domain.BalanceEntry, 0, len(leaves)+len(summaries))
	rows = append(rows, leaves...)
	rows = append(rows, summaries...)

	if valuator == nil {
		return rows, nil
	}
	rows, err = valuator.apply(ctx, rows, delimiter)
	if err != nil {
		return nil, err
	}
	if err := p.advance(ctx, StageValuated, len(rows)); err != nil {
		return nil, err
	}
	return rows, nil
}

// cascade computes one branch per ledger concurrently and merges them.
func (r *run) cascade(ctx context.Context, p *pipeline, query domain.BalanceQuery, valuator *Valuator, leaves []*domain.BalanceEntry) ([]*domain.BalanceEntry, error) {
	delimiter := r.tree.Delimiter()
	ledgers, byLedger := splitByLedger(leaves)
	branches := make([]LedgerBalances, len(ledgers))

	g, gctx := errgroup.WithContext(ctx)
	if r.engine.cfg.MaxParallel > 0 {
		g.SetLimit(r.engine.cfg.MaxParallel)
	}
	for i, ledger := range ledgers {
		g.Go(func() error {
			branchLeaves := byLedger[ledger]
			summaries, err := summarize(r.tree, branchLeaves)
			if err != nil {
				return err
			}
			summaries = sectorize(query, summaries, delimiter)

			rows := make([]*domain.BalanceEntry, 0, len(branchLeaves)+len(summaries))
			rows = append(rows, branchLeaves...)
			rows = append(rows, summaries...)
			if valuator != nil {
				if rows, err = valuator.apply(gctx, rows, delimiter); err != nil {
					return fmt.Errorf("ledger %s: %w", ledger, err)
				}
			}
			branches[i] = LedgerBalances{LedgerUID: ledger, Entries: rows}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rowCount := 0
	for _, b := range branches {
		rowCount += len(b.Entries)
	}
	if err := p.advance(ctx, StageSummarized, rowCount); err != nil {
		return nil, err
	}
	if err := p.advance(ctx, StageSectorized, rowCount); err != nil {
		return nil, err
	}
	if valuator != nil {
		if err := p.advance(ctx, StageValuated, rowCount); err != nil {
			return nil, err
		}
	}

	rows := NewCascadeCombiner(delimiter).Combine(branches)
	if err := p.advance(ctx, StageCascaded, len(rows)); err != nil {
		return nil, err
	}
	return rows, nil
}
