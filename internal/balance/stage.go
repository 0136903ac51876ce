package balance

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStageOrder is returned when a computation tries to run a stage out of order.
var ErrStageOrder = errors.New("balance stage out of order")

// Stage is a step of a balance computation.
type Stage int

const (
	StageInitialized Stage = iota
	StagePostingsLoaded
	StageSummarized
	StageSectorized
	StageValuated
	StageCascaded
	StageAssembled
	StageDone
)

var stageNames = [...]string{
	StageInitialized:    "initialized",
	StagePostingsLoaded: "postings_loaded",
	StageSummarized:     "summarized",
	StageSectorized:     "sectorized",
	StageValuated:       "valuated",
	StageCascaded:       "cascaded",
	StageAssembled:      "assembled",
	StageDone:           "done",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Optional reports whether the stage may be skipped.
func (s Stage) Optional() bool {
	return s == StageValuated || s == StageCascaded
}

// pipeline enforces stage ordering for one computation and reports the time
// spent in each stage to the observer.
type pipeline struct {
	stage    Stage
	observer StageObserver
	last     time.Time
}

func newPipeline(observer StageObserver) *pipeline {
	if observer == nil {
		observer = NopObserver{}
	}
	return &pipeline{stage: StageInitialized, observer: observer, last: time.Now()}
}

// advance moves to next, which must come after the current stage with only
// optional stages in between.
func (p *pipeline) advance(ctx context.Context, next Stage, rows int) error {
	if next <= p.stage {
		return fmt.Errorf("%w: %s after %s", ErrStageOrder, next, p.stage)
	}
	for s := p.stage + 1; s < next; s++ {
		if !s.Optional() {
			return fmt.Errorf("%w: %s skips %s", ErrStageOrder, next, s)
		}
	}

	now := time.Now()
	p.observer.ObserveStage(ctx, next, now.Sub(p.last), rows)
	p.last = now
	p.stage = next
	return nil
}

func (p *pipeline) current() Stage { return p.stage }
