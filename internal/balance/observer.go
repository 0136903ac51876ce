package balance

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// StageObserver receives the wall-clock time spent reaching each stage.
type StageObserver interface {
	ObserveStage(ctx context.Context, stage Stage, elapsed time.Duration, rows int)
}

// NopObserver discards stage timings.
type NopObserver struct{}

func (NopObserver) ObserveStage(context.Context, Stage, time.Duration, int) {}

// LogObserver logs stage timings at debug level and records them in a
// histogram labelled by stage. The logger attached to the context (run_id
// and friends) takes precedence over the fallback logger.
type LogObserver struct {
	logger    zerolog.Logger
	durations prometheus.ObserverVec
}

// NewLogObserver creates a stage observer. durations may be nil.
func NewLogObserver(logger zerolog.Logger, durations prometheus.ObserverVec) *LogObserver {
	return &LogObserver{logger: logger, durations: durations}
}

func (o *LogObserver) ObserveStage(ctx context.Context, stage Stage, elapsed time.Duration, rows int) {
	log := zerolog.Ctx(ctx)
	if log.GetLevel() == zerolog.Disabled {
		log = &o.logger
	}

	log.Debug().
		Str("stage", stage.String()).
		Dur("elapsed", elapsed).
		Int("rows", rows).
		Msg("balance stage completed")

	if o.durations != nil {
		o.durations.WithLabelValues(stage.String()).Observe(elapsed.Seconds())
	}
}
