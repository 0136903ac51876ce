package balance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Advance(t *testing.T) {
	ctx := context.Background()
	observer := &recordingObserver{}
	p := newPipeline(observer)

	require.NoError(t, p.advance(ctx, StagePostingsLoaded, 1))
	require.ErrorIs(t, p.advance(ctx, StageSectorized, 1), ErrStageOrder, "summarization is mandatory")
	require.NoError(t, p.advance(ctx, StageSummarized, 1))
	require.NoError(t, p.advance(ctx, StageSectorized, 1))
	require.NoError(t, p.advance(ctx, StageAssembled, 1), "valuation and cascade are optional")
	require.ErrorIs(t, p.advance(ctx, StageValuated, 1), ErrStageOrder)
	require.ErrorIs(t, p.advance(ctx, StageAssembled, 1), ErrStageOrder)
	require.NoError(t, p.advance(ctx, StageDone, 1))

	assert.Equal(t, StageDone, p.current())
	assert.Equal(t, []Stage{StagePostingsLoaded, StageSummarized, StageSectorized, StageAssembled, StageDone}, observer.stages)
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "postings_loaded", StagePostingsLoaded.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "stage(42)", Stage(42).String())
	assert.True(t, StageCascaded.Optional())
	assert.False(t, StageAssembled.Optional())
}
