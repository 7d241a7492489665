package pareto_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csdflow/bounds"
	"github.com/katalvlaran/csdflow/graph"
	"github.com/katalvlaran/csdflow/pareto"
	"github.com/katalvlaran/csdflow/ratio"
)

// buildThreeActorPipeline mirrors spec.md's scenario 6: a linear pipeline
// of three actors with unit rates and execution times 1, 2, 1, and
// channels c1 (A->B), c2 (B->C) both starting empty.
func buildThreeActorPipeline(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	a := g.AddActor([]int{1})
	b := g.AddActor([]int{2})
	c := g.AddActor([]int{1})
	_, err := g.AddChannel(a, b, []int{1}, []int{1}, 0)
	require.NoError(t, err)
	_, err = g.AddChannel(b, c, []int{1}, []int{1}, 0)
	require.NoError(t, err)
	require.NoError(t, g.SetRepetitionVector([]int{1, 1, 1}))
	require.NoError(t, g.Freeze())

	return g
}

func buildTwoActorCycle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.NewGraph()
	a := g.AddActor([]int{1})
	b := g.AddActor([]int{2})
	_, err := g.AddChannel(a, b, []int{1}, []int{1}, 0)
	require.NoError(t, err)
	_, err = g.AddChannel(b, a, []int{1}, []int{1}, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetRepetitionVector([]int{1, 1}))
	require.NoError(t, g.Freeze())

	return g
}

// A marked-graph cycle has no slack to trade: the lower-bound capacity
// already reaches the unconstrained maximum, so the curve is one point.
func TestAnalyze_MarkedGraphCycleIsOnePoint(t *testing.T) {
	g := buildTwoActorCycle(t)

	curve, err := pareto.Analyze(context.Background(), g, ratio.New(1, 1))
	require.NoError(t, err)
	require.Len(t, curve, 1)
	assert.Equal(t, 2, curve[0].Size)
	assert.Equal(t, []int{1, 1}, curve[0].Sp)
	assert.True(t, curve[0].Thr.Equal(ratio.New(1, 3)), "got %s", curve[0].Thr)
}

func TestInitSearch_RejectsUnfrozenGraph(t *testing.T) {
	g := graph.NewGraph()
	g.AddActor([]int{1})
	_, err := pareto.InitSearch(context.Background(), g)
	assert.ErrorIs(t, err, pareto.ErrGraphNotFrozen)
}

func TestInitSearch_RejectsNilGraph(t *testing.T) {
	_, err := pareto.InitSearch(context.Background(), nil)
	assert.ErrorIs(t, err, pareto.ErrGraphNil)
}

func TestExplorer_NextParetoThenExhausted(t *testing.T) {
	g := buildTwoActorCycle(t)

	exp, err := pareto.InitSearch(context.Background(), g)
	require.NoError(t, err)

	first, err := exp.NextPareto(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.True(t, first[0].Thr.Equal(exp.MaxThroughput()))

	_, err = exp.NextPareto(context.Background())
	assert.ErrorIs(t, err, pareto.ErrSearchExhausted)
}

// A self-edge channel's storage dependency is never enlarged: if it is
// the sole cause of deadlock at every explored size, the search reports
// the degenerate all-zero distribution rather than an ever-growing,
// always-zero-throughput curve.
func TestAnalyze_DegenerateZeroOnPureSelfEdgeDeadlock(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddActor([]int{1})
	// A self-edge that produces and consumes 2 tokens per firing but
	// starts with only 1: it can never fire, regardless of capacity.
	_, err := g.AddChannel(a, a, []int{2}, []int{2}, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetRepetitionVector([]int{1}))
	require.NoError(t, g.Freeze())

	curve, err := pareto.Analyze(context.Background(), g, ratio.New(1, 1))
	require.NoError(t, err)
	require.Len(t, curve, 1)
	assert.Equal(t, 0, curve[0].Size)
	assert.Equal(t, []int{0}, curve[0].Sp)
	assert.True(t, curve[0].Thr.IsZero())
}

// scenario 5 from spec.md §8: thrBound stop. The pipeline's smallest
// distribution (size=lbDistributionSz=2) already reaches 1/3, which is
// above half of maxThroughput (1/2), so the explorer must return that
// single set and nothing larger.
func TestAnalyze_ThroughputBoundStopsAtSmallestSatisfyingSet(t *testing.T) {
	g := buildThreeActorPipeline(t)

	curve, err := pareto.Analyze(context.Background(), g, ratio.New(1, 4))
	require.NoError(t, err)
	require.Len(t, curve, 1)
	assert.Equal(t, 2, curve[0].Size)
	assert.True(t, curve[0].Thr.Equal(ratio.New(1, 3)), "got %s", curve[0].Thr)
}

// scenario 6 from spec.md §8: a 3-actor linear pipeline's Pareto chain
// has points at sizes 2, 3, 4 with monotonically increasing throughput
// up to maxThroughput = 1/2 (the slowest actor's execution time).
func TestAnalyze_ParetoChainThreeActorPipeline(t *testing.T) {
	g := buildThreeActorPipeline(t)

	curve, err := pareto.Analyze(context.Background(), g, ratio.New(1, 2))
	require.NoError(t, err)
	require.NotEmpty(t, curve)

	sizes := map[int][]*pareto.Distribution{}
	var order []int
	for _, d := range curve {
		if _, ok := sizes[d.Size]; !ok {
			order = append(order, d.Size)
		}
		sizes[d.Size] = append(sizes[d.Size], d)
	}
	assert.Equal(t, []int{2, 3, 4}, order)

	maxThr := map[int]ratio.Ratio{}
	for size, ds := range sizes {
		best := ratio.Zero
		for _, d := range ds {
			if best.Less(d.Thr) {
				best = d.Thr
			}
		}
		maxThr[size] = best
	}
	assert.True(t, maxThr[2].Equal(ratio.New(1, 3)), "size2 got %s", maxThr[2])
	assert.True(t, maxThr[2].Less(maxThr[3]), "size2=%s size3=%s", maxThr[2], maxThr[3])
	assert.True(t, maxThr[3].Less(maxThr[4]), "size3=%s size4=%s", maxThr[3], maxThr[4])
	assert.True(t, maxThr[4].Equal(ratio.New(1, 2)), "size4 got %s", maxThr[4])

	// Size-step invariant: each size-3 distribution enlarges exactly one
	// channel of the size-2 distribution by that channel's minStep; every
	// other channel's capacity is unchanged.
	b := bounds.Compute(g)
	base := sizes[2][0]
	for _, d := range sizes[3] {
		changed := -1
		for c := range d.Sp {
			if d.Sp[c] != base.Sp[c] {
				require.Equal(t, -1, changed, "more than one channel changed")
				changed = c
			}
		}
		require.NotEqual(t, -1, changed, "no channel changed")
		assert.Equal(t, base.Sp[changed]+b.MinStep[changed], d.Sp[changed])
	}
}
