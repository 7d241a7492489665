package bounds_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csdflow/bounds"
	"github.com/katalvlaran/csdflow/graph"
)

// scenario 1 from spec.md §8: two-actor HSDF cycle.
func TestCompute_TwoActorHSDFCycle(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddActor([]int{1})
	b := g.AddActor([]int{2})
	_, err := g.AddChannel(a, b, []int{1}, []int{1}, 0)
	require.NoError(t, err)
	_, err = g.AddChannel(b, a, []int{1}, []int{1}, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetRepetitionVector([]int{1, 1}))
	require.NoError(t, g.Freeze())

	b_ := bounds.Compute(g)
	assert.Equal(t, []int{1, 1}, b_.MinStep)
	assert.Equal(t, []int{1, 1}, b_.MinSz)
	assert.Equal(t, 2, b_.LbDistributionSz)
}

// scenario 3 from spec.md §8: CSDFG with a two-phase producer.
// A has L=2, output rates (2,1); B has L=1, input rate 1. t0=0.
// minSz[c] = min over phases of p+k-gcd(p,k)+t%gcd(p,k) = min(2,2) = 2.
func TestCompute_TwoPhaseProducer(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddActor([]int{1, 1})
	b := g.AddActor([]int{1})
	c, err := g.AddChannel(a, b, []int{2, 1}, []int{1}, 0)
	require.NoError(t, err)
	require.NoError(t, g.SetRepetitionVector([]int{1, 3}))
	require.NoError(t, g.Freeze())

	b_ := bounds.Compute(g)
	assert.Equal(t, 1, b_.MinStep[c])
	assert.Equal(t, 2, b_.MinSz[c])
}

// A self-edge channel's minSz uses lb = p + max(k, t0).
func TestCompute_SelfEdge(t *testing.T) {
	g := graph.NewGraph()
	a := g.AddActor([]int{1})
	c, err := g.AddChannel(a, a, []int{1}, []int{1}, 1)
	require.NoError(t, err)
	require.NoError(t, g.SetRepetitionVector([]int{1}))
	require.NoError(t, g.Freeze())

	b_ := bounds.Compute(g)
	assert.Equal(t, 2, b_.MinSz[c]) // p=1, max(k=1,t=1)=1 => lb=2
}
