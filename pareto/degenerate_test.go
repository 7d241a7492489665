package pareto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/csdflow/ratio"
)

// A curve that deadlocks at every explored size collapses to the
// degenerate all-zero sentinel point.
func TestApplyDegenerateZeroCorrection_AllZeroCollapses(t *testing.T) {
	sets := []*distributionSet{
		{size: 2, maxThroughput: ratio.Zero, distributions: []*Distribution{{Size: 2, Sp: []int{1, 1}}}},
	}

	applyDegenerateZeroCorrection(sets, 2)

	require.Len(t, sets[0].distributions, 1)
	d := sets[0].distributions[0]
	assert.Equal(t, 0, d.Size)
	assert.Equal(t, []int{0, 0}, d.Sp)
	assert.True(t, d.Thr.IsZero())
}

// A deadlocked smallest size followed by a later set with genuinely
// positive throughput must NOT be collapsed: sets[0]'s real (if
// zero-throughput) distribution is kept untouched.
func TestApplyDegenerateZeroCorrection_LeavesRealCurveAlone(t *testing.T) {
	first := &Distribution{Size: 2, Sp: []int{1, 1}, Thr: ratio.Zero}
	second := &Distribution{Size: 4, Sp: []int{2, 2}, Thr: ratio.New(1, 2)}
	sets := []*distributionSet{
		{size: 2, maxThroughput: ratio.Zero, distributions: []*Distribution{first}},
		{size: 4, maxThroughput: ratio.New(1, 2), distributions: []*Distribution{second}},
	}

	applyDegenerateZeroCorrection(sets, 2)

	require.Len(t, sets[0].distributions, 1)
	assert.Same(t, first, sets[0].distributions[0])
	assert.Equal(t, 2, sets[0].distributions[0].Size)
	require.Len(t, sets[1].distributions, 1)
	assert.Same(t, second, sets[1].distributions[0])
}

func TestApplyDegenerateZeroCorrection_NoSetsIsNoOp(t *testing.T) {
	var sets []*distributionSet
	assert.NotPanics(t, func() { applyDegenerateZeroCorrection(sets, 2) })
}
