package pareto

import "github.com/katalvlaran/csdflow/ratio"

// Distribution is one point in the trade-off space: a concrete
// per-channel capacity assignment, together with the throughput it
// achieves and which channels (if any) are on a storage-dependency
// cycle holding that throughput back.
type Distribution struct {
	Size int
	Sp   []int
	Thr  ratio.Ratio
	Dep  []bool
}

func (d *Distribution) clone() *Distribution {
	return &Distribution{
		Size: d.Size,
		Sp:   append([]int(nil), d.Sp...),
		Thr:  d.Thr,
		Dep:  append([]bool(nil), d.Dep...),
	}
}

func equalSp(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// distributionSet groups every distribution of a given total size that
// is still a checklist candidate (or, once explored and minimized, the
// distributions of that size on the Pareto front).
type distributionSet struct {
	size          int
	maxThroughput ratio.Ratio
	distributions []*Distribution
}
