package bounds

import "github.com/katalvlaran/csdflow/graph"

// Bounds holds the per-channel search-space bounds derived from a
// graph's rate sequences and initial token counts, computed once per
// analysis.
type Bounds struct {
	// MinStep[c] is the gcd of every production and consumption rate of
	// channel c across all phases of both endpoints. Successive channel
	// enlargements during Pareto exploration are multiples of this.
	MinStep []int

	// MinSz[c] is the minimum capacity for channel c that admits a
	// positive throughput in isolation.
	MinSz []int

	// LbDistributionSz is the sum of MinSz, the smallest total capacity
	// the Pareto explorer ever starts from.
	LbDistributionSz int
}

// Compute derives Bounds from g, which must already be frozen.
func Compute(g *graph.Graph) Bounds {
	n := g.NumChannels()
	b := Bounds{
		MinStep: make([]int, n),
		MinSz:   make([]int, n),
	}

	for c := 0; c < n; c++ {
		b.MinStep[c] = minStepFor(g, c)
		b.MinSz[c] = minSzFor(g, c)
		b.LbDistributionSz += b.MinSz[c]
	}

	return b
}

// minStepFor computes minStep[c]: the gcd of every rate appearing on
// either port of channel c, over all phases.
func minStepFor(g *graph.Graph, c int) int {
	step := 0
	for i := 0; i < g.SrcRateLen(c); i++ {
		step = gcd(step, g.RateSrc(c, i))
	}
	for i := 0; i < g.DstRateLen(c); i++ {
		step = gcd(step, g.RateDst(c, i))
	}

	return step
}

// minSzFor computes minSz[c] per §3: iterate phase index i over
// lcm(L_src, L_dst) combinations of (production rate, consumption
// rate), take the per-phase lower bound, and keep the minimum over all
// phases.
func minSzFor(g *graph.Graph, c int) int {
	lsrc, ldst := g.SrcRateLen(c), g.DstRateLen(c)
	period := lcm(lsrc, ldst)
	t := g.InitialTokens(c)
	selfEdge := g.SrcActor(c) == g.DstActor(c)

	minSz := -1
	for i := 0; i < period; i++ {
		p := g.RateSrc(c, i)
		k := g.RateDst(c, i)

		var lb int
		if selfEdge {
			lb = p + maxInt(k, t)
		} else {
			d := gcd(p, k)
			if d != 0 {
				lb = p + k - d + t%d
			} else {
				lb = p + k - d
			}
			lb = maxInt(lb, t)
		}

		if minSz == -1 || lb < minSz {
			minSz = lb
		}
	}
	if minSz == -1 {
		return 0
	}

	return minSz
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func lcm(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	return a / gcd(a, b) * b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
