package pareto

import (
	"context"
	"sync"

	"github.com/katalvlaran/csdflow/bounds"
	"github.com/katalvlaran/csdflow/graph"
	"github.com/katalvlaran/csdflow/ratio"
	"github.com/katalvlaran/csdflow/sim"
)

// Explorer drives the trade-off search one storage-capacity point at a
// time. Use InitSearch to construct one and NextPareto to advance it;
// Analyze wraps both for callers that just want the finished curve.
type Explorer struct {
	g             *graph.Graph
	sm            *sim.Simulator
	b             bounds.Bounds
	maxThroughput ratio.Ratio

	cl      checklist
	hasPrev bool
	prevThr ratio.Ratio
	done    bool
}

// InitSearch prepares an Explorer for g, which must already be frozen.
// It computes the search-space bounds and the unconstrained throughput
// ceiling up front, both of which are pure functions of g that every
// subsequent step reuses.
func InitSearch(ctx context.Context, g *graph.Graph) (*Explorer, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Frozen() {
		return nil, ErrGraphNotFrozen
	}

	sm, err := sim.New(g)
	if err != nil {
		return nil, err
	}
	maxThr, err := sim.MaxThroughput(ctx, g)
	if err != nil {
		return nil, err
	}

	e := &Explorer{g: g, sm: sm, b: bounds.Compute(g), maxThroughput: maxThr}
	e.cl.insert(&Distribution{Size: e.b.LbDistributionSz, Sp: append([]int(nil), e.b.MinSz...)})

	return e, nil
}

// MaxThroughput returns the unconstrained throughput ceiling computed at
// InitSearch time.
func (e *Explorer) MaxThroughput() ratio.Ratio { return e.maxThroughput }

// NextPareto explores the next-smallest pending storage-capacity point
// and returns the (already size-minimized) distributions that reach its
// best throughput. It returns ErrSearchExhausted once every reachable
// distribution has been explored, or once a point reaching the
// unconstrained throughput ceiling has been returned.
//
// Unlike Analyze, NextPareto does not retroactively special-case a
// first point whose throughput turns out to be zero throughout the
// whole search — see Analyze's doc comment and DESIGN.md for why that
// correction only makes sense once the search is known to be complete.
func (e *Explorer) NextPareto(ctx context.Context) ([]*Distribution, error) {
	set, err := e.nextSet(ctx)
	if err != nil {
		return nil, err
	}

	return set.distributions, nil
}

func (e *Explorer) nextSet(ctx context.Context) (*distributionSet, error) {
	if e.done {
		return nil, ErrSearchExhausted
	}

	set := e.cl.front()
	if set == nil {
		e.done = true

		return nil, ErrSearchExhausted
	}
	e.cl.popFront()

	if err := exploreSet(ctx, e.g, e.sm, e.b, set, &e.cl); err != nil {
		return nil, err
	}
	minimize(set, e.prevThr, e.hasPrev)
	e.prevThr, e.hasPrev = set.maxThroughput, true
	if set.maxThroughput.Equal(e.maxThroughput) {
		// No larger size can beat the unconstrained ceiling.
		e.done = true
		e.cl.sets = nil
	}

	return set, nil
}

// exploreSet simulates every candidate distribution in ds concurrently,
// tracks ds's best throughput, and queues an enlarged candidate for
// every non-self-edge channel any candidate reports as storage
// dependent.
func exploreSet(ctx context.Context, g *graph.Graph, sm *sim.Simulator, b bounds.Bounds, ds *distributionSet, cl *checklist) error {
	var mu sync.Mutex
	var wg sync.WaitGroup
	errs := make([]error, len(ds.distributions))
	ds.maxThroughput = ratio.Zero

	for i, d := range ds.distributions {
		i, d := i, d
		wg.Add(1)
		go func() {
			defer wg.Done()

			thr, dep, err := sm.Simulate(ctx, d.Sp)
			if err != nil {
				errs[i] = err

				return
			}

			mu.Lock()
			d.Thr, d.Dep = thr, dep
			if ds.maxThroughput.Less(thr) {
				ds.maxThroughput = thr
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	nc := g.NumChannels()
	for _, d := range ds.distributions {
		for c := 0; c < nc; c++ {
			if !d.Dep[c] || g.SrcActor(c) == g.DstActor(c) {
				continue
			}
			sp := append([]int(nil), d.Sp...)
			sp[c] += b.MinStep[c]
			cl.insert(&Distribution{Size: d.Size + b.MinStep[c], Sp: sp})
		}
	}

	return nil
}

// minimize drops every distribution in ds whose throughput fell short
// of ds's best, and empties ds entirely when its best throughput is no
// improvement over the previous (smaller) size explored — a size that
// buys no throughput is never on the Pareto front.
func minimize(ds *distributionSet, prevThr ratio.Ratio, hasPrev bool) {
	if hasPrev && prevThr.Equal(ds.maxThroughput) {
		ds.distributions = nil

		return
	}

	kept := ds.distributions[:0]
	for _, d := range ds.distributions {
		if !d.Thr.Less(ds.maxThroughput) {
			kept = append(kept, d)
		}
	}
	ds.distributions = kept
}

// Analyze runs the search to completion: it explores storage
// distributions in order of increasing total size until either the
// unconstrained throughput ceiling is reached, thrBound is reached (a
// zero thrBound means "stop as soon as any positive throughput is
// found"), or every reachable distribution has been explored. It returns
// the resulting Pareto-optimal curve.
//
// If every point explored deadlocks (throughput stays exactly zero for
// every reachable distribution, which can only happen when a channel
// modeling a self-edge is the sole source of the dependency — the one
// kind of channel the search never enlarges), the degenerate all-zero
// distribution is reported as the curve's single point, since no
// positive buffer allocation does any better than none at all.
func Analyze(ctx context.Context, g *graph.Graph, thrBound ratio.Ratio) ([]*Distribution, error) {
	e, err := InitSearch(ctx, g)
	if err != nil {
		return nil, err
	}

	var sets []*distributionSet
	for {
		set, err := e.nextSet(ctx)
		if err == ErrSearchExhausted {
			break
		}
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)

		reached := set.maxThroughput.GreaterOrEqual(thrBound)
		if thrBound.IsZero() {
			reached = set.maxThroughput.IsPositive()
		}
		if reached || set.maxThroughput.Equal(e.maxThroughput) {
			break
		}
	}

	applyDegenerateZeroCorrection(sets, len(e.b.MinSz))

	var result []*Distribution
	for _, s := range sets {
		result = append(result, s.distributions...)
	}

	return result, nil
}

// applyDegenerateZeroCorrection replaces sets[0]'s distributions with the
// single all-zero sentinel point when every explored set's throughput
// stayed at zero — the whole-search deadlock case. It must not fire when
// any later, larger size reached positive throughput: in that case
// sets[0] still carries a real (if zero-throughput) distribution that
// the caller needs, not a sentinel.
func applyDegenerateZeroCorrection(sets []*distributionSet, nc int) {
	if len(sets) == 0 {
		return
	}
	for _, s := range sets {
		if s.maxThroughput.IsPositive() {
			return
		}
	}

	sets[0].distributions = []*Distribution{{
		Size: 0,
		Sp:   make([]int, nc),
		Thr:  ratio.Zero,
		Dep:  make([]bool, nc),
	}}
}
