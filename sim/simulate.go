package sim

import (
	"context"

	"github.com/katalvlaran/csdflow/graph"
	"github.com/katalvlaran/csdflow/ratio"
	"github.com/katalvlaran/csdflow/state"
)

// Simulator replays a single frozen graph's firing rules under
// caller-supplied per-channel space budgets.
type Simulator struct {
	g           *graph.Graph
	outputActor int
	outputRep   int
	newStore    func() state.Store
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithStore overrides the default LinearStore used to detect periodic
// recurrence. Use state.NewHashStore for graphs whose periodic phase is
// expected to contain many states.
func WithStore(newStore func() state.Store) Option {
	return func(sm *Simulator) { sm.newStore = newStore }
}

// New returns a Simulator for g, which must already be frozen.
func New(g *graph.Graph, opts ...Option) (*Simulator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Frozen() {
		return nil, ErrGraphNotFrozen
	}

	outputActor, outputRep := g.SelectOutputActor()
	sm := &Simulator{
		g:           g,
		outputActor: outputActor,
		outputRep:   outputRep,
		newStore:    func() state.Store { return state.NewLinearStore() },
	}
	for _, opt := range opts {
		opt(sm)
	}

	return sm, nil
}

// Simulate runs the self-timed simulation with every channel c bounded
// to a total capacity of sp[c] tokens, its initial tokens included (a
// channel with sp[c] below its initial token count is reported as
// zero throughput with that channel flagged). It returns the
// exact throughput, and for every channel whether it lies on a storage
// dependency that is holding throughput back — populated whenever
// throughput is zero (deadlock, or insufficient space for the initial
// tokens) or whenever the periodic phase has a non-trivial dependency
// cycle even at positive throughput.
func (sm *Simulator) Simulate(ctx context.Context, sp []int) (ratio.Ratio, []bool, error) {
	g := sm.g
	nc := g.NumChannels()
	if len(sp) != nc {
		return ratio.Zero, nil, ErrSpaceLengthMismatch
	}

	dep := make([]bool, nc)
	for c := 0; c < nc; c++ {
		if sp[c] < g.InitialTokens(c) {
			dep[c] = true

			return ratio.Zero, dep, nil
		}
	}

	cur := state.New(g.NumActors(), nc, true)
	for c := 0; c < nc; c++ {
		cur.Tok[c] = g.InitialTokens(c)
		cur.Sp[c] = sp[c] - g.InitialTokens(c)
	}

	store := sm.newStore()
	repCnt := 0

	for {
		select {
		case <-ctx.Done():
			return ratio.Zero, nil, ctx.Err()
		default:
		}

		// prevRound is cur as of the end of the previous round's clock
		// step, captured before this round's end-events run below — the
		// same staleness execCSDFgraph's previousState has at this point.
		prevRound := cur.Clone()

		for a := 0; a < g.NumActors(); a++ {
			for actorReadyToEnd(cur, a) {
				if a == sm.outputActor {
					repCnt++
					if repCnt == sm.outputRep {
						if idx := store.Lookup(cur); idx != -1 {
							periodicDep := analyzePeriodicPhase(g, cur.Clone(), prevRound, sm.outputActor, sm.outputRep)

							return computeThroughput(store, idx), periodicDep, nil
						}
						if err := store.Record(cur); err != nil {
							return ratio.Zero, nil, err
						}
						cur.GlbClk = 0
						repCnt = 0
					}
				}
				endActorFiring(g, cur, a)
			}
		}

		for a := 0; a < g.NumActors(); a++ {
			for actorReadyToFire(g, cur, a) {
				startActorFiring(g, cur, a)
			}
		}

		if _, deadlock := clockStep(cur); deadlock {
			return ratio.Zero, analyzeDeadlock(g, cur), nil
		}
	}
}

// computeThroughput derives the throughput ratio from the stored states
// on the cycle starting at idx: one firing of the output actor's
// repetition count per recorded state, over the elapsed time recorded in
// each state's GlbClk (reset to zero at every such checkpoint).
func computeThroughput(store state.Store, idx int) ratio.Ratio {
	var nrFire, total int64
	for i := idx; i < store.Len(); i++ {
		nrFire++
		total += store.At(i).GlbClk
	}

	return ratio.New(nrFire, total)
}
