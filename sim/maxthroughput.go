package sim

import (
	"context"

	"github.com/katalvlaran/csdflow/graph"
	"github.com/katalvlaran/csdflow/ratio"
	"github.com/katalvlaran/csdflow/state"
)

// MaxThroughput computes g's throughput under unconstrained (infinite)
// buffers: the ceiling the Pareto explorer searches towards. Unlike
// Simulate, it never tracks per-channel space and never performs
// dependency analysis, since an unconstrained channel can never be the
// cause of a stall.
func MaxThroughput(ctx context.Context, g *graph.Graph) (ratio.Ratio, error) {
	if g == nil {
		return ratio.Zero, ErrGraphNil
	}
	if !g.Frozen() {
		return ratio.Zero, ErrGraphNotFrozen
	}

	outputActor, outputRep := g.SelectOutputActor()
	nc := g.NumChannels()

	cur := state.New(g.NumActors(), nc, false)
	for c := 0; c < nc; c++ {
		cur.Tok[c] = g.InitialTokens(c)
	}

	store := state.NewLinearStore()
	repCnt := 0

	for {
		select {
		case <-ctx.Done():
			return ratio.Zero, ctx.Err()
		default:
		}

		for a := 0; a < g.NumActors(); a++ {
			for actorReadyToEnd(cur, a) {
				if a == outputActor {
					repCnt++
					if repCnt == outputRep {
						if idx := store.Lookup(cur); idx != -1 {
							return computeThroughput(store, idx), nil
						}
						if err := store.Record(cur); err != nil {
							return ratio.Zero, err
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
			// Only a structural absence of initial tokens can stall an
			// unconstrained graph; report it as zero throughput.
			return ratio.Zero, nil
		}
	}
}
