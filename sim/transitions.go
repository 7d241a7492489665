package sim

import (
	"github.com/katalvlaran/csdflow/depgraph"
	"github.com/katalvlaran/csdflow/graph"
	"github.com/katalvlaran/csdflow/state"
)

// actorReadyToFire reports whether every input channel of actor a holds
// enough tokens, and (when s tracks space) every output channel has
// enough free space, for a to start its next phase.
func actorReadyToFire(g *graph.Graph, s *state.State, a int) bool {
	phase := s.Seq[a]
	for c := 0; c < g.NumChannels(); c++ {
		if g.DstActor(c) == a {
			if s.Tok[c] < g.RateDst(c, phase) {
				return false
			}
		}
		if g.SrcActor(c) == a && s.Sp != nil {
			if s.Sp[c] < g.RateSrc(c, phase) {
				return false
			}
		}
	}

	return true
}

// startActorFiring consumes input tokens and output space for actor a's
// current phase, pushes the firing's remaining execution time onto a's
// clock queue, and advances a to its next phase.
func startActorFiring(g *graph.Graph, s *state.State, a int) {
	phase := s.Seq[a]
	for c := 0; c < g.NumChannels(); c++ {
		if g.DstActor(c) == a {
			s.Tok[c] -= g.RateDst(c, phase)
		}
		if g.SrcActor(c) == a && s.Sp != nil {
			s.Sp[c] -= g.RateSrc(c, phase)
		}
	}
	s.Clk[a] = append(s.Clk[a], g.Exec(a, phase))
	s.Seq[a] = (phase + 1) % g.SeqLen(a)
}

// actorReadyToEnd reports whether a's oldest in-flight firing has no
// remaining execution time.
func actorReadyToEnd(s *state.State, a int) bool {
	return len(s.Clk[a]) > 0 && s.Clk[a][0] == 0
}

// endActorFiring produces output tokens and input space for the phase
// that started a's oldest in-flight firing, and retires that firing.
func endActorFiring(g *graph.Graph, s *state.State, a int) {
	l := g.SeqLen(a)
	phase := ((s.Seq[a]-len(s.Clk[a]))%l + l) % l

	for c := 0; c < g.NumChannels(); c++ {
		if g.SrcActor(c) == a {
			s.Tok[c] += g.RateSrc(c, phase)
		}
		if g.DstActor(c) == a && s.Sp != nil {
			s.Sp[c] += g.RateDst(c, phase)
		}
	}
	s.Clk[a] = s.Clk[a][1:]
}

// clockStep advances time to the earliest pending firing completion. It
// returns the elapsed step and deadlock=true when no actor has a firing
// in flight (no further progress is possible).
func clockStep(s *state.State) (step int, deadlock bool) {
	step = -1
	for _, clk := range s.Clk {
		if len(clk) == 0 {
			continue
		}
		if step == -1 || clk[0] < step {
			step = clk[0]
		}
	}
	if step == -1 {
		return 0, true
	}
	if step == 0 {
		return 0, false
	}
	for _, clk := range s.Clk {
		for i := range clk {
			clk[i] -= step
		}
	}
	s.GlbClk += int64(step)

	return step, false
}

// findCausalDependencies records, in dg, every actor that a's firing at
// its current phase would be blocked on had prev's token/space counts
// still been in effect.
func findCausalDependencies(g *graph.Graph, cur, prev *state.State, a int, dg *depgraph.Graph) {
	phase := cur.Seq[a]
	for c := 0; c < g.NumChannels(); c++ {
		if g.DstActor(c) == a {
			if prev.Tok[c] < g.RateDst(c, phase) {
				dg.AddEdge(a, g.SrcActor(c))
			}
		}
		if g.SrcActor(c) == a {
			if prev.Sp[c] < g.RateSrc(c, phase) {
				dg.AddEdge(a, g.DstActor(c))
			}
		}
	}
}

// channelEndpoints returns parallel slices of every channel's source and
// destination actor, for depgraph.MarkDependentChannels.
func channelEndpoints(g *graph.Graph) (src, dst []int) {
	n := g.NumChannels()
	src = make([]int, n)
	dst = make([]int, n)
	for c := 0; c < n; c++ {
		src[c] = g.SrcActor(c)
		dst[c] = g.DstActor(c)
	}

	return src, dst
}

// analyzeDeadlock builds the abstract dependency graph for a deadlocked
// state and reports the channels whose cycles caused it.
func analyzeDeadlock(g *graph.Graph, s *state.State) []bool {
	dg := depgraph.New(g.NumActors())

	for c := 0; c < g.NumChannels(); c++ {
		src, dst := g.SrcActor(c), g.DstActor(c)
		if s.Tok[c] < g.RateDst(c, s.Seq[dst]) {
			dg.AddEdge(dst, src)
		}
		if s.Sp[c] < g.RateSrc(c, s.Seq[src]) {
			dg.AddEdge(src, dst)
		}
	}

	csrc, cdst := channelEndpoints(g)

	return depgraph.MarkDependentChannels(dg, csrc, cdst)
}

// analyzePeriodicPhase replays one more lap from the just-recurred
// periodic state, tracking causal dependencies as it goes, to find which
// channels are on a storage-dependency cycle. prevRoundState is the state
// as of the end of the round preceding the one in which recurrence was
// detected — it must be captured by the caller at the top of that round,
// before that round's own end-events ran, since periodicState may already
// reflect completions (of actors with a lower id than outputActor, or of
// outputActor itself firing more than once per round) that happened later
// in the very same round.
func analyzePeriodicPhase(g *graph.Graph, periodicState, prevRoundState *state.State, outputActor, outputRep int) []bool {
	n := g.NumActors()
	dg := depgraph.New(n)

	cur := periodicState.Clone()
	prev := prevRoundState.Clone()

	cur.GlbClk = 0
	repCnt := -1

	for a := 0; a < n; a++ {
		for actorReadyToEnd(cur, a) {
			if a == outputActor {
				repCnt++
				if repCnt == outputRep {
					cur.GlbClk = 0
					repCnt = 0
				}
			}
			endActorFiring(g, cur, a)
		}
	}

	for {
		for a := 0; a < n; a++ {
			for actorReadyToFire(g, cur, a) {
				findCausalDependencies(g, cur, prev, a, dg)
				startActorFiring(g, cur, a)
			}
		}

		clockStep(cur)

		prev.Tok = append(prev.Tok[:0], cur.Tok...)
		prev.Sp = append(prev.Sp[:0], cur.Sp...)

		for a := 0; a < n; a++ {
			for actorReadyToEnd(cur, a) {
				if a == outputActor {
					repCnt++
					if repCnt == outputRep {
						if cur.Equal(periodicState) {
							csrc, cdst := channelEndpoints(g)

							return depgraph.MarkDependentChannels(dg, csrc, cdst)
						}
						cur.GlbClk = 0
						repCnt = 0
					}
				}
				endActorFiring(g, cur, a)
			}
		}
	}
}
