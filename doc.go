// Package csdflow explores the throughput/storage-space trade-off of a
// Cyclo-Static Dataflow Graph (CSDFG) under self-timed, auto-concurrent
// execution.
//
// What it does:
//
//   - graph builds the read-only CSDFG domain model: actors, ports,
//     channels, and a caller-supplied repetition vector.
//   - bounds precomputes, once per graph, the minimal per-channel step
//     size, the minimal per-channel buffer size, and their sum.
//   - sim is a discrete-event, self-timed transition simulator: given a
//     per-channel capacity vector it fires actors to maximal concurrency,
//     detects periodic recurrence in the reachable state space, and
//     reports the resulting throughput together with the channels whose
//     capacity is a binding constraint.
//   - pareto drives sim across a monotonically growing set of capacity
//     vectors to enumerate the Pareto-minimal storage distributions that
//     reach successive throughput levels, up to a caller-supplied bound
//     or the graph's unconstrained maximum throughput.
//
// state and depgraph are the simulator's two supporting primitives: a
// store for cycle detection over the simulator's state space, and an
// abstract dependency graph used to trace a deadlock or a throughput
// bottleneck back to the channels responsible.
//
// Typical use:
//
//	g := graph.NewGraph()
//	a := g.AddActor([]int{1})
//	b := g.AddActor([]int{2})
//	_, _ = g.AddChannel(a, b, []int{1}, []int{1}, 0)
//	_ = g.SetRepetitionVector([]int{1, 1})
//	if err := g.Freeze(); err != nil {
//		// handle invalid graph
//	}
//
//	list, err := pareto.Analyze(context.Background(), g, ratio.Zero)
//
// csdflow carries no third-party production dependency — a discrete-event
// simulator over an in-memory graph owns no I/O boundary to fill with one
// — and uses github.com/stretchr/testify only in its tests.
package csdflow
