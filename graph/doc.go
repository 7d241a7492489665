// Package graph defines the read-only Cyclo-Static Dataflow Graph (CSDFG)
// domain model consumed by the rest of csdflow.
//
// A Graph is built incrementally with AddActor / AddChannel /
// SetRepetitionVector under a sync.Mutex, in the style of
// github.com/katalvlaran/lvlath's core.Graph builder,
// then frozen with Freeze. Freeze validates the graph (non-empty,
// well-formed channel endpoints, a positive repetition vector present)
// and precomputes the output actor (§4.A: the actor with the smallest
// repetition-vector entry, ties broken by lowest actor id). After Freeze,
// a Graph is immutable and safe for concurrent reads from multiple
// goroutines — the simulator relies on this to run independent
// simulations over the same Graph in parallel.
//
// Actors and channels are addressed by dense, zero-based integer ids
// assigned in AddActor/AddChannel call order, matching §6's input
// contract ("actors: identified by dense non-negative integer ids in
// [0, N)").
package graph
