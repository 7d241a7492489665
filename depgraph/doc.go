// Package depgraph implements the abstract dependency graph (ADG) used
// to trace why a storage distribution under-performs: an actor x actor
// adjacency capturing "a cannot proceed until b does" relations observed
// while replaying one lap of the simulator. Any cycle in the ADG
// corresponds to a set of channels that are mutually blocking each
// other, and those channels are reported as storage-dependent so the
// Pareto explorer knows which channel to enlarge next.
//
// The cycle search is an iterative, explicit-stack DFS rather than the
// natural recursive formulation, so it never grows the Go call stack
// with the size of the graph being explored.
package depgraph
