// Package sim implements the discrete-event, self-timed simulation of a
// frozen CSDF graph. Simulate replays firings under a fixed per-channel
// space allocation until either the reachable state space recurs
// (yielding an exact throughput) or the graph deadlocks, and in both
// cases reports which channels are responsible via package depgraph.
// MaxThroughput runs the same firing rules with unconstrained buffers to
// find the graph's unconstrained throughput, the ceiling the Pareto
// explorer (package pareto) searches towards.
package sim
