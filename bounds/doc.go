// Package bounds precomputes the per-channel size and step bounds that
// the Pareto explorer (package pareto) uses to seed and grow its search.
//
// Compute runs once per graph and is pure: it never simulates the graph
// and never touches maxThroughput, which the caller (package pareto)
// fills separately via sim.MaxThroughput, since that figure requires
// running the dedicated unconstrained-throughput transition system
// rather than combinatorics over rates alone.
package bounds
