// Package ratio provides an exact, reduced rational number used to
// represent throughput values throughout csdflow.
//
// Why not float64: the Pareto explorer compares throughput values for
// exact equality (a distribution set's throughput against the previous
// size class's, and against the unconstrained maximum) to decide whether
// a set is Pareto-optimal and whether the search has converged. Floating
// point equality on accumulated division results is not reliable enough
// for that; a reduced int64 fraction makes the comparison exact by
// construction, as long as every producer of a Ratio (throughput from a
// recurrent cycle, the unconstrained maximum) goes through New.
package ratio
