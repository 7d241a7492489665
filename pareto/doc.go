// Package pareto explores the trade-off between per-channel storage
// capacity and throughput for a frozen CSDF graph, producing the
// Pareto-optimal curve of (total buffer size, throughput) points: for
// every total size on the curve, no smaller total size achieves the
// same throughput, and no distribution of that size achieves higher
// throughput.
//
// Analyze runs the search to completion (or to a caller-supplied
// throughput bound). InitSearch/NextPareto expose the same search one
// Pareto point at a time, for callers that want to stop early or report
// progress as the space is explored.
package pareto
