package pareto

import "errors"

// ErrGraphNil is returned when a nil *graph.Graph is passed to Analyze
// or InitSearch.
var ErrGraphNil = errors.New("pareto: graph is nil")

// ErrGraphNotFrozen is returned when the graph passed to Analyze or
// InitSearch has not been through graph.Graph.Freeze.
var ErrGraphNotFrozen = errors.New("pareto: graph is not frozen")

// ErrSearchExhausted is returned by NextPareto once every reachable
// storage distribution has been explored, or once a point reaching the
// unconstrained throughput ceiling has been returned.
var ErrSearchExhausted = errors.New("pareto: search exhausted")
