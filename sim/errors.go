package sim

import "errors"

// ErrGraphNil is returned when a nil *graph.Graph is passed to Simulate
// or MaxThroughput.
var ErrGraphNil = errors.New("sim: graph is nil")

// ErrGraphNotFrozen is returned when the graph passed to Simulate or
// MaxThroughput has not been through graph.Graph.Freeze.
var ErrGraphNotFrozen = errors.New("sim: graph is not frozen")

// ErrSpaceLengthMismatch is returned when the per-channel space slice
// passed to Simulate does not have one entry per channel.
var ErrSpaceLengthMismatch = errors.New("sim: space slice length does not match channel count")
