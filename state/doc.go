// Package state holds the simulator's per-instant State value and the
// Store used to detect periodic recurrence in the reachable state space.
//
// Two Store implementations are provided. LinearStore does a plain
// linear scan for equality, which is the right trade-off for the CSDFG
// buffer-sizing engine's typical periodic phase length (§4.B: "in
// practice fit within a bounded, small number of states, typically
// < 10^3"). HashStore keys stored states by a rolling multiplicative
// hash over all scalar fields, falling back to equality on collision,
// matching the alternative backend the original source uses for its
// larger SDFG dependency-analysis variant.
package state
