package graph

import "errors"

// Sentinel errors for graph construction and access.
var (
	// ErrNoActors indicates Freeze was called on a graph with zero actors.
	ErrNoActors = errors.New("graph: no actors registered")

	// ErrNoRepetitionVector indicates Freeze was called before a valid,
	// strictly-positive repetition vector was supplied.
	ErrNoRepetitionVector = errors.New("graph: repetition vector missing or non-positive")

	// ErrChannelEndpoint indicates AddChannel referenced an actor id that
	// was never registered with AddActor.
	ErrChannelEndpoint = errors.New("graph: channel endpoint actor not found")

	// ErrEmptyRateSeq indicates a channel port was given an empty rate
	// sequence.
	ErrEmptyRateSeq = errors.New("graph: port rate sequence must be non-empty")

	// ErrNotFrozen indicates an accessor was called before Freeze.
	ErrNotFrozen = errors.New("graph: graph not frozen")

	// ErrAlreadyFrozen indicates a mutation was attempted after Freeze.
	ErrAlreadyFrozen = errors.New("graph: graph already frozen")

	// ErrBadActorID indicates an out-of-range actor id was supplied.
	ErrBadActorID = errors.New("graph: actor id out of range")

	// ErrBadChannelID indicates an out-of-range channel id was supplied.
	ErrBadChannelID = errors.New("graph: channel id out of range")
)

// Actor is a CSDFG computation node: a fixed cyclic sequence of phases,
// each with its own execution time. Exec has length SeqLen (the actor's
// L); phase position wraps modulo SeqLen.
type Actor struct {
	id   int
	exec []int
}

// Channel is a FIFO between one output port (on SrcActor) and one input
// port (on DstActor), carrying InitTokens initial tokens. SrcRate and
// DstRate are the per-phase rate sequences of the two ports; they may
// have different lengths (the channel's effective period is their lcm).
// Self-edges (SrcActor == DstActor) are permitted.
type Channel struct {
	id         int
	srcActor   int
	dstActor   int
	srcRate    []int
	dstRate    []int
	initTokens int
}

// SrcActor returns the id of the actor producing into this channel.
func (c Channel) SrcActor() int { return c.srcActor }

// DstActor returns the id of the actor consuming from this channel.
func (c Channel) DstActor() int { return c.dstActor }

// InitTokens returns the channel's initial token count.
func (c Channel) InitTokens() int { return c.initTokens }

// IsSelfEdge reports whether the channel's source and destination are
// the same actor.
func (c Channel) IsSelfEdge() bool { return c.srcActor == c.dstActor }
