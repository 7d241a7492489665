package graph

// NumActors returns the number of actors, dense ids [0, NumActors()).
func (g *Graph) NumActors() int { return len(g.actors) }

// NumChannels returns the number of channels, dense ids [0, NumChannels()).
func (g *Graph) NumChannels() int { return len(g.channels) }

// Channel returns the channel with the given id.
func (g *Graph) Channel(id int) Channel { return g.channels[id] }

// SrcActor returns the source actor id of channel c.
func (g *Graph) SrcActor(c int) int { return g.channels[c].srcActor }

// DstActor returns the destination actor id of channel c.
func (g *Graph) DstActor(c int) int { return g.channels[c].dstActor }

// SeqLen returns actor a's sequence length L.
func (g *Graph) SeqLen(a int) int { return len(g.actors[a].exec) }

// Exec returns actor a's execution time at the given phase, wrapping
// modulo a's sequence length.
func (g *Graph) Exec(a, phase int) int {
	e := g.actors[a].exec

	return e[phase%len(e)]
}

// RateSrc returns channel c's production rate (on its source port) at
// the given phase, wrapping modulo the source rate sequence's length.
func (g *Graph) RateSrc(c, phase int) int {
	r := g.channels[c].srcRate

	return r[phase%len(r)]
}

// RateDst returns channel c's consumption rate (on its destination port)
// at the given phase, wrapping modulo the destination rate sequence's
// length.
func (g *Graph) RateDst(c, phase int) int {
	r := g.channels[c].dstRate

	return r[phase%len(r)]
}

// SrcRateLen returns the length of channel c's source rate sequence.
func (g *Graph) SrcRateLen(c int) int { return len(g.channels[c].srcRate) }

// DstRateLen returns the length of channel c's destination rate
// sequence.
func (g *Graph) DstRateLen(c int) int { return len(g.channels[c].dstRate) }

// InitialTokens returns channel c's initial token count.
func (g *Graph) InitialTokens(c int) int { return g.channels[c].initTokens }

// RepetitionVector returns the caller-supplied per-actor firing counts
// for one periodic iteration. The returned slice must not be mutated.
func (g *Graph) RepetitionVector() []int { return g.repVec }

// SelectOutputActor returns the id of the actor with the smallest entry
// in the repetition vector (ties broken by lowest actor id) and that
// actor's repetition count — the number of its completions that make up
// one periodic iteration.
func (g *Graph) SelectOutputActor() (actor, repCount int) {
	return g.outputActor, g.outputRep
}

// Frozen reports whether Freeze has been called successfully.
func (g *Graph) Frozen() bool { return g.frozen }
