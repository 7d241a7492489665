package graph_test

import (
	"fmt"

	"github.com/katalvlaran/csdflow/graph"
)

// ExampleGraph_twoActorCycle builds the two-actor HSDF cycle from
// spec.md §8 scenario 1 and reads back its derived output actor.
func ExampleGraph_twoActorCycle() {
	g := graph.NewGraph()
	a := g.AddActor([]int{1}) // exec(A) = 1
	b := g.AddActor([]int{2}) // exec(B) = 2
	_, _ = g.AddChannel(a, b, []int{1}, []int{1}, 0)
	_, _ = g.AddChannel(b, a, []int{1}, []int{1}, 1)
	_ = g.SetRepetitionVector([]int{1, 1})
	if err := g.Freeze(); err != nil {
		fmt.Println("error:", err)
		return
	}

	out, rep := g.SelectOutputActor()
	fmt.Printf("outputActor=%d repCount=%d\n", out, rep)
	// Output: outputActor=0 repCount=1
}
