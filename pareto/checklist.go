package pareto

import "sort"

// checklist holds distributionSets ordered by ascending size: the
// worklist of storage-capacity points still to explore.
type checklist struct {
	sets []*distributionSet
}

// insert adds d to the set matching its size, creating that set if
// needed, and reports whether d was actually added — it is rejected
// when an identical distribution (same per-channel capacities) for that
// size already exists.
func (cl *checklist) insert(d *Distribution) bool {
	i := sort.Search(len(cl.sets), func(i int) bool { return cl.sets[i].size >= d.Size })

	if i < len(cl.sets) && cl.sets[i].size == d.Size {
		set := cl.sets[i]
		for _, existing := range set.distributions {
			if equalSp(existing.Sp, d.Sp) {
				return false
			}
		}
		set.distributions = append(set.distributions, d)

		return true
	}

	set := &distributionSet{size: d.Size, distributions: []*Distribution{d}}
	cl.sets = append(cl.sets, nil)
	copy(cl.sets[i+1:], cl.sets[i:])
	cl.sets[i] = set

	return true
}

// front returns the smallest-size set still pending, or nil if the
// checklist is empty.
func (cl *checklist) front() *distributionSet {
	if len(cl.sets) == 0 {
		return nil
	}

	return cl.sets[0]
}

// popFront removes the smallest-size set from the checklist.
func (cl *checklist) popFront() {
	cl.sets = cl.sets[1:]
}
