package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// IsTautology reports whether l covers the universal cube, via a recursive
// Shannon-expansion procedure: empty-list and single-cube base cases, a
// partition decomposition, then a unate leaf test or a binate split and
// recursion on both cofactors.
//
// This is the engine's most important algorithm; every other algebraic
// procedure in this package (subtract, complement, containment, subset)
// bottoms out in a call to it.
func IsTautology(ctx *bcp.Context, l *bcl.List) bool {
	live := liveIndices(l)
	switch len(live) {
	case 0:
		return false
	case 1:
		return cube.IsTautology(l.Cube(live[0]))
	}

	if a, b, ok := findPartition(l, live); ok {
		return IsTautology(ctx, a) || IsTautology(ctx, b)
	}

	tab := bcl.Tabulate(l)
	v := tab.MaxBinateSplitVariable()
	if v < 0 {
		// Unate: tautology iff some single cube of l is itself a
		// tautology.
		for _, i := range live {
			if cube.IsTautology(l.Cube(i)) {
				return true
			}
		}
		return false
	}

	pos := uint(v)
	zero := bcl.NewFrom(l)
	OneVariableCofactor(ctx, zero, pos, cube.Zero)
	if !IsTautology(ctx, zero) {
		return false
	}
	one := bcl.NewFrom(l)
	OneVariableCofactor(ctx, one, pos, cube.One)
	return IsTautology(ctx, one)
}

func liveIndices(l *bcl.List) []int {
	idx := make([]int, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		if !l.IsDeleted(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

// findPartition widens the support mask of
// the first live cube by unioning in any other live cube's mask that
// intersects it, until no further growth; any live cube whose mask stays
// disjoint belongs to an independent partition. It returns two fresh lists
// (the tombstone flags of l are left untouched) when such a split exists.
func findPartition(l *bcl.List, live []int) (a, b *bcl.List, ok bool) {
	if len(live) < 2 {
		return nil, nil, false
	}
	inGroupA := make([]bool, len(live))
	inGroupA[0] = true
	support := cube.VariableMask(l.Cube(live[0])).Clone()

	for changed := true; changed; {
		changed = false
		for k := 1; k < len(live); k++ {
			if inGroupA[k] {
				continue
			}
			m := cube.VariableMask(l.Cube(live[k]))
			if !cube.MaskDisjoint(support, m) {
				inGroupA[k] = true
				support = support.Union(m)
				changed = true
			}
		}
	}

	anyOutside := false
	for _, in := range inGroupA {
		if !in {
			anyOutside = true
			break
		}
	}
	if !anyOutside {
		return nil, nil, false
	}

	a = bcl.New(l.Context())
	b = bcl.New(l.Context())
	for k, i := range live {
		if inGroupA[k] {
			a.AddCube(l.Cube(i))
		} else {
			b.AddCube(l.Cube(i))
		}
	}
	return a, b, true
}
