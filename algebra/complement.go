package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

func universal(ctx *bcp.Context) *bcl.List {
	l := bcl.New(ctx)
	l.AddCube(ctx.DC())
	return l
}

// Complement is the default complement path: start from a
// list containing only the universal cube, subtract l from it (SCC, and
// MCC when l is binate), then expand the result against the off-set l
// itself, finishing with MCC. This is the fastest route in the source
// engine's own measurements, with expand-against-off-set cleaning up the
// resulting polytope afterward.
func Complement(ctx *bcp.Context, l *bcl.List) *bcl.List {
	result := universal(ctx)
	Subtract(ctx, result, l, ShouldUseMCC(l))
	ExpandAgainstOffset(ctx, result, l)
	MCC(ctx, result)
	return result
}

// ComplementCofactor is an alternate complement path using recursive
// cofactor-split (Shannon) De Morgan combining: it is provided for
// benchmarking only, is not required for correctness, but MUST produce a
// set-equal result to Complement.
func ComplementCofactor(ctx *bcp.Context, l *bcl.List) *bcl.List {
	live := liveIndices(l)
	if len(live) == 0 {
		return universal(ctx)
	}
	if len(live) == 1 {
		return complementSingleCube(ctx, l.Cube(live[0]))
	}

	tab := bcl.Tabulate(l)
	v := tab.MaxBinateSplitVariable()
	if v < 0 {
		v = pickAnySpecifiedVar(l)
	}
	if v < 0 {
		// Every live cube is the universal cube: l is tautology, its
		// complement is empty.
		return bcl.New(ctx)
	}
	pos := uint(v)

	// The pos=0 half raises the Zero cubes (value One), the pos=1 half the
	// One cubes (value Zero); cubes still specified at pos lie outside the
	// half and are dropped, so each half is free of pos.
	f0 := bcl.NewFrom(l)
	OneVariableCofactor(ctx, f0, pos, cube.One)
	f1 := bcl.NewFrom(l)
	OneVariableCofactor(ctx, f1, pos, cube.Zero)
	for _, f := range []*bcl.List{f0, f1} {
		for i := 0; i < f.Len(); i++ {
			if f.Cube(i).GetVar(pos) != cube.DC {
				f.Delete(i)
			}
		}
		f.Purge()
	}

	c0 := ComplementCofactor(ctx, f0)
	c1 := ComplementCofactor(ctx, f1)
	forcePosIfDC(c0, pos, cube.Zero)
	forcePosIfDC(c1, pos, cube.One)

	result := bcl.New(ctx)
	result.AddCubesFromList(c0)
	result.AddCubesFromList(c1)
	SCC(result)
	return result
}

// ComplementSingletons is the second alternate complement path:
// intersection-of-singletons derived from single-cube inversion (De
// Morgan: complement(union of cubes) == intersection of each cube's own
// complement). Provided for benchmarking only.
func ComplementSingletons(ctx *bcp.Context, l *bcl.List) *bcl.List {
	live := liveIndices(l)
	if len(live) == 0 {
		return universal(ctx)
	}
	result := complementSingleCube(ctx, l.Cube(live[0]))
	for _, i := range live[1:] {
		next := complementSingleCube(ctx, l.Cube(i))
		out := bcl.New(ctx)
		Intersect(ctx, out, result, next)
		result = out
	}
	return result
}

// complementSingleCube returns the complement of a single cube c: the
// disjunction of one single-literal cube per specified variable of c, each
// holding the opposite literal.
func complementSingleCube(ctx *bcp.Context, c *cube.Cube) *bcl.List {
	out := bcl.New(ctx)
	if cube.IsIllegal(c) {
		out.AddCube(ctx.DC())
		return out
	}
	n := c.NumVars()
	for v := uint(0); v < n; v++ {
		val := c.GetVar(v)
		if val == cube.DC {
			continue
		}
		lit := ctx.DC().Clone()
		lit.SetVar(v, opposite(val))
		out.AddCube(lit)
	}
	return out
}

func opposite(v cube.Value) cube.Value {
	switch v {
	case cube.Zero:
		return cube.One
	case cube.One:
		return cube.Zero
	default:
		return v
	}
}

func pickAnySpecifiedVar(l *bcl.List) int {
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		for v := uint(0); v < c.NumVars(); v++ {
			if c.GetVar(v) != cube.DC {
				return int(v)
			}
		}
	}
	return -1
}

// forcePosIfDC sets position pos to val in every live cube of l whose code
// at pos is currently don't-care; cubes already specified at pos keep their
// literal. ComplementCofactor calls it on the complement of a cofactor half,
// which is don't-care at pos in every cube.
func forcePosIfDC(l *bcl.List, pos uint, val cube.Value) {
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		if c.GetVar(pos) == cube.DC {
			c.SetVar(pos, val)
		}
	}
}
