package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// Intersect computes out := a ∩ b as the pairwise cube intersection of
// every live pair, followed by SCC.
func Intersect(ctx *bcp.Context, out *bcl.List, a, b *bcl.List) {
	scratch := cube.New(ctx.NumVars)
	for i := 0; i < a.Len(); i++ {
		if a.IsDeleted(i) {
			continue
		}
		for j := 0; j < b.Len(); j++ {
			if b.IsDeleted(j) {
				continue
			}
			if cube.Intersection(scratch, a.Cube(i), b.Cube(j)) {
				out.AddCube(scratch)
			}
		}
	}
	SCC(out)
}

// Union computes out := a ∪ b: every live cube of both lists is appended,
// then SCC removes any cube subsumed by another; MCC additionally runs
// when useMCC is true.
func Union(ctx *bcp.Context, out *bcl.List, a, b *bcl.List, useMCC bool) {
	out.AddCubesFromList(a)
	out.AddCubesFromList(b)
	SCC(out)
	if useMCC {
		MCC(ctx, out)
	}
}

// IsSubsetBCL reports whether a ⊆ b, via cofactor-tautology: a ⊆ b iff
// every cube of a, cofactored against b, is itself a tautology — no point
// of a escapes b.
func IsSubsetBCL(ctx *bcp.Context, a, b *bcl.List) bool {
	for i := 0; i < a.Len(); i++ {
		if a.IsDeleted(i) {
			continue
		}
		cofactored := bcl.NewFrom(b)
		CofactorByCube(ctx, cofactored, a.Cube(i), -1)
		if !IsTautology(ctx, cofactored) {
			return false
		}
	}
	return true
}

// IsSubsetViaSubtract is an alternate subset test (benchmark only): a ⊆ b
// iff a \ b is empty. It MUST agree with IsSubsetBCL.
func IsSubsetViaSubtract(ctx *bcp.Context, a, b *bcl.List) bool {
	diff := bcl.NewFrom(a)
	Subtract(ctx, diff, b, ShouldUseMCC(b))
	return diff.Len() == 0
}

// IsEqual reports whether a and b describe the same Boolean function:
// mutual subset.
func IsEqual(ctx *bcp.Context, a, b *bcl.List) bool {
	return IsSubsetBCL(ctx, a, b) && IsSubsetBCL(ctx, b, a)
}
