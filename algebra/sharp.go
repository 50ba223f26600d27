package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// CubeSharp computes a # b (cube sharp): for every variable position where
// b is specified, if a restricted to the complementary value at that
// position is non-empty, a clone of a with that position narrowed is
// appended to out. The result is append-only: no individual result cube is
// ever dropped.
func CubeSharp(ctx *bcp.Context, a, b *cube.Cube, out *bcl.List) {
	n := a.NumVars()
	for v := uint(0); v < n; v++ {
		bv := b.GetVar(v)
		if bv == cube.DC {
			continue
		}
		av := a.GetVar(v)
		newVal := av & (bv ^ cube.DC)
		if newVal == cube.Illegal {
			continue
		}
		i := out.AddCube(a)
		out.Cube(i).SetVar(v, newVal)
	}
}

// ShouldUseMCC implements the "use MCC iff the divisor is binate" policy as
// a decision callers make explicitly rather than one baked into Subtract or
// Union; callers decide for themselves whether to call this or hard-code a
// choice.
func ShouldUseMCC(divisor *bcl.List) bool {
	return !bcl.Tabulate(divisor).IsUnate()
}

// Subtract computes a := a \ b in place: for every live cube of b,
// cube-sharp is accumulated (over every live cube of a) into a scratch
// list, which then replaces a; SCC always runs, MCC runs only if useMCC is
// true. Running MCC against a unate divisor only wastes time — sharp
// against a unate list already yields maximal cubes — hence the explicit
// parameter rather than an implicit unate test.
func Subtract(ctx *bcp.Context, a *bcl.List, b *bcl.List, useMCC bool) {
	for bi := 0; bi < b.Len(); bi++ {
		if b.IsDeleted(bi) {
			continue
		}
		bc := b.Cube(bi)
		scratch := bcl.New(ctx)
		for ai := 0; ai < a.Len(); ai++ {
			if a.IsDeleted(ai) {
				continue
			}
			CubeSharp(ctx, a.Cube(ai), bc, scratch)
		}
		a.Clear()
		a.AddCubesFromList(scratch)
		SCC(a)
		if useMCC {
			MCC(ctx, a)
		}
	}
}
