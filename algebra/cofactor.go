// Package algebra implements the set-algebra procedures that operate on
// cube lists: cofactor (C5), containment (C6), sharp/subtract (C7),
// complement (C8), tautology (C9), intersection/union/subset (C10),
// expand/minimize (C11), and group exclusion (C12). Every function takes
// the owning *bcp.Context explicitly — a list borrows the context but does
// not own it.
package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// compatible reports whether a OR b == DC, i.e. whether the two 2-bit codes
// together accept both binary values; for two specified literals this means
// they are opposite (Zero and One).
func compatible(a, b cube.Value) bool {
	return a|b == cube.DC
}

// OneVariableCofactor cofactors every live cube of l with respect to
// position pos taking value v (One or Zero): if a cube's code at pos is
// don't-care, it is unchanged; if compatible with v, the position is raised
// to don't-care and every cube now strictly covered by it is marked
// deleted; otherwise the cube is left intact. The list is purged before
// returning.
func OneVariableCofactor(ctx *bcp.Context, l *bcl.List, pos uint, v cube.Value) {
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		cv := c.GetVar(pos)
		if cv == cube.DC {
			continue
		}
		if !compatible(cv, v) {
			continue
		}
		c.SetVar(pos, cube.DC)
		markCoveredBy(l, i)
	}
	l.Purge()
}

// markCoveredBy marks every other live cube of l that is a (strict or
// non-strict) subset of l.Cube(keep) as deleted.
func markCoveredBy(l *bcl.List, keep int) {
	c := l.Cube(keep)
	for j := 0; j < l.Len(); j++ {
		if j == keep || l.IsDeleted(j) {
			continue
		}
		if cube.IsSubset(c, l.Cube(j)) {
			l.Delete(j)
		}
	}
}

// CofactorByCube cofactors every live cube of l (except the one at index
// excludeIdx if it is >= 0) by c: at each variable that c specifies, a cube
// accepting c's value there is raised to don't-care, while a cube holding
// the opposite literal keeps it (lc := lc OR NOT c on c's specified
// variables). It finishes with single-cube containment (SCC).
func CofactorByCube(ctx *bcp.Context, l *bcl.List, c *cube.Cube, excludeIdx int) {
	mask := cube.VariableMask(c)
	for i := 0; i < l.Len(); i++ {
		if i == excludeIdx || l.IsDeleted(i) {
			continue
		}
		lc := l.Cube(i)
		for v := uint(0); v < lc.NumVars(); v++ {
			if mask.Test(v) {
				lc.SetVar(v, lc.GetVar(v)|(c.GetVar(v)^cube.DC))
			}
		}
	}
	SCC(l)
}
