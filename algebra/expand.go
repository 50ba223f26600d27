package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// ExpandAgainstOffset raises, one variable at a time, as many specified
// positions of every live cube of l to don't-care as possible while keeping
// that cube disjoint from every live cube of offset. Each
// successful raise is kept; a raise that would create an intersection with
// offset is rolled back before trying the next position. Cubes are widened
// independently of one another, so the order they are visited in affects
// neither the final coverage nor any cube's final size; within a cube,
// positions are tried in ascending order.
func ExpandAgainstOffset(ctx *bcp.Context, l *bcl.List, offset *bcl.List) {
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		expandOneAgainst(l.Cube(i), offset)
	}
	SCC(l)
}

func expandOneAgainst(c *cube.Cube, offset *bcl.List) {
	n := c.NumVars()
	for v := uint(0); v < n; v++ {
		old := c.GetVar(v)
		if old == cube.DC {
			continue
		}
		c.SetVar(v, cube.DC)
		if intersectsAny(c, offset) {
			c.SetVar(v, old)
		}
	}
}

func intersectsAny(c *cube.Cube, offset *bcl.List) bool {
	for j := 0; j < offset.Len(); j++ {
		if offset.IsDeleted(j) {
			continue
		}
		if cube.IsIntersection(c, offset.Cube(j)) {
			return true
		}
	}
	return false
}

// ExpandAgainstComplement expands l against its own complement, computed
// via the default Complement path: it is the expand entry point to use
// when no off-set is already at hand.
func ExpandAgainstComplement(ctx *bcp.Context, l *bcl.List) {
	off := Complement(ctx, l)
	ExpandAgainstOffset(ctx, l, off)
}

// ExpandSimple is the pairwise, offset-free expand: for every pair of live
// cubes (c, d) whose Delta is exactly 1 (they conflict at exactly one
// variable v), it speculatively sets c at v to d's value there and checks
// whether the result is a subset of d, i.e. whether the points that raising
// c at v would add are already covered by d; if so v is raised to
// don't-care (a true expand), and any other live cube now covered
// by the widened c is deleted. Failing that, the same attempt is made
// symmetrically with c and d swapped. Unlike ExpandAgainstOffset, this
// never needs an explicit off-set list — it only ever expands a cube into
// space already known to be free because a neighboring cube used to sit
// there.
func ExpandSimple(ctx *bcp.Context, l *bcl.List) {
	cnt := l.Len()
	for i := 0; i < cnt; i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		for j := i + 1; j < cnt; j++ {
			if l.IsDeleted(j) {
				continue
			}
			d := l.Cube(j)
			if cube.Delta(c, d) != 1 {
				continue
			}
			v, ok := conflictVar(c, d)
			if !ok {
				continue
			}
			cval := c.GetVar(v)
			dval := d.GetVar(v)

			c.SetVar(v, dval)
			if cube.IsSubset(d, c) {
				c.SetVar(v, cube.DC)
				deleteSubsumed(l, c, i, j)
				continue
			}
			c.SetVar(v, cval)

			d.SetVar(v, cval)
			if cube.IsSubset(c, d) {
				d.SetVar(v, cube.DC)
				deleteSubsumed(l, d, i, j)
				continue
			}
			d.SetVar(v, dval)
		}
	}
	l.Purge()
}

// conflictVar returns the first variable position where c and d assert
// opposite literals (the single disagreeing position when Delta(c,d)==1).
func conflictVar(c, d *cube.Cube) (uint, bool) {
	n := c.NumVars()
	for v := uint(0); v < n; v++ {
		if c.GetVar(v)&d.GetVar(v) == 0 {
			return v, true
		}
	}
	return 0, false
}

// deleteSubsumed marks every live cube of l, other than the two cubes at
// index i and j, that has become a subset of the just-widened cube as
// deleted.
func deleteSubsumed(l *bcl.List, widened *cube.Cube, i, j int) {
	for k := 0; k < l.Len(); k++ {
		if k == i || k == j || l.IsDeleted(k) {
			continue
		}
		if cube.IsSubset(widened, l.Cube(k)) {
			l.Delete(k)
		}
	}
}

// ExpandCofactor is an alternate expand path (benchmark only, not required
// for correctness): for each live cube c of l it cofactors a copy of the
// off-set by c (CofactorByCube) and tests the candidate raises of c against
// that copy instead of the off-set itself. A widened c is disjoint from a
// cofactored off-set cube exactly when it is disjoint from the original
// one, so the resulting coverage is the same as ExpandAgainstOffset's.
func ExpandCofactor(ctx *bcp.Context, l *bcl.List, offset *bcl.List) {
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		local := bcl.NewFrom(offset)
		CofactorByCube(ctx, local, c, -1)
		expandOneAgainst(c, local)
	}
	SCC(l)
}

// Minimize performs heuristic two-level minimization: SCC
// to drop cubes already subsumed, expand every surviving cube against the
// function's own complement, SCC again to drop cubes swallowed during
// expansion, then MCC for a fully irredundant cover. l is minimized in
// place and also returned for chaining.
func Minimize(ctx *bcp.Context, l *bcl.List) *bcl.List {
	SCC(l)
	off := Complement(ctx, l)
	ExpandAgainstOffset(ctx, l, off)
	SCC(l)
	MCC(ctx, l)
	return l
}
