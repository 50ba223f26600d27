package algebra

import (
	"time"

	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// SCC performs single-cube containment: for every pair (i, j) of live
// cubes with i != j, cube i subsumes cube j when VarCnt[j] >= VarCnt[i]
// and cube j is a subset of cube i, in which case j is marked deleted.
// The list is purged before returning.
func SCC(l *bcl.List) {
	n := l.Len()
	varCnt := bcl.VarCntList(l)
	for i := 0; i < n; i++ {
		if l.IsDeleted(i) {
			continue
		}
		ci := l.Cube(i)
		for j := 0; j < n; j++ {
			if i == j || l.IsDeleted(j) {
				continue
			}
			if varCnt[j] < varCnt[i] {
				continue
			}
			if cube.IsSubset(ci, l.Cube(j)) {
				l.Delete(j)
			}
		}
	}
	l.Purge()
}

// MCC performs multi-cube containment (irredundant): a cube is redundant in
// l iff cofactoring l by that cube (excluding it) is a tautology. Cubes are
// visited from largest variable-count to smallest (cheaper to dismiss
// first), using IsTautology from this package. It respects ctx.MCCBudget
// (zero means unbounded); reachedBudget reports whether the budget was hit
// before every cube had been considered, in which case whatever was already
// marked is still purged. The list is purged before returning either way.
func MCC(ctx *bcp.Context, l *bcl.List) (reachedBudget bool) {
	n := l.Len()
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !l.IsDeleted(i) {
			order = append(order, i)
		}
	}
	varCnt := bcl.VarCntList(l)
	// Insertion sort descending by variable count; n is expected to be
	// modest (a cube list within one problem), so O(n^2) here is fine and
	// keeps this free of an extra dependency on sort stability guarantees.
	for a := 1; a < len(order); a++ {
		v := order[a]
		b := a - 1
		for b >= 0 && varCnt[order[b]] < varCnt[v] {
			order[b+1] = order[b]
			b--
		}
		order[b+1] = v
	}

	deadline := time.Time{}
	if ctx.MCCBudget > 0 {
		deadline = time.Now().Add(ctx.MCCBudget)
	}

	for _, i := range order {
		if l.IsDeleted(i) {
			continue
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			reachedBudget = true
			break
		}
		scratch := bcl.NewFrom(l)
		scratch.Delete(i)
		CofactorByCube(ctx, scratch, l.Cube(i), i)
		if IsTautology(ctx, scratch) {
			l.Delete(i)
		}
	}
	l.Purge()
	return reachedBudget
}
