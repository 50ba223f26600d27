package algebra

import (
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// ExcludeGroup applies mutually-exclusive-group restriction to every live
// cube of l, for a group identified by the variable positions in
// group:
//
//   - two or more group positions are positively set (One): the cube can
//     never hold (at most one group member may be asserted), so it is
//     dropped;
//   - exactly one group position is positively set: every other group
//     position is forced to Zero, since the group members exclude each
//     other;
//   - no group position is positively set, but at least one is explicitly
//     Zero: the cube is replicated, one copy per remaining don't-care
//     group position, with that position set One and every other group
//     position (including the ones already Zero) set Zero — each
//     replica is a fully resolved, self-consistent one-hot choice, and the
//     source cube is dropped;
//   - all group positions are don't-care: the same one-hot replication,
//     over the whole group since every position is still a candidate.
func ExcludeGroup(ctx *bcp.Context, l *bcl.List, group []uint) {
	n := l.Len()
	for i := 0; i < n; i++ {
		if l.IsDeleted(i) {
			continue
		}
		ExcludeGroupCube(ctx, l, i, group)
	}
	l.Purge()
}

// ExcludeGroupCube applies the single-cube form of group exclusion to
// l.Cube(idx) in place, deleting it or replicating additional one-hot
// copies into l as needed. Callers sweeping a whole list should use
// ExcludeGroup, which also purges afterward.
func ExcludeGroupCube(ctx *bcp.Context, l *bcl.List, idx int, group []uint) {
	c := l.Cube(idx)

	positiveCount := 0
	anyZero := false
	allDC := true
	for _, pos := range group {
		switch c.GetVar(pos) {
		case cube.One:
			positiveCount++
			allDC = false
		case cube.Zero:
			anyZero = true
			allDC = false
		}
	}

	switch {
	case positiveCount >= 2:
		l.Delete(idx)
	case positiveCount == 1:
		for _, pos := range group {
			if c.GetVar(pos) != cube.One {
				c.SetVar(pos, cube.Zero)
			}
		}
	case allDC:
		for _, active := range group {
			clone := c.Clone()
			for _, pos := range group {
				if pos == active {
					clone.SetVar(pos, cube.One)
				} else {
					clone.SetVar(pos, cube.Zero)
				}
			}
			l.AddCube(clone)
		}
		l.Delete(idx)
	case anyZero:
		for _, active := range group {
			if c.GetVar(active) != cube.DC {
				continue
			}
			clone := c.Clone()
			for _, pos := range group {
				if pos == active {
					clone.SetVar(pos, cube.One)
				} else {
					clone.SetVar(pos, cube.Zero)
				}
			}
			l.AddCube(clone)
		}
		l.Delete(idx)
	}
}
