// Package bcl implements the cube list: a dynamic
// array of cubes with a parallel tombstone-flag byte vector, plus the
// binate-split tabulator (§4.C4) used to steer the recursive algorithms in
// package algebra.
package bcl

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

const flagDeleted uint8 = 1 << 0

// extendBy is the amortized capacity growth increment.
const extendBy = 32

// List is an ordered, resizable sequence of cubes plus tombstone flags. The
// order of cubes is not semantically meaningful (a List denotes a set), but
// algorithms visit cubes in index order, and Purge is stable.
//
// Every algorithm that sweeps a List MUST skip cubes whose flag is nonzero
//; it is a bug to trust Len() without first
// calling Purge if the list may carry tombstones the caller did not expect.
type List struct {
	ctx   *bcp.Context
	cubes []*cube.Cube
	flags []uint8
}

// New returns an empty list bound to ctx.
func New(ctx *bcp.Context) *List {
	return &List{ctx: ctx}
}

// NewFrom returns a deep copy of src.
func NewFrom(src *List) *List {
	l := &List{ctx: src.ctx}
	l.cubes = make([]*cube.Cube, len(src.cubes))
	l.flags = make([]uint8, len(src.flags))
	for i, c := range src.cubes {
		l.cubes[i] = c.Clone()
	}
	copy(l.flags, src.flags)
	return l
}

// Context returns the list's owning (borrowed) context.
func (l *List) Context() *bcp.Context { return l.ctx }

// Len returns the number of slots, including tombstoned ones. Call Purge
// first if you need a count of live cubes only.
func (l *List) Len() int { return len(l.cubes) }

// Cube returns the cube at slot i (may be a tombstone; check IsDeleted).
func (l *List) Cube(i int) *cube.Cube { return l.cubes[i] }

// IsDeleted reports whether slot i is tombstoned.
func (l *List) IsDeleted(i int) bool { return l.flags[i]&flagDeleted != 0 }

// Delete marks slot i as tombstoned.
func (l *List) Delete(i int) { l.flags[i] |= flagDeleted }

// Undelete clears the tombstone flag on slot i (used by algorithms that
// provisionally mark, then reconsider, before purging).
func (l *List) Undelete(i int) { l.flags[i] &^= flagDeleted }

func (l *List) grow() {
	if len(l.cubes) < cap(l.cubes) {
		return
	}
	nc := make([]*cube.Cube, len(l.cubes), cap(l.cubes)+extendBy)
	copy(nc, l.cubes)
	l.cubes = nc
	nf := make([]uint8, len(l.flags), cap(l.flags)+extendBy)
	copy(nf, l.flags)
	l.flags = nf
}

// AddEmpty appends a fresh don't-care cube and returns its index.
func (l *List) AddEmpty() int {
	l.grow()
	l.cubes = append(l.cubes, cube.New(l.ctx.NumVars))
	l.flags = append(l.flags, 0)
	return len(l.cubes) - 1
}

// AddCube appends a clone of c and returns its index.
func (l *List) AddCube(c *cube.Cube) int {
	i := l.AddEmpty()
	l.cubes[i].CopyFrom(c)
	return i
}

// AddCubesFromList appends clones of every live cube of src (append-only
// union, no containment reduction).
func (l *List) AddCubesFromList(src *List) {
	for i := 0; i < src.Len(); i++ {
		if src.IsDeleted(i) {
			continue
		}
		l.AddCube(src.Cube(i))
	}
}

// AddFromString parses zero or more newline/whitespace-separated cube
// strings from s and appends each as a new cube.
func (l *List) AddFromString(s string) error {
	for _, line := range strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, tok := range strings.Fields(line) {
			i := l.AddEmpty()
			if _, err := cube.SetCubeFromString(l.cubes[i], tok); err != nil {
				l.cubes = l.cubes[:i]
				l.flags = l.flags[:i]
				return fmt.Errorf("bcl: %w", err)
			}
		}
	}
	return nil
}

// Purge stable-compacts the array, dropping all tombstoned slots and
// resetting the remaining flags to 0.
func (l *List) Purge() {
	w := 0
	for r := 0; r < len(l.cubes); r++ {
		if l.flags[r]&flagDeleted != 0 {
			continue
		}
		l.cubes[w] = l.cubes[r]
		l.flags[w] = 0
		w++
	}
	l.cubes = l.cubes[:w]
	l.flags = l.flags[:w]
}

// Clear empties the list.
func (l *List) Clear() {
	l.cubes = l.cubes[:0]
	l.flags = l.flags[:0]
}

// String prints every live cube, one per line.
func (l *List) String() string {
	var sb strings.Builder
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		sb.WriteString(cube.StringFromCube(l.Cube(i)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// VarCntList returns, for each slot, cube.VariableCount of that slot's
// cube, or -1 for a tombstoned slot. It is a fast pre-filter: b is a
// subset of a only if VarCntList[b] >= VarCntList[a].
func VarCntList(l *List) []int {
	out := make([]int, l.Len())
	for i := range out {
		if l.IsDeleted(i) {
			out[i] = -1
			continue
		}
		out[i] = int(cube.VariableCount(l.Cube(i)))
	}
	return out
}

// SetAllDCToZero finds every variable column where every live cube of l
// (and, if maskList is non-nil, every live cube of maskList too) is
// don't-care, and forces that column to Zero in every live cube of l.
func (l *List) SetAllDCToZero(maskList *List) {
	if l.ctx.NumVars == 0 {
		return
	}
	allDC := l.ctx.DC().Clone()
	mark := l.ctx.StartFrame()
	defer l.ctx.EndFrame(mark)

	any := false
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		mask := cube.VariableMask(l.Cube(i))
		restrictToDC(allDC, mask)
		any = true
	}
	if maskList != nil {
		for i := 0; i < maskList.Len(); i++ {
			if maskList.IsDeleted(i) {
				continue
			}
			mask := cube.VariableMask(maskList.Cube(i))
			restrictToDC(allDC, mask)
			any = true
		}
	}
	if !any {
		return
	}
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		for v := uint(0); v < l.ctx.NumVars; v++ {
			if allDC.GetVar(v) == cube.DC && c.GetVar(v) == cube.DC {
				c.SetVar(v, cube.Zero)
			}
		}
	}
}

// restrictToDC clears, in dc (a cube acting as a bitmask of "still DC in
// every cube seen so far"), any variable marked specified by mask.
func restrictToDC(dc *cube.Cube, mask *bitset.BitSet) {
	for v := uint(0); v < dc.NumVars(); v++ {
		if mask.Test(v) {
			dc.SetVar(v, cube.Zero)
		}
	}
}

// FlipVariables toggles, within every live cube, the used/unused polarity:
// Zero/One become DC, and DC becomes Zero.
func (l *List) FlipVariables() {
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		for v := uint(0); v < c.NumVars(); v++ {
			switch c.GetVar(v) {
			case cube.Zero, cube.One:
				c.SetVar(v, cube.DC)
			case cube.DC:
				c.SetVar(v, cube.Zero)
			}
		}
	}
}

// AndElements sets dst to the bitwise AND of every live cube in l, starting
// from all-don't-care. The resulting cube classifies each variable over the
// whole list: DC absent from every cube, Zero unate-negative, One
// unate-positive, Illegal binate.
func (l *List) AndElements(dst *cube.Cube) {
	dst.CopyFrom(l.ctx.DC())
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		cube.Intersection(dst, dst, l.Cube(i))
	}
}
