// Package cube implements the positional-cube primitives: a single Boolean
// cube over V variables, encoded two bits per variable, and the bitwise
// operations defined on that encoding.
//
// A variable value is one of four 2-bit codes: 00 illegal, 01 zero, 10 one,
// 11 don't-care. The bitwise meaning is "set of accepted binary values"
// (illegal = empty set, don't-care = {0,1}); variable-level intersection and
// union therefore reduce to bit-AND and bit-OR. This package stores the two
// bits of every variable in separate bit-planes ("hi" holds bit 1 of the
// code, "lo" holds bit 0), each a *bitset.BitSet of length V. Two-bit-field
// AND/OR is then exactly plane-wise BitSet Intersection/Union — the same
// vectorized bit-vector idiom a dataflow analysis uses for gen/kill sets
// over basic blocks.
package cube

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Value is one of the four 2-bit variable codes.
type Value uint8

const (
	Illegal Value = 0 // 00, empty set of accepted values
	Zero    Value = 1 // 01
	One     Value = 2 // 10
	DC      Value = 3 // 11, don't-care
)

func (v Value) Char() byte {
	switch v {
	case Zero:
		return '0'
	case One:
		return '1'
	case DC:
		return '-'
	default:
		return 'x'
	}
}

func (v Value) String() string {
	return string(v.Char())
}

// Cube is a positional vector of V variables, each a 2-bit code.
type Cube struct {
	hi *bitset.BitSet
	lo *bitset.BitSet
	n  uint
}

func full(n uint) *bitset.BitSet {
	return bitset.New(n).Complement()
}

// New returns a cube of n variables, all set to don't-care. Trailing
// positions beyond any "used" subset are always don't-care, satisfying the
// tail-padding invariant trivially: this
// representation carries no block tail at all, every one of the n bits is
// meaningful.
func New(n uint) *Cube {
	return &Cube{hi: full(n), lo: full(n), n: n}
}

// NewValue returns a cube of n variables, all set to v.
func NewValue(n uint, v Value) *Cube {
	c := &Cube{hi: bitset.New(n), lo: bitset.New(n), n: n}
	if v&2 != 0 {
		c.hi = full(n)
	}
	if v&1 != 0 {
		c.lo = full(n)
	}
	return c
}

// NumVars returns the number of variables (V) in the cube.
func (c *Cube) NumVars() uint { return c.n }

// Clear resets every variable to don't-care.
func (c *Cube) Clear() {
	c.hi = full(c.n)
	c.lo = full(c.n)
}

// CopyFrom makes c an independent copy of src. Both must have the same V.
func (c *Cube) CopyFrom(src *Cube) {
	mustSameV(c, src)
	c.hi = src.hi.Clone()
	c.lo = src.lo.Clone()
}

// Clone returns an independent copy of c.
func (c *Cube) Clone() *Cube {
	return &Cube{hi: c.hi.Clone(), lo: c.lo.Clone(), n: c.n}
}

func mustSameV(a, b *Cube) {
	if a.n != b.n {
		panic(fmt.Sprintf("cube: variable count mismatch: %d vs %d", a.n, b.n))
	}
}

// GetVar returns the code at position pos (0-based).
func (c *Cube) GetVar(pos uint) Value {
	var v Value
	if c.hi.Test(pos) {
		v |= 2
	}
	if c.lo.Test(pos) {
		v |= 1
	}
	return v
}

// SetVar sets the code at position pos.
func (c *Cube) SetVar(pos uint, v Value) {
	c.hi.SetTo(pos, v&2 != 0)
	c.lo.SetTo(pos, v&1 != 0)
}

// Compare performs a lexicographic comparison over variable positions,
// returning <0, 0, >0 the way bytes.Compare does. It is used as a cache key
// / dedup comparator, not for any algebraic meaning.
func (c *Cube) Compare(o *Cube) int {
	mustSameV(c, o)
	for i := uint(0); i < c.n; i++ {
		a, b := c.GetVar(i), o.GetVar(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Intersection sets dst = a AND b (bitwise, per variable) and reports
// whether the result is legal (no variable collapsed to Illegal).
func Intersection(dst, a, b *Cube) bool {
	mustSameV(a, b)
	mustSameV(a, dst)
	dst.hi = a.hi.Intersection(b.hi)
	dst.lo = a.lo.Intersection(b.lo)
	return legal(dst)
}

// IsIntersection reports whether a AND b would be legal, without writing a
// result cube.
func IsIntersection(a, b *Cube) bool {
	mustSameV(a, b)
	hi := a.hi.Intersection(b.hi)
	lo := a.lo.Intersection(b.lo)
	return hi.Union(lo).Count() == a.n
}

func legal(c *Cube) bool {
	return c.hi.Union(c.lo).Count() == c.n
}

// IsIllegal reports whether any variable of c is Illegal (00).
func IsIllegal(c *Cube) bool {
	return !legal(c)
}

// IsTautology reports whether every variable of c is don't-care (11).
func IsTautology(c *Cube) bool {
	return c.hi.Intersection(c.lo).Count() == c.n
}

// VariableMask returns a fresh bitset with bit i set iff variable i of c is
// specified (Zero or One, i.e. hi XOR lo).
func VariableMask(c *Cube) *bitset.BitSet {
	return c.hi.SymmetricDifference(c.lo)
}

// VariableCount returns the number of specified (non-DC, non-illegal)
// variables in c.
func VariableCount(c *Cube) uint {
	return VariableMask(c).Count()
}

// Invert returns the single-cube complement of c in place: Zero<->One,
// don't-care stays don't-care, illegal becomes don't-care.
func Invert(c *Cube) {
	illegal := c.hi.Union(c.lo).Complement()
	newHi := c.lo.Union(illegal)
	newLo := c.hi.Union(illegal)
	c.hi, c.lo = newHi, newLo
}

// IsSubset reports whether b is a subset of a, i.e. a AND b == b bitwise.
func IsSubset(a, b *Cube) bool {
	mustSameV(a, b)
	return b.hi.Difference(a.hi).None() && b.lo.Difference(a.lo).None()
}

// Delta returns the number of variables where a and b conflict (one
// asserts Zero where the other asserts One, or vice versa).
func Delta(a, b *Cube) uint {
	mustSameV(a, b)
	aZero := a.lo.Difference(a.hi) // specified-zero positions of a
	aOne := a.hi.Difference(a.lo)  // specified-one positions of a
	bZero := b.lo.Difference(b.hi)
	bOne := b.hi.Difference(b.lo)
	conflict := aZero.Intersection(bOne).Union(aOne.Intersection(bZero))
	return conflict.Count()
}

// OrBitCount sets dst = a OR b (bitwise, per variable). It is a plain
// vector utility; the tautology partition detector widens its
// variable-support mask with bitset Union instead.
func OrBitCount(dst, a, b *Cube) {
	mustSameV(a, b)
	mustSameV(a, dst)
	dst.hi = a.hi.Union(b.hi)
	dst.lo = a.lo.Union(b.lo)
}

// AndIsZero reports whether a AND b is empty (bitwise, per variable). The
// partition detector tests mask disjointness with MaskDisjoint instead.
func AndIsZero(a, b *Cube) bool {
	mustSameV(a, b)
	return a.hi.Intersection(b.hi).None() && a.lo.Intersection(b.lo).None()
}

// MaskDisjoint reports whether two variable masks (as produced by
// VariableMask) share no set bit.
func MaskDisjoint(a, b *bitset.BitSet) bool {
	return a.Intersection(b).None()
}

// StringFromCube renders c as a V-character string over {'0','1','-','x'}.
func StringFromCube(c *Cube) string {
	var sb strings.Builder
	sb.Grow(int(c.n))
	for i := uint(0); i < c.n; i++ {
		sb.WriteByte(c.GetVar(i).Char())
	}
	return sb.String()
}

// SetCubeFromString parses one cube from s starting at offset 0: one
// character per position from {'0','1','-','x'} (any other non-whitespace,
// non-terminator rune is a parse error). Whitespace inside the line is
// skipped. Parsing stops at '\0', '\r', '\n', or end of string, or once c's
// V positions have all been consumed. It returns the number of bytes of s
// consumed.
func SetCubeFromString(c *Cube, s string) (int, error) {
	pos := uint(0)
	i := 0
	for i < len(s) && pos < c.n {
		ch := s[i]
		switch ch {
		case 0, '\r', '\n':
			return i, fmt.Errorf("cube: unexpected end of cube at variable %d (need %d)", pos, c.n)
		case ' ', '\t':
			i++
			continue
		case '0':
			c.SetVar(pos, Zero)
		case '1':
			c.SetVar(pos, One)
		case '-':
			c.SetVar(pos, DC)
		case 'x', 'X':
			c.SetVar(pos, Illegal)
		default:
			return i, fmt.Errorf("cube: unknown char %q in cube string at byte %d", ch, i)
		}
		pos++
		i++
	}
	if pos != c.n {
		return i, fmt.Errorf("cube: short cube string: got %d of %d variables", pos, c.n)
	}
	return i, nil
}
