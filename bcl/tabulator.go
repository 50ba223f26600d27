package bcl

import (
	"github.com/rudell/cubecalc/cube"
)

// Tabulation holds per-variable saturating one/zero appearance counts over
// a list. Only 16-bit counters are implemented; an 8-bit variant saturates
// too early for real workloads.
type Tabulation struct {
	Ones, Zeros []uint16
}

const maxUint16 = ^uint16(0)

func satInc(c *uint16) {
	if *c != maxUint16 {
		*c++
	}
}

// Tabulate scans every live cube of l, counting per-variable One and Zero
// appearances. The counts are conceptually the same data the source engine
// packs into the context's 16 scratch counter cubes; this Go port keeps
// them as plain slices (see DESIGN.md) since Go has no need to shoehorn a
// count into a 2-bit cube lane.
func Tabulate(l *List) *Tabulation {
	n := l.Context().NumVars
	t := &Tabulation{Ones: make([]uint16, n), Zeros: make([]uint16, n)}
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		c := l.Cube(i)
		for v := uint(0); v < n; v++ {
			switch c.GetVar(v) {
			case cube.One:
				satInc(&t.Ones[v])
			case cube.Zero:
				satInc(&t.Zeros[v])
			}
		}
	}
	return t
}

// MaxBinateSplitVariable returns the variable index maximizing Ones+Zeros
// among variables where both counts are positive (i.e. binate variables),
// breaking ties by lowest index, or -1 if the list is unate (no binate
// variable exists).
func (t *Tabulation) MaxBinateSplitVariable() int {
	best := -1
	var bestScore uint32
	for v := range t.Ones {
		if t.Ones[v] == 0 || t.Zeros[v] == 0 {
			continue
		}
		score := uint32(t.Ones[v]) + uint32(t.Zeros[v])
		if best == -1 || score > bestScore {
			best = v
			bestScore = score
		}
	}
	return best
}

// IsUnate reports whether no variable has both Ones and Zeros positive.
func (t *Tabulation) IsUnate() bool {
	return t.MaxBinateSplitVariable() < 0
}
