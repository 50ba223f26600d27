// Package bcp implements the per-problem context: variable count and derived sizes, the global constant
// cube table, the LIFO temp-cube arena, parser punctuation, and the
// variable-name symbol table. Every algebraic package in this module takes
// a *Context (borrowed, not owned) alongside the lists/cubes it operates on.
package bcp

import (
	"time"

	"github.com/rudell/cubecalc/cube"
)

// VariablesPerBlock mirrors the original engine's 64-variables-per-128-bit-
// block constant. The Go port's cube representation (see package cube) does
// not tie a physical word boundary to this constant, but Context still
// derives BlockCount/BytesPerCube from it for logging and diagnostics parity
// with the source engine.
const VariablesPerBlock = 64

// MaxStackFrameDepth bounds the nesting of StartFrame/EndFrame pairs.
const MaxStackFrameDepth = 500

// Constant table slot indices.
const (
	IdxIllegal = 0
	IdxZero    = 1
	IdxOne     = 2
	IdxDC      = 3

	constSlots = 4
)

// Punct holds the configurable operator/punctuation characters used by the
// expression parser. Two contexts in the same process may use
// different punctuation.
type Punct struct {
	True, False, End byte
	And, Or, Not     byte
}

// DefaultPunct returns the calculator's built-in parser punctuation.
func DefaultPunct() Punct {
	return Punct{True: '1', False: '0', End: '.', And: '&', Or: '|', Not: '-'}
}

// Context is a single problem's immutable parameters plus its mutable
// scratch state (temp arena, symbol table). A Context is NOT safe for
// concurrent use: all operations on a Context and its derived
// lists must come from a single executor.
type Context struct {
	NumVars      uint
	BlockCount   uint
	BytesPerCube uint

	consts [constSlots]*cube.Cube

	arena      []*cube.Cube
	frameMarks []int

	Punct Punct

	varIndex map[string]uint
	varNames []string

	// MCCBudget bounds multi-cube containment's wall-clock time. Zero means unbounded.
	MCCBudget time.Duration
}

// New creates a context with a placeholder variable count. The final count
// is usually not known until a symbol table has been populated by a parser;
// call Resize once it is, which rebuilds the constant table (its cubes'
// sizes depend on NumVars).
func New(placeholderVars uint) *Context {
	p := &Context{
		Punct:    DefaultPunct(),
		varIndex: make(map[string]uint),
	}
	p.Resize(placeholderVars)
	return p
}

// Resize finalizes (or changes) the variable count and rebuilds the
// constant table accordingly. It does not touch the symbol table or the
// temp arena; callers that shrink NumVars below cubes already allocated are
// responsible for not reusing those cubes.
func (p *Context) Resize(n uint) {
	p.NumVars = n
	p.BlockCount = (n + VariablesPerBlock - 1) / VariablesPerBlock
	if n == 0 {
		p.BlockCount = 0
	}
	p.BytesPerCube = p.BlockCount * (VariablesPerBlock / 4)

	p.consts[IdxIllegal] = cube.NewValue(n, cube.Illegal)
	p.consts[IdxZero] = cube.NewValue(n, cube.Zero)
	p.consts[IdxOne] = cube.NewValue(n, cube.One)
	p.consts[IdxDC] = cube.NewValue(n, cube.DC)
}

// Illegal, ZeroCube, OneCube, and DC return the context's preallocated
// all-illegal/all-zero/all-one/all-don't-care cubes. Callers must treat
// them as read-only; clone before mutating.
func (p *Context) Illegal() *cube.Cube { return p.consts[IdxIllegal] }
func (p *Context) ZeroCube() *cube.Cube { return p.consts[IdxZero] }
func (p *Context) OneCube() *cube.Cube  { return p.consts[IdxOne] }
func (p *Context) DC() *cube.Cube       { return p.consts[IdxDC] }

// StartFrame records the current arena size and returns a mark to pass to
// EndFrame. Every call to GetTempCube must be enclosed in a matched
// StartFrame/EndFrame pair.
func (p *Context) StartFrame() int {
	if len(p.frameMarks) >= MaxStackFrameDepth {
		panic("bcp: temp-cube arena frame depth exceeded MaxStackFrameDepth")
	}
	mark := len(p.arena)
	p.frameMarks = append(p.frameMarks, mark)
	return mark
}

// EndFrame releases all cubes obtained via GetTempCube since the matching
// StartFrame, resetting the arena to that watermark. Calling it with a mark
// that is not the most recently pushed one (or without an active frame at
// all) is a programmer error and panics.
func (p *Context) EndFrame(mark int) {
	if len(p.frameMarks) == 0 {
		panic("bcp: EndFrame called with no active StartFrame")
	}
	top := p.frameMarks[len(p.frameMarks)-1]
	if top != mark {
		panic("bcp: EndFrame called out of LIFO order")
	}
	p.frameMarks = p.frameMarks[:len(p.frameMarks)-1]
	p.arena = p.arena[:mark]
}

// GetTempCube pushes and returns a new blank (don't-care) cube on the
// arena. It must be called within an active StartFrame/EndFrame pair.
func (p *Context) GetTempCube() *cube.Cube {
	if len(p.frameMarks) == 0 {
		panic("bcp: GetTempCube called with no active StartFrame")
	}
	c := cube.New(p.NumVars)
	p.arena = append(p.arena, c)
	return c
}
