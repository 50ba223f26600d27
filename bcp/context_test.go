package bcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResizeRebuildsConstants(t *testing.T) {
	p := New(4)
	require.EqualValues(t, 1, p.BlockCount)
	require.True(t, p.Illegal().NumVars() == 4)
}

func TestSymbolTable(t *testing.T) {
	p := New(0)
	a := p.DefineVar("a")
	b := p.DefineVar("b")
	require.NotEqual(t, a, b)
	again := p.DefineVar("a")
	require.Equal(t, a, again)
	require.Equal(t, "b", p.VarName(b))
	idx, ok := p.VarIndex("a")
	require.True(t, ok)
	require.Equal(t, a, idx)
}

func TestArenaFrameDiscipline(t *testing.T) {
	p := New(4)
	mark := p.StartFrame()
	_ = p.GetTempCube()
	_ = p.GetTempCube()
	p.EndFrame(mark)

	require.Panics(t, func() {
		p.EndFrame(mark)
	}, "EndFrame without a matching StartFrame must panic")
}

func TestGetTempCubeWithoutFramePanics(t *testing.T) {
	p := New(4)
	require.Panics(t, func() {
		p.GetTempCube()
	})
}
