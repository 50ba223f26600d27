package cube

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringRoundTrip(t *testing.T) {
	c := New(4)
	n, err := SetCubeFromString(c, "10-x")
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "10-x", StringFromCube(c))
	require.Equal(t, One, c.GetVar(0))
	require.Equal(t, Zero, c.GetVar(1))
	require.Equal(t, DC, c.GetVar(2))
	require.Equal(t, Illegal, c.GetVar(3))
}

func TestIllegalAndTautology(t *testing.T) {
	dc := New(3)
	require.True(t, IsTautology(dc))
	require.False(t, IsIllegal(dc))

	ill := NewValue(3, Illegal)
	require.True(t, IsIllegal(ill))
	require.False(t, IsTautology(ill))
}

func TestIntersectionLegality(t *testing.T) {
	a := New(2)
	SetCubeFromString(a, "0-")
	b := New(2)
	SetCubeFromString(b, "1-")

	dst := New(2)
	ok := Intersection(dst, a, b)
	require.False(t, ok, "0 and 1 on variable 0 must be illegal")
	require.False(t, IsIntersection(a, b))

	c := New(2)
	SetCubeFromString(c, "0-")
	d := New(2)
	SetCubeFromString(d, "-1")
	ok = Intersection(dst, c, d)
	require.True(t, ok)
	require.Equal(t, "01", StringFromCube(dst))
}

func TestInvert(t *testing.T) {
	c := New(4)
	SetCubeFromString(c, "01-x")
	Invert(c)
	require.Equal(t, "10--", StringFromCube(c))
}

func TestIsSubset(t *testing.T) {
	a := New(3)
	SetCubeFromString(a, "1--")
	b := New(3)
	SetCubeFromString(b, "101")
	require.True(t, IsSubset(a, b), "101 subset of 1--")
	require.False(t, IsSubset(b, a))
}

func TestVariableCountAndDelta(t *testing.T) {
	a := New(4)
	SetCubeFromString(a, "10--")
	require.EqualValues(t, 2, VariableCount(a))

	b := New(4)
	SetCubeFromString(b, "110-")
	require.EqualValues(t, 1, Delta(a, b), "variable 1 conflicts (0 vs 1)")
}

func TestCompare(t *testing.T) {
	a := New(2)
	SetCubeFromString(a, "01")
	b := New(2)
	SetCubeFromString(b, "10")
	require.Negative(t, a.Compare(b))
	require.Zero(t, a.Compare(a.Clone()))
}
