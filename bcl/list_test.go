package bcl

import (
	"testing"

	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
	"github.com/stretchr/testify/require"
)

func TestAddAndPurge(t *testing.T) {
	ctx := bcp.New(3)
	l := New(ctx)
	require.NoError(t, l.AddFromString("1-- \n -0- \n --1"))
	require.Equal(t, 3, l.Len())

	l.Delete(1)
	l.Purge()
	require.Equal(t, 2, l.Len())
	require.Equal(t, "1--\n--1\n", l.String())
}

func TestTabulateUnateBinate(t *testing.T) {
	ctx := bcp.New(2)
	l := New(ctx)
	require.NoError(t, l.AddFromString("10\n1-"))
	tab := Tabulate(l)
	require.True(t, tab.IsUnate(), "variable 0 always one, variable 1 only zero/dc")
	require.EqualValues(t, 2, tab.Ones[0])
	require.EqualValues(t, 1, tab.Zeros[1])

	l2 := New(ctx)
	require.NoError(t, l2.AddFromString("10\n01"))
	tab2 := Tabulate(l2)
	require.False(t, tab2.IsUnate())
	require.Equal(t, 0, tab2.MaxBinateSplitVariable())
}

func TestFlipVariables(t *testing.T) {
	ctx := bcp.New(2)
	l := New(ctx)
	require.NoError(t, l.AddFromString("10"))
	l.FlipVariables()
	// both positions were specified (One, Zero), so both become DC.
	require.Equal(t, "--\n", l.String())
}

func TestAndElements(t *testing.T) {
	ctx := bcp.New(2)
	l := New(ctx)
	require.NoError(t, l.AddFromString("10\n1-"))
	dst := ctx.DC().Clone()
	l.AndElements(dst)
	require.Equal(t, "10", cube.StringFromCube(dst))
}
