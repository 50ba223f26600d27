package algebra

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

func sortedLiterals(l *bcl.List) []string {
	out := make([]string, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		out = append(out, cube.StringFromCube(l.Cube(i)))
	}
	sort.Strings(out)
	return out
}

func mustList(t *testing.T, ctx *bcp.Context, s string) *bcl.List {
	t.Helper()
	l := bcl.New(ctx)
	require.NoError(t, l.AddFromString(s))
	return l
}

func TestIsTautologyComplementaryPair(t *testing.T) {
	ctx := bcp.New(2)
	l := mustList(t, ctx, "1-\n0-\n")
	require.True(t, IsTautology(ctx, l))
}

func TestIsTautologyNotCovering(t *testing.T) {
	ctx := bcp.New(2)
	l := mustList(t, ctx, "10\n01\n")
	require.False(t, IsTautology(ctx, l))
}

func TestCubeSharpExample(t *testing.T) {
	ctx := bcp.New(2)
	a := ctx.DC().Clone()
	a.SetVar(0, cube.One)
	b := ctx.DC().Clone()
	b.SetVar(1, cube.Zero)

	out := bcl.New(ctx)
	CubeSharp(ctx, a, b, out)
	out.Purge()
	require.Equal(t, 1, out.Len())
	require.Equal(t, "11", cube.StringFromCube(out.Cube(0)))
}

func TestSubtractIsIntersectionWithComplement(t *testing.T) {
	ctx := bcp.New(3)
	a := mustList(t, ctx, "1--\n-0-\n")
	b := mustList(t, ctx, "11-\n")

	viaSubtract := bcl.NewFrom(a)
	Subtract(ctx, viaSubtract, b, ShouldUseMCC(b))

	notB := Complement(ctx, b)
	viaIntersect := bcl.New(ctx)
	Intersect(ctx, viaIntersect, a, notB)

	require.True(t, IsEqual(ctx, viaSubtract, viaIntersect))
}

func TestComplementInvolution(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1--\n-01\n0-1\n")

	notL := Complement(ctx, l)
	notNotL := Complement(ctx, notL)

	require.True(t, IsEqual(ctx, l, notNotL))
}

func TestComplementAlternatePathsAgree(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1--\n-01\n0-1\n")

	def := Complement(ctx, l)
	viaCofactor := ComplementCofactor(ctx, bcl.NewFrom(l))
	viaSingletons := ComplementSingletons(ctx, bcl.NewFrom(l))

	require.True(t, IsEqual(ctx, def, viaCofactor))
	require.True(t, IsEqual(ctx, def, viaSingletons))
}

func TestComplementSingleCubeMatchesSingletonPathExactly(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1--\n")

	def := Complement(ctx, l)
	viaSingletons := ComplementSingletons(ctx, bcl.NewFrom(l))

	want := []string{"0--"}
	if diff := cmp.Diff(want, sortedLiterals(def)); diff != "" {
		t.Errorf("default complement path mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(sortedLiterals(def), sortedLiterals(viaSingletons)); diff != "" {
		t.Errorf("singleton path diverges from default path (-default +singletons):\n%s", diff)
	}
}

func TestExpandSimpleMergesSingleVariableConflictAndSweepsCoveredCube(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1-0\n0-0\n010\n")
	ExpandSimple(ctx, l)

	require.Equal(t, 2, l.Len(), "the covered third cube should have been swept away")
	require.Equal(t, "--0", cube.StringFromCube(l.Cube(0)), "the conflicting variable should have been raised to don't-care")
	require.Equal(t, "0-0", cube.StringFromCube(l.Cube(1)), "the other half of the conflicting pair is left as-is")
}

func TestExpandSimpleSkipsPairsWithMoreThanOneConflict(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "100\n011\n")
	ExpandSimple(ctx, l)

	require.Equal(t, 2, l.Len())
	require.Equal(t, "100", cube.StringFromCube(l.Cube(0)))
	require.Equal(t, "011", cube.StringFromCube(l.Cube(1)))
}

func TestUnionWithComplementIsUniversal(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1--\n-01\n")
	notL := Complement(ctx, l)

	u := bcl.New(ctx)
	Union(ctx, u, l, notL, ShouldUseMCC(notL))
	require.True(t, IsTautology(ctx, u))
}

func TestIntersectWithComplementIsEmpty(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1--\n-01\n")
	notL := Complement(ctx, l)

	out := bcl.New(ctx)
	Intersect(ctx, out, l, notL)
	out.Purge()
	require.Equal(t, 0, out.Len())
}

func TestSubsetChecksAgree(t *testing.T) {
	ctx := bcp.New(3)
	a := mustList(t, ctx, "111\n")
	b := mustList(t, ctx, "1--\n")

	require.True(t, IsSubsetBCL(ctx, a, b))
	require.True(t, IsSubsetViaSubtract(ctx, a, b))
	require.False(t, IsSubsetBCL(ctx, b, a))
	require.False(t, IsSubsetViaSubtract(ctx, b, a))
}

func TestMinimizePreservesFunction(t *testing.T) {
	ctx := bcp.New(6)
	original := mustList(t, ctx, "1-1-11\n110011\n1-0-10\n1001-0\n")
	before := bcl.NewFrom(original)

	Minimize(ctx, original)

	require.True(t, IsEqual(ctx, before, original))
	require.LessOrEqual(t, original.Len(), before.Len())
}

func TestExcludeGroupOneHotExpansion(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "---\n")
	ExcludeGroup(ctx, l, []uint{0, 1, 2})

	require.Equal(t, 3, l.Len())
	seen := map[string]bool{}
	for i := 0; i < l.Len(); i++ {
		seen[cube.StringFromCube(l.Cube(i))] = true
	}
	require.True(t, seen["100"])
	require.True(t, seen["010"])
	require.True(t, seen["001"])
}

func TestExcludeGroupDropsMultiplePositive(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "11-\n")
	ExcludeGroupCube(ctx, l, 0, []uint{0, 1, 2})
	require.True(t, l.IsDeleted(0))
}

func TestExcludeGroupForcesRestToZero(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "1--\n")
	ExcludeGroupCube(ctx, l, 0, []uint{0, 1, 2})
	require.Equal(t, "100", cube.StringFromCube(l.Cube(0)))
}

func TestExcludeGroupReplicatesRemainingDontCaresWhenOneIsAlreadyZero(t *testing.T) {
	ctx := bcp.New(3)
	l := mustList(t, ctx, "0--\n")
	ExcludeGroup(ctx, l, []uint{0, 1, 2})

	require.Equal(t, 2, l.Len(), "each remaining don't-care group member becomes its own one-hot cube")
	seen := map[string]bool{}
	for i := 0; i < l.Len(); i++ {
		seen[cube.StringFromCube(l.Cube(i))] = true
	}
	require.True(t, seen["010"])
	require.True(t, seen["001"])
	require.False(t, seen["0--"], "the source cube must not survive unresolved")
}
