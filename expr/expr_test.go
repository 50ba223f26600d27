package expr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rudell/cubecalc/algebra"
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
)

func newCtx3() *bcp.Context {
	ctx := bcp.New(0)
	ctx.DefineVar("a")
	ctx.DefineVar("b")
	ctx.DefineVar("c")
	ctx.Resize(3)
	return ctx
}

func mustList(t *testing.T, ctx *bcp.Context, s string) *bcl.List {
	t.Helper()
	l := bcl.New(ctx)
	require.NoError(t, l.AddFromString(s))
	return l
}

func countLive(l *bcl.List) int {
	n := 0
	for i := 0; i < l.Len(); i++ {
		if !l.IsDeleted(i) {
			n++
		}
	}
	return n
}

func TestParseAndLowerExample(t *testing.T) {
	ctx := newCtx3()
	n, err := Parse(ctx, "a & b | c & b")
	require.NoError(t, err)

	l, warnings := Lower(ctx, n)
	require.Empty(t, warnings)

	want := mustList(t, ctx, "11-\n-11\n")
	require.True(t, algebra.IsEqual(ctx, l, want))
}

func TestParseParenthesesAndNot(t *testing.T) {
	ctx := newCtx3()
	n, err := Parse(ctx, "-(a & b)")
	require.NoError(t, err)
	pushed := PushNegation(n)
	require.Equal(t, KindOr, pushed.Kind)
}

func TestLowerUnknownIdentifierYieldsTautologyWithSuggestion(t *testing.T) {
	ctx := newCtx3()
	// Parse registers every identifier it reads, so "az" is parsed in a
	// separate context to keep it out of ctx's symbol table.
	n, err := Parse(bcp.New(0), "az")
	require.NoError(t, err)

	l, warnings := Lower(ctx, n)
	require.Len(t, warnings, 1)
	require.Equal(t, "az", warnings[0].Identifier)
	require.NotEmpty(t, warnings[0].Suggestion)
	require.True(t, algebra.IsTautology(ctx, l))
}

func TestPrintRoundTrip(t *testing.T) {
	ctx := newCtx3()
	n, err := Parse(ctx, "a & b | c & b")
	require.NoError(t, err)
	l, _ := Lower(ctx, n)

	printed := Print(ctx, l)
	n2, err := Parse(ctx, printed)
	require.NoError(t, err)
	l2, warnings := Lower(ctx, n2)
	require.Empty(t, warnings)

	require.True(t, algebra.IsEqual(ctx, l, l2))
}

func TestCustomPunctuation(t *testing.T) {
	ctx := newCtx3()
	ctx.Punct.And = '*'
	ctx.Punct.Or = '+'
	ctx.Punct.Not = '!'

	n, err := Parse(ctx, "a*b+!c")
	require.NoError(t, err)
	l, warnings := Lower(ctx, n)
	require.Empty(t, warnings)
	require.Equal(t, 2, countLive(l))
}
