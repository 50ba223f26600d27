package expr

import (
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/rudell/cubecalc/algebra"
	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// LowerWarning reports an identifier referenced by an expression but not
// present in the context's symbol table. Lowering such a reference still
// succeeds — it yields the tautology list — so that the caller (typically
// combining several lowered identifiers with AND) is not forced to
// special-case a typo; Suggestion carries the closest known variable name,
// if any, for diagnostics.
type LowerWarning struct {
	Identifier string
	Suggestion string
}

// Lower converts an expression tree to a cube list. It pushes negation to
// the leaves first (De Morgan), so the caller need not call PushNegation
// itself. An identifier missing from the symbol table lowers to the
// one-cube don't-care list and is reported in the warnings: under OR the
// whole result then becomes a tautology, while under AND the other
// operands are left unchanged.
func Lower(ctx *bcp.Context, root *Node) (*bcl.List, []LowerWarning) {
	normalized := PushNegation(root)
	var warnings []LowerWarning
	l := lowerNode(ctx, normalized, &warnings)
	return l, warnings
}

func lowerNode(ctx *bcp.Context, n *Node, warnings *[]LowerWarning) *bcl.List {
	switch n.Kind {
	case KindNum:
		out := bcl.New(ctx)
		v := n.Value
		if n.IsNot {
			v = !v
		}
		if v {
			out.AddCube(ctx.DC())
		}
		return out

	case KindID:
		idx, ok := ctx.VarIndex(n.Name)
		out := bcl.New(ctx)
		if !ok {
			*warnings = append(*warnings, LowerWarning{Identifier: n.Name, Suggestion: suggest(ctx, n.Name)})
			out.AddCube(ctx.DC())
			return out
		}
		lit := ctx.DC().Clone()
		val := cube.One
		if n.IsNot {
			val = cube.Zero
		}
		lit.SetVar(idx, val)
		out.AddCube(lit)
		return out

	case KindAnd:
		out := bcl.New(ctx)
		out.AddCube(ctx.DC())
		for _, c := range n.Children {
			childList := lowerNode(ctx, c, warnings)
			next := bcl.New(ctx)
			algebra.Intersect(ctx, next, out, childList)
			out = next
		}
		return out

	case KindOr:
		out := bcl.New(ctx)
		for _, c := range n.Children {
			out.AddCubesFromList(lowerNode(ctx, c, warnings))
		}
		algebra.SCC(out)
		return out

	default:
		return bcl.New(ctx)
	}
}

// suggest returns, among the known variable names that fuzzy-match name
// (fuzzy.RankMatch), the one at the smallest Levenshtein distance; if none
// matches, the first registered name; "" if the symbol table is empty.
func suggest(ctx *bcp.Context, name string) string {
	names := ctx.VarNames()
	best := ""
	bestDist := -1
	for _, cand := range names {
		d := fuzzy.RankMatch(name, cand)
		if d < 0 {
			continue
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = cand
		}
	}
	if best == "" && len(names) > 0 {
		best = names[0]
	}
	return best
}
