package expr

import (
	"strings"

	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// Print renders l as an infix expression string using ctx's punctuation and
// variable names, one AND-term per live cube joined by Or, so that
// re-parsing the result and lowering it again yields a set-equal cube list
//.
func Print(ctx *bcp.Context, l *bcl.List) string {
	var terms []string
	for i := 0; i < l.Len(); i++ {
		if l.IsDeleted(i) {
			continue
		}
		terms = append(terms, printCube(ctx, l.Cube(i)))
	}
	if len(terms) == 0 {
		return string(ctx.Punct.False)
	}
	return strings.Join(terms, string(ctx.Punct.Or))
}

func printCube(ctx *bcp.Context, c *cube.Cube) string {
	var lits []string
	for v := uint(0); v < c.NumVars(); v++ {
		val := c.GetVar(v)
		if val == cube.DC {
			continue
		}
		name := ctx.VarName(v)
		if val == cube.Zero {
			lits = append(lits, string(ctx.Punct.Not)+name)
		} else {
			lits = append(lits, name)
		}
	}
	if len(lits) == 0 {
		return string(ctx.Punct.True)
	}
	return strings.Join(lits, string(ctx.Punct.And))
}
