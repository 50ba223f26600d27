package json

import (
	"fmt"
	"strings"

	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/cube"
	"github.com/rudell/cubecalc/expr"
)

// cubeListFromSource resolves a cube-list source — "bcl" (string or vector
// of strings), "expr" (expression string), or "mtvar" (minterm: a
// space-separated string, or a vector, of variable names that take value
// 1, absent variables take 0) — into a fresh *bcl.List.
func cubeListFromSource(state *State, input map[string]interface{}) (*bcl.List, error) {
	if v, found := input["bcl"]; found {
		l := bcl.New(state.Ctx)
		switch t := v.(type) {
		case string:
			if err := l.AddFromString(t); err != nil {
				return nil, err
			}
		case []interface{}:
			for _, item := range t {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%q: bcl vector must contain strings", "bcl")
				}
				if err := l.AddFromString(s); err != nil {
					return nil, err
				}
			}
		default:
			return nil, fmt.Errorf("%q must be a string or a vector of strings", "bcl")
		}
		return l, nil
	}

	if v, found := input["expr"]; found {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%q must be a string", "expr")
		}
		node, err := expr.Parse(state.Ctx, s)
		if err != nil {
			return nil, err
		}
		l, _ := expr.Lower(state.Ctx, node)
		return l, nil
	}

	if v, found := input["mtvar"]; found {
		var names []interface{}
		switch t := v.(type) {
		case string:
			for _, f := range strings.Fields(t) {
				names = append(names, f)
			}
		case []interface{}:
			names = t
		default:
			return nil, fmt.Errorf("%q must be a string of space-separated variable names or a vector of names", "mtvar")
		}
		active := map[string]bool{}
		for _, item := range names {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%q must contain only strings", "mtvar")
			}
			active[s] = true
		}
		c := state.Ctx.DC().Clone()
		for _, name := range state.Ctx.VarNames() {
			idx, _ := state.Ctx.VarIndex(name)
			if active[name] {
				c.SetVar(idx, cube.One)
			} else {
				c.SetVar(idx, cube.Zero)
			}
		}
		l := bcl.New(state.Ctx)
		l.AddCube(c)
		return l, nil
	}

	return nil, fmt.Errorf("one of %q, %q, or %q is required", "bcl", "expr", "mtvar")
}
