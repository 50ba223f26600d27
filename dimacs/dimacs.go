// Package dimacs reads the DIMACS CNF format into a cube list: header `p cnf V C`; `c`/`C` lines are comments;
// each clause is a whitespace-separated run of signed integers terminated
// by 0.
//
// Polarity is inverted relative to textbook CNF: a positive literal v sets
// position v-1 to Zero, a negative literal -v sets position v-1 to One.
// This is intentional — the resulting cube list represents the negation of
// the CNF formula, so that SAT is tested via a tautology check on that
// negation. This
// convention MUST be preserved: do not "fix" the polarity.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rudell/cubecalc/bcl"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/cube"
)

// Read parses one DIMACS CNF document from r, returning a cube list with
// one cube per clause. ctx is resized to V if it was not already.
func Read(ctx *bcp.Context, r io.Reader) (*bcl.List, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var numVars, numClauses int
	headerSeen := false
	l := bcl.New(ctx)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c', 'C':
			continue
		case 'p':
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("dimacs: malformed header %q", line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil {
				return nil, fmt.Errorf("dimacs: bad variable count: %w", err)
			}
			c, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("dimacs: bad clause count: %w", err)
			}
			numVars, numClauses = v, c
			headerSeen = true
			if ctx.NumVars != uint(numVars) {
				ctx.Resize(uint(numVars))
			}
		default:
			if !headerSeen {
				return nil, fmt.Errorf("dimacs: clause before header: %q", line)
			}
			cl, err := parseClause(ctx, line)
			if err != nil {
				return nil, err
			}
			if cl != nil {
				l.AddCube(cl)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	if !headerSeen {
		return nil, fmt.Errorf("dimacs: missing %q header", "p cnf")
	}
	_ = numClauses // informational only; the reader does not enforce the count
	return l, nil
}

// parseClause parses one whitespace-separated, 0-terminated run of signed
// literals into a single cube, or returns nil if the clause was empty
// (just "0").
func parseClause(ctx *bcp.Context, line string) (*cube.Cube, error) {
	fields := strings.Fields(line)
	c := ctx.DC().Clone()
	any := false
	for _, f := range fields {
		lit, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("dimacs: bad literal %q: %w", f, err)
		}
		if lit == 0 {
			break
		}
		v := lit
		val := cube.Zero
		if v < 0 {
			v = -v
			val = cube.One
		}
		if v < 1 || uint(v) > ctx.NumVars {
			return nil, fmt.Errorf("dimacs: literal %d out of range for %d variables", lit, ctx.NumVars)
		}
		c.SetVar(uint(v-1), val)
		any = true
	}
	if !any {
		return nil, nil
	}
	return c, nil
}
