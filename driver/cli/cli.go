// Package cli implements the command-line driver. It mirrors the
// root main.go's own flag-parsing shape directly: a flat set of
// single-dash flags parsed with the standard library's flag package (the
// teacher's CLI never reaches for a third-party flag library either),
// dispatching to one of a few drivers based on which flag was given.
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	jsondriver "github.com/rudell/cubecalc/driver/json"

	"github.com/rudell/cubecalc/algebra"
	"github.com/rudell/cubecalc/bcp"
	"github.com/rudell/cubecalc/dimacs"
	"github.com/rudell/cubecalc/expr"
	"github.com/rudell/cubecalc/logx"
)

// Options holds the parsed flag values for one invocation.
type Options struct {
	Verbosity  int
	RunTests   bool
	Speed      bool
	DimacsCNF  string
	ParseExpr  string
	JSONPretty bool
	JSONOut    string
	JSONIn     string
}

// Run parses args and executes the driver, returning the process exit
// code: 0 on success, 1 on bad arguments or an I/O error.
func Run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("cubecalc", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &Options{}
	fs.BoolVar(&opts.RunTests, "test", false, "accepted; no self-test suite is run")
	fs.BoolVar(&opts.Speed, "speed", false, "accepted; no timings are reported")
	fs.StringVar(&opts.DimacsCNF, "dimacscnf", "", "read a DIMACS CNF file and report satisfiability")
	fs.StringVar(&opts.ParseExpr, "parse", "", "parse and lower an expression string, then print it back")
	fs.BoolVar(&opts.JSONPretty, "ojpp", false, "pretty-print JSON driver replies")
	fs.StringVar(&opts.JSONOut, "ojson", "", "write JSON driver replies to this file instead of stdout")
	fs.StringVar(&opts.JSONIn, "json", "", "read a JSON driver command file and execute it")
	fs.BoolFunc("v", "increase log verbosity (repeat as -v -v for more)", func(string) error {
		opts.Verbosity++
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if err := run(opts, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %v", err))
		return 1
	}
	return 0
}

func run(opts *Options, stdout, stderr io.Writer) error {
	log := logx.New(stdout, opts.Verbosity)

	switch {
	case opts.DimacsCNF != "":
		return runDimacs(opts, log, stdout)
	case opts.ParseExpr != "":
		return runParse(opts, log, stdout)
	case opts.JSONIn != "":
		return runJSON(opts, log, stdout)
	default:
		log.Log(1, "nothing to do: pass -dimacscnf, -parse, or -json")
		return nil
	}
}

func runDimacs(opts *Options, log *logx.Logger, stdout io.Writer) error {
	f, err := os.Open(opts.DimacsCNF)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx := bcp.New(0)
	l, err := dimacs.Read(ctx, f)
	if err != nil {
		return err
	}
	log.Log(2, "read %d clauses over %d variables", l.Len(), ctx.NumVars)

	sat := !algebra.IsTautology(ctx, l)
	fmt.Fprintf(stdout, "SAT: %v\n", sat)
	return nil
}

func runParse(opts *Options, log *logx.Logger, stdout io.Writer) error {
	ctx := bcp.New(0)
	n, err := expr.Parse(ctx, opts.ParseExpr)
	if err != nil {
		return err
	}
	ctx.Resize(uint(ctx.VarCount()))
	l, warnings := expr.Lower(ctx, n)
	for _, w := range warnings {
		log.Log(1, "unknown identifier %q (did you mean %q?)", w.Identifier, w.Suggestion)
	}
	fmt.Fprintln(stdout, expr.Print(ctx, l))
	return nil
}

func runJSON(opts *Options, log *logx.Logger, stdout io.Writer) error {
	doc, err := os.ReadFile(opts.JSONIn)
	if err != nil {
		return err
	}
	ctx := bcp.New(0)
	replies, err := jsondriver.Run(ctx, doc)
	if err != nil {
		log.Log(1, "driver error: %v", err)
	}

	out := stdout
	if opts.JSONOut != "" {
		f, ferr := os.Create(opts.JSONOut)
		if ferr != nil {
			return ferr
		}
		defer f.Close()
		out = f
	}
	for _, r := range replies {
		if opts.JSONPretty {
			b, _ := json.MarshalIndent(r.Params, "", "  ")
			fmt.Fprintln(out, string(b))
			continue
		}
		fmt.Fprintln(out, r.String())
	}
	return err
}
