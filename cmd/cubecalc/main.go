// Command cubecalc is the positional-cube Boolean calculator's CLI
// entrypoint. It is the replacement for the refactoring engine's root
// main.go: same "parse flags, run one driver, set the process exit code"
// shape, pointed at the calculator's DIMACS/expression/JSON drivers
// instead of Go source refactorings.
package main

import (
	"os"

	"github.com/rudell/cubecalc/driver/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
