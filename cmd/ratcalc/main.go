// Command ratcalc is an exact rational calculator for postfix expressions.
package main

import (
	"fmt"
	"os"

	"github.com/skimberk/computer-algebra/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
