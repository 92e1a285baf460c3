// Command fractions evaluates an expression of mixed-number fractions given
// as arguments and prints the result.
package main

import (
	"os"

	"github.com/zephyrtronium/fractions/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
