// SPDX-License-Identifier: MIT

// Command contagion ranks the nodes of a weighted directed network by the
// expected reach of a contagion seeded at each of them.
package main

import (
	"os"

	"github.com/katalvlaran/contagion/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
