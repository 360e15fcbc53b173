// SPDX-License-Identifier: MIT

// Command lvlrand generates, validates and inspects deterministic random
// streams.
package main

import (
	"os"

	"github.com/katalvlaran/lvlrand/cmd/lvlrand/cmd"
)

func main() {
	if err := cmd.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
