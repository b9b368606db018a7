// SPDX-License-Identifier: MIT

// Command factorcalc applies discrete factor algebra to YAML models.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvfactor/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
