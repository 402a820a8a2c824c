// SPDX-License-Identifier: MIT

// Command linalg runs vector and matrix arithmetic from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/linalg/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
