// Command pbtcheck collects registered property roots from the given
// paths, drives each through pkg/runner, and reports pass/fail with the
// replay seed.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:     "pbtcheck",
		Short:   "Collect and run property-based checks",
		Version: version,
	}
	root.AddCommand(newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
