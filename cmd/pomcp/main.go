// Command pomcp runs or sweeps a POMCP planner against one of the
// repository's demonstration problems.
package main

import (
	"fmt"
	"os"

	"github.com/mtorres-dev/go-pomcp/pkg/pomcp"
)

func main() {
	pomcp.InitFastUCB()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
