// Command gridpath finds A* routes on occupancy grids.
//
//	gridpath search --grid map.txt --src 8,0 --dest 0,0
//	gridpath batch --scenario scenario.yaml
//	gridpath serve -c gridpath.yaml
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/gridpath/internal/cli"
)

func main() {
	if err := cli.BuildCLI().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
