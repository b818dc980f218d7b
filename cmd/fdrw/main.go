// Command fdrw draws graphs of a sample sequence as lines, markers or bars.
package main

import (
	"os"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/tools"
)

func main() {
	os.Exit(tools.Fdrw(os.Args[1:], chart.OSEnv()))
}
