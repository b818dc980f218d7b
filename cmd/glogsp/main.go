// Command glogsp draws one frame of a log amplitude spectrum.
package main

import (
	"os"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/tools"
)

func main() {
	os.Exit(tools.Glogsp(os.Args[1:], chart.OSEnv()))
}
