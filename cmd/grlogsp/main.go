// Command grlogsp draws a run of log amplitude spectra.
package main

import (
	"os"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/tools"
)

func main() {
	os.Exit(tools.Grlogsp(os.Args[1:], chart.OSEnv()))
}
