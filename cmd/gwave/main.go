// Command gwave draws a waveform.
package main

import (
	"os"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/tools"
)

func main() {
	os.Exit(tools.Gwave(os.Args[1:], chart.OSEnv()))
}
