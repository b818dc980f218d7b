// Command gpolezero draws zeros and poles on the complex plane.
package main

import (
	"os"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/tools"
)

func main() {
	os.Exit(tools.Gpolezero(os.Args[1:], chart.OSEnv()))
}
