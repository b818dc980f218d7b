// Command gseries draws a discrete series as stems with markers.
package main

import (
	"os"

	"github.com/cwbudde/algo-draw/chart"
	"github.com/cwbudde/algo-draw/internal/tools"
)

func main() {
	os.Exit(tools.Gseries(os.Args[1:], chart.OSEnv()))
}
