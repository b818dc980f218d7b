package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-draw/dsp/core"
)

func ExampleCopyInto() {
	buf := make([]float64, 4)

	copied := core.CopyInto(buf[2:], []float64{3, 4})
	fmt.Println(copied, buf)

	// Output:
	// 2 [0 0 3 4]
}

func ExamplePowerToDBFloor() {
	db := make([]float64, 3)
	core.PowerToDBFloor(db, []float64{0, 1, 1000})
	fmt.Printf("%.1f %.1f %.1f\n", db[0], db[1], db[2])

	// Output:
	// 0.0 0.0 30.0
}
