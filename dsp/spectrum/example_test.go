package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-draw/dsp/window"
)

func ExamplePower() {
	p := Power([]complex128{complex(3, 4), complex(1, 0)})
	fmt.Println(p)
	// Output:
	// [25 1]
}

func ExampleCompute() {
	x := make([]float64, 1024)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 100 * float64(i) / 800)
	}

	s, _ := Compute(x, Config{SampleRate: 0.8, Window: window.TypeHann, Length: 128, Overlap: 0})

	peak := 0
	for k := range s.Power {
		if s.Power[k][0] > s.Power[peak][0] {
			peak = k
		}
	}
	fmt.Printf("segments=%d peak=%.3f kHz\n", len(s.Time), s.Freq[peak])
	// Output:
	// segments=8 peak=0.100 kHz
}
