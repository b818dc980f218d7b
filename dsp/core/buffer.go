package core

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	copy(dst[:n], src[:n])
	return n
}

// Offset returns a copy of src with bias added to every element.
func Offset(src []float64, bias float64) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = v + bias
	}
	return out
}
