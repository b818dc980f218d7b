package sample

// Array is a decoded sample stream stored row-major.
//
// When Dim <= 1 the array is a flat sequence of scalars. Otherwise it holds
// Rows() tuples of Dim elements each.
type Array struct {
	Dim  int
	Data []float64
}

// NewArray wraps data as an array of the given dimension. Trailing
// elements that do not fill a complete tuple are dropped.
func NewArray(data []float64, dim int) Array {
	if dim < 1 {
		dim = 1
	}
	n := len(data) / dim * dim
	return Array{Dim: dim, Data: data[:n]}
}

// Flat reports whether the array is a one-dimensional sequence.
func (a Array) Flat() bool { return a.Dim <= 1 }

func (a Array) width() int {
	if a.Dim < 1 {
		return 1
	}
	return a.Dim
}

// Rows returns the number of complete records.
func (a Array) Rows() int { return len(a.Data) / a.width() }

// Len returns the number of scalars for a flat array and the number of
// rows otherwise.
func (a Array) Len() int {
	if a.Flat() {
		return len(a.Data)
	}
	return a.Rows()
}

// Row returns record i. The returned slice aliases the array storage.
func (a Array) Row(i int) []float64 {
	w := a.width()
	return a.Data[i*w : (i+1)*w : (i+1)*w]
}

// Column returns a copy of element j of every record.
func (a Array) Column(j int) []float64 {
	w := a.width()
	if j < 0 || j >= w {
		return nil
	}
	out := make([]float64, a.Rows())
	for i := range out {
		out[i] = a.Data[i*w+j]
	}
	return out
}

// Slice returns the records in [start, end). Bounds are clamped to the
// available rows, mirroring Go slicing without panicking on overrun.
func (a Array) Slice(start, end int) Array {
	rows := a.Rows()
	start = clampIndex(start, rows)
	end = clampIndex(end, rows)
	if end < start {
		end = start
	}
	w := a.width()
	return Array{Dim: a.Dim, Data: a.Data[start*w : end*w]}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
