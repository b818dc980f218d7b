package core

import "testing"

func TestCopyIntoShortSource(t *testing.T) {
	dst := []float64{9, 9, 9}
	if n := CopyInto(dst, []float64{1, 2}); n != 2 {
		t.Fatalf("CopyInto() = %d, want 2", n)
	}
	if dst[0] != 1 || dst[1] != 2 || dst[2] != 9 {
		t.Fatalf("dst = %v", dst)
	}
}

func TestOffset(t *testing.T) {
	src := []float64{1, 2}
	got := Offset(src, 0.5)
	if got[0] != 1.5 || got[1] != 2.5 {
		t.Fatalf("Offset() = %v", got)
	}
	if src[0] != 1 {
		t.Fatal("Offset modified its input")
	}
}
