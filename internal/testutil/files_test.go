package testutil

import (
	"os"
	"testing"
)

func TestWriteFloat64File(t *testing.T) {
	path := WriteFloat64File(t, t.TempDir(), "x.bin", []float64{1, 2, 3})
	RequireNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if len(data) != 24 {
		t.Fatalf("len = %d, want 24", len(data))
	}
	// 1.0 is 0x3ff0000000000000 little-endian.
	if data[6] != 0xf0 || data[7] != 0x3f {
		t.Fatalf("unexpected encoding of 1.0: % x", data[:8])
	}
}
