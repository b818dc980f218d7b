package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
)

// Float64Bytes packs values as little-endian float64 records.
func Float64Bytes(values []float64) []byte {
	buf := make([]byte, 8*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(v))
	}
	return buf
}

// WriteFloat64File writes values into dir/name as little-endian float64
// records and returns the path.
func WriteFloat64File(t testing.TB, dir, name string, values []float64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Float64Bytes(values), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// RequireNonEmptyFile fails t unless path exists and holds data.
func RequireNonEmptyFile(t testing.TB, path string) {
	t.Helper()
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if fi.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

// RequireNoFile fails t if path exists.
func RequireNoFile(t testing.TB, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("%s exists, want no output", path)
	}
}
