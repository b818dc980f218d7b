package sample

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// NewLZ4Reader wraps r, which must carry an LZ4 frame stream, so that
// Read sees the decompressed samples.
func NewLZ4Reader(r io.Reader) io.Reader {
	return lz4.NewReader(r)
}

// CompressLZ4 writes data to w as a single LZ4 frame.
func CompressLZ4(w io.Writer, data []byte) error {
	zw := lz4.NewWriter(w)
	if _, err := zw.Write(data); err != nil {
		return err
	}
	return zw.Close()
}
