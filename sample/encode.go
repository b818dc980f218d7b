package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Encode writes values as little-endian elements of type t. It is the
// inverse of Read for values representable in t; integer types truncate
// toward zero.
func Encode(w io.Writer, t Type, values []float64) error {
	if !t.valid() {
		return fmt.Errorf("%w: Type(%d)", ErrUnknownType, int(t))
	}

	size := t.Size()
	buf := make([]byte, size*len(values))
	for i, v := range values {
		encodeBits(t, buf[i*size:(i+1)*size], floatBits(t, v))
	}

	_, err := w.Write(buf)
	return err
}

// EncodeRaw writes raw element bit patterns. It is the inverse of
// DecodeRaw.
func EncodeRaw(w io.Writer, r Raw) error {
	if !r.Type.valid() {
		return fmt.Errorf("%w: Type(%d)", ErrUnknownType, int(r.Type))
	}

	size := r.Type.Size()
	buf := make([]byte, size*len(r.Bits))
	for i, b := range r.Bits {
		encodeBits(r.Type, buf[i*size:(i+1)*size], b)
	}

	_, err := w.Write(buf)
	return err
}

func floatBits(t Type, v float64) uint64 {
	switch t {
	case TypeFloat32:
		return uint64(math.Float32bits(float32(v)))
	case TypeFloat64:
		return math.Float64bits(v)
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return uint64(v)
	default:
		return uint64(int64(v))
	}
}

func encodeBits(t Type, dst []byte, b uint64) {
	le := binary.LittleEndian
	switch t.Size() {
	case 1:
		dst[0] = byte(b)
	case 2:
		le.PutUint16(dst, uint16(b))
	case 4:
		le.PutUint32(dst, uint32(b))
	default:
		le.PutUint64(dst, b)
	}
}
