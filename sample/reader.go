package sample

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// Result is the outcome of decoding one sample stream.
type Result struct {
	Array

	// Discarded is the byte count of a trailing partial record that was
	// dropped. It is zero when the stream ended on a record boundary.
	Discarded int
}

// Read decodes little-endian records of dim elements of type t from r until
// the stream is exhausted.
//
// A trailing chunk shorter than one record ends decoding without an error;
// its length is reported in Result.Discarded. dim values below 1 are
// treated as 1.
func Read(r io.Reader, t Type, dim int) (Result, error) {
	if !t.valid() {
		return Result{}, fmt.Errorf("%w: Type(%d)", ErrUnknownType, int(t))
	}
	if dim < 1 {
		dim = 1
	}

	size := t.Size()
	var data []float64
	discarded, err := scanRecords(r, size*dim, func(rec []byte) {
		for k := 0; k < dim; k++ {
			data = append(data, decodeFloat(t, rec[k*size:(k+1)*size]))
		}
	})
	if err != nil {
		return Result{}, err
	}

	if data == nil {
		data = []float64{}
	}
	return Result{Array: Array{Dim: dim, Data: data}, Discarded: discarded}, nil
}

// ReadFile opens path and decodes it with Read. A missing file yields an
// error wrapping fs.ErrNotExist before any read is attempted.
func ReadFile(path string, t Type, dim int) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()

	res, err := Read(f, t, dim)
	if err != nil {
		return Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	return res, nil
}

// Raw holds undecoded element bit patterns, one uint64 per element, so
// 64-bit integers survive without a float64 round trip.
type Raw struct {
	Type Type
	Dim  int
	Bits []uint64
}

// DecodeRaw reads records like Read but keeps the exact bit pattern of each
// element. Signed integers are sign-extended.
func DecodeRaw(r io.Reader, t Type, dim int) (Raw, error) {
	if !t.valid() {
		return Raw{}, fmt.Errorf("%w: Type(%d)", ErrUnknownType, int(t))
	}
	if dim < 1 {
		dim = 1
	}

	size := t.Size()
	out := Raw{Type: t, Dim: dim, Bits: []uint64{}}
	_, err := scanRecords(r, size*dim, func(rec []byte) {
		for k := 0; k < dim; k++ {
			out.Bits = append(out.Bits, decodeBits(t, rec[k*size:(k+1)*size]))
		}
	})
	if err != nil {
		return Raw{}, err
	}
	return out, nil
}

// Int returns element i as a signed integer.
func (r Raw) Int(i int) int64 { return int64(r.Bits[i]) }

// Uint returns element i as an unsigned integer.
func (r Raw) Uint(i int) uint64 { return r.Bits[i] }

// Float returns element i converted to float64 according to the type.
func (r Raw) Float(i int) float64 {
	b := r.Bits[i]
	switch r.Type {
	case TypeFloat32:
		return float64(math.Float32frombits(uint32(b)))
	case TypeFloat64:
		return math.Float64frombits(b)
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return float64(b)
	default:
		return float64(int64(b))
	}
}

// scanRecords calls fn for every complete record of recSize bytes and
// returns the length of a trailing partial record.
func scanRecords(r io.Reader, recSize int, fn func([]byte)) (int, error) {
	buf := make([]byte, recSize)
	for {
		n, err := io.ReadFull(r, buf)
		switch {
		case err == nil:
			fn(buf)
		case errors.Is(err, io.EOF):
			return 0, nil
		case errors.Is(err, io.ErrUnexpectedEOF):
			return n, nil
		default:
			return 0, err
		}
	}
}

func decodeBits(t Type, b []byte) uint64 {
	le := binary.LittleEndian
	switch t {
	case TypeInt8:
		return uint64(int64(int8(b[0])))
	case TypeUint8:
		return uint64(b[0])
	case TypeInt16:
		return uint64(int64(int16(le.Uint16(b))))
	case TypeUint16:
		return uint64(le.Uint16(b))
	case TypeInt32:
		return uint64(int64(int32(le.Uint32(b))))
	case TypeUint32, TypeFloat32:
		return uint64(le.Uint32(b))
	default:
		return le.Uint64(b)
	}
}

func decodeFloat(t Type, b []byte) float64 {
	le := binary.LittleEndian
	switch t {
	case TypeInt8:
		return float64(int8(b[0]))
	case TypeUint8:
		return float64(b[0])
	case TypeInt16:
		return float64(int16(le.Uint16(b)))
	case TypeUint16:
		return float64(le.Uint16(b))
	case TypeInt32:
		return float64(int32(le.Uint32(b)))
	case TypeUint32:
		return float64(le.Uint32(b))
	case TypeInt64:
		return float64(int64(le.Uint64(b)))
	case TypeUint64:
		return float64(le.Uint64(b))
	case TypeFloat32:
		return float64(math.Float32frombits(le.Uint32(b)))
	default:
		return math.Float64frombits(le.Uint64(b))
	}
}
