package sample

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned for type codes outside the supported table.
var ErrUnknownType = errors.New("sample: unknown type code")

// Type identifies the scalar encoding of one element in a sample stream.
type Type int

const (
	TypeInt8 Type = iota
	TypeUint8
	TypeInt16
	TypeUint16
	TypeInt32
	TypeUint32
	TypeInt64
	TypeUint64
	TypeFloat32
	TypeFloat64
)

// DefaultType is used when a caller selects no type code.
const DefaultType = TypeFloat64

type typeInfo struct {
	code byte
	name string
	size int
}

var typeTable = [...]typeInfo{
	TypeInt8:    {'c', "char", 1},
	TypeUint8:   {'C', "unsigned char", 1},
	TypeInt16:   {'s', "short", 2},
	TypeUint16:  {'S', "unsigned short", 2},
	TypeInt32:   {'i', "int", 4},
	TypeUint32:  {'I', "unsigned int", 4},
	TypeInt64:   {'l', "long", 8},
	TypeUint64:  {'L', "unsigned long", 8},
	TypeFloat32: {'f', "float", 4},
	TypeFloat64: {'d', "double", 8},
}

// Types returns every supported type in code-table order.
func Types() []Type {
	out := make([]Type, len(typeTable))
	for i := range out {
		out[i] = Type(i)
	}
	return out
}

// ParseType maps a single-character type code (c, C, s, S, i, I, l, L, f, d)
// to its Type.
func ParseType(code string) (Type, error) {
	if len(code) == 1 {
		for i, info := range typeTable {
			if info.code == code[0] {
				return Type(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, code)
}

func (t Type) valid() bool {
	return t >= 0 && int(t) < len(typeTable)
}

// Size returns the element width in bytes, or 0 for an invalid type.
func (t Type) Size() int {
	if !t.valid() {
		return 0
	}
	return typeTable[t].size
}

// Code returns the single-character type code.
func (t Type) Code() string {
	if !t.valid() {
		return "?"
	}
	return string(typeTable[t].code)
}

// String returns the C-style name of the type, e.g. "double".
func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeTable[t].name
}

// IsFloat reports whether t is an IEEE floating-point type.
func (t Type) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsSigned reports whether t is a signed integer or floating-point type.
func (t Type) IsSigned() bool {
	switch t {
	case TypeUint8, TypeUint16, TypeUint32, TypeUint64:
		return false
	}
	return t.valid()
}
