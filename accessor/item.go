// Package accessor decodes the binary data behind glTF accessors: it
// walks strided buffer views, reconstructs sparse accessors and maps
// attribute semantics to concretely typed element sequences.
//
// All multi-byte components are little-endian, as required by the glTF
// binary layout. Buffer bounds are validated when an iterator is
// constructed, so a malformed accessor surfaces as an error instead of
// an out-of-range access while iterating.
package accessor

import (
	"encoding/binary"
	"errors"
	"math"
)

var (
	ErrStride                 = errors.New("accessor: stride smaller than element size")
	ErrBounds                 = errors.New("accessor: data out of buffer bounds")
	ErrAlignment              = errors.New("accessor: misaligned byte offset")
	ErrType                   = errors.New("accessor: unsupported type combination")
	ErrMalformedSparseIndices = errors.New("accessor: sparse indices not strictly increasing or out of range")
)

// Component is the closed set of glTF component storage types.
type Component interface {
	int8 | uint8 | int16 | uint16 | uint32 | float32
}

func componentSize[T Component]() int {
	switch any(*new(T)).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	default:
		return 4
	}
}

// decodeComponent reads one component from the start of b. b must hold
// at least componentSize[T] bytes; iterator construction guarantees it.
func decodeComponent[T Component](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	}
	return v
}

func decodeVec2[T Component](b []byte) [2]T {
	n := componentSize[T]()
	return [2]T{decodeComponent[T](b), decodeComponent[T](b[n:])}
}

func decodeVec3[T Component](b []byte) [3]T {
	n := componentSize[T]()
	return [3]T{decodeComponent[T](b), decodeComponent[T](b[n:]), decodeComponent[T](b[2*n:])}
}

func decodeVec4[T Component](b []byte) [4]T {
	n := componentSize[T]()
	return [4]T{
		decodeComponent[T](b), decodeComponent[T](b[n:]),
		decodeComponent[T](b[2*n:]), decodeComponent[T](b[3*n:]),
	}
}

func decodeMat3[T Component](b []byte) [9]T {
	var m [9]T
	n := componentSize[T]()
	for i := range m {
		m[i] = decodeComponent[T](b[i*n:])
	}
	return m
}

func decodeMat4[T Component](b []byte) [16]T {
	var m [16]T
	n := componentSize[T]()
	for i := range m {
		m[i] = decodeComponent[T](b[i*n:])
	}
	return m
}
