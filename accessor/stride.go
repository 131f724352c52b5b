package accessor

import "fmt"

// Seq is a finite, exactly-sized sequence of decoded elements.
// Remaining reports how many calls to Next will still return an
// element.
type Seq[T any] interface {
	Next() (T, bool)
	Remaining() int
}

// Iter walks a byte region with a fixed stride and lazily decodes one
// element per step. The stride may exceed the element size when other
// attributes are interleaved in between; the trailing element needs no
// stride padding after it.
type Iter[T any] struct {
	data   []byte
	stride int
	size   int
	count  int
	decode func([]byte) T
}

func newIter[T any](data []byte, stride, size int, decode func([]byte) T) (*Iter[T], error) {
	if stride < size {
		return nil, fmt.Errorf("%w: stride %d, element %d bytes", ErrStride, stride, size)
	}
	it := &Iter[T]{data: data, stride: stride, size: size, decode: decode}
	it.count = len(data) / stride
	if len(data)%stride >= size {
		it.count++
	}
	return it, nil
}

// limit caps the sequence at n elements. Used when an accessor declares
// fewer elements than the buffer view could hold.
func (it *Iter[T]) limit(n int) *Iter[T] {
	if n < it.count {
		it.count = n
	}
	return it
}

// Remaining returns the exact number of elements left.
func (it *Iter[T]) Remaining() int {
	return it.count
}

// Next decodes the element at the current position and advances by one
// stride.
func (it *Iter[T]) Next() (T, bool) {
	var zero T
	if it.count == 0 {
		return zero, false
	}
	v := it.decode(it.data)
	if len(it.data) >= it.stride {
		it.data = it.data[it.stride:]
	} else {
		it.data = nil
	}
	it.count--
	return v, true
}

// Nth skips n elements and returns the one after them, like n calls to
// Next followed by one more. The skip is a single offset jump.
func (it *Iter[T]) Nth(n int) (T, bool) {
	if n > 0 {
		if n >= it.count {
			var zero T
			it.data = nil
			it.count = 0
			return zero, false
		}
		it.data = it.data[n*it.stride:]
		it.count -= n
	}
	return it.Next()
}

// Last consumes the iterator and returns its final element.
func (it *Iter[T]) Last() (T, bool) {
	if it.count == 0 {
		var zero T
		return zero, false
	}
	return it.Nth(it.count - 1)
}

// Scalars returns an iterator over single-component elements.
func Scalars[T Component](data []byte, stride int) (*Iter[T], error) {
	return newIter(data, stride, componentSize[T](), decodeComponent[T])
}

// Vec2s returns an iterator over 2-component vector elements.
func Vec2s[T Component](data []byte, stride int) (*Iter[[2]T], error) {
	return newIter(data, stride, 2*componentSize[T](), decodeVec2[T])
}

// Vec3s returns an iterator over 3-component vector elements.
func Vec3s[T Component](data []byte, stride int) (*Iter[[3]T], error) {
	return newIter(data, stride, 3*componentSize[T](), decodeVec3[T])
}

// Vec4s returns an iterator over 4-component vector and 2x2 matrix
// elements.
func Vec4s[T Component](data []byte, stride int) (*Iter[[4]T], error) {
	return newIter(data, stride, 4*componentSize[T](), decodeVec4[T])
}

// Mat3s returns an iterator over column-major 3x3 matrix elements.
func Mat3s[T Component](data []byte, stride int) (*Iter[[9]T], error) {
	return newIter(data, stride, 9*componentSize[T](), decodeMat3[T])
}

// Mat4s returns an iterator over column-major 4x4 matrix elements.
func Mat4s[T Component](data []byte, stride int) (*Iter[[16]T], error) {
	return newIter(data, stride, 16*componentSize[T](), decodeMat4[T])
}

// zeroSeq yields n zero values. It backs sparse accessors that declare
// no base buffer view.
type zeroSeq[T any] struct {
	n int
}

func (z *zeroSeq[T]) Next() (T, bool) {
	var zero T
	if z.n == 0 {
		return zero, false
	}
	z.n--
	return zero, true
}

func (z *zeroSeq[T]) Remaining() int {
	return z.n
}
