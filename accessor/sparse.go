package accessor

// uintSeq yields override indices widened to uint32.
type uintSeq interface {
	Next() (uint32, bool)
	Remaining() int
}

type widenSeq[T uint8 | uint16 | uint32] struct {
	it *Iter[T]
}

func (w widenSeq[T]) Next() (uint32, bool) {
	v, ok := w.it.Next()
	return uint32(v), ok
}

func (w widenSeq[T]) Remaining() int {
	return w.it.Remaining()
}

// Sparse overlays override values onto a base sequence at the positions
// named by a strictly increasing index sequence. A nil base stands for
// an all-zero sequence of the accessor's declared count.
//
// Malformed indices (out of order, duplicate, or not below the total
// count) stop iteration; Err reports the condition afterwards.
type Sparse[T any] struct {
	base    Seq[T]
	indices uintSeq
	values  Seq[T]
	total   int
	pos     uint32
	next    uint32 // lookahead slot for the pending override index
	pending bool
	err     error
}

// newSparse composes the overlay. total is the accessor's declared
// element count; base may be nil.
func newSparse[T any](base Seq[T], indices uintSeq, values Seq[T], total int) *Sparse[T] {
	if base == nil {
		base = &zeroSeq[T]{n: total}
	}
	s := &Sparse[T]{base: base, indices: indices, values: values, total: total}
	s.next, s.pending = indices.Next()
	if s.pending && s.next >= uint32(total) {
		s.err = ErrMalformedSparseIndices
	}
	return s
}

func (s *Sparse[T]) Next() (T, bool) {
	var zero T
	if s.err != nil {
		return zero, false
	}
	v, ok := s.base.Next()
	if !ok || int(s.pos) >= s.total {
		return zero, false
	}
	if s.pending && s.next == s.pos {
		if w, ok := s.values.Next(); ok {
			v = w
		}
		prev := s.next
		s.next, s.pending = s.indices.Next()
		if s.pending && (s.next <= prev || s.next >= uint32(s.total)) {
			s.err = ErrMalformedSparseIndices
		}
	}
	s.pos++
	return v, true
}

// Remaining returns how many of the accessor's count elements are left,
// not the (smaller) override count.
func (s *Sparse[T]) Remaining() int {
	if s.err != nil {
		return 0
	}
	n := s.total - int(s.pos)
	if r := s.base.Remaining(); r < n {
		n = r
	}
	return n
}

// Err returns ErrMalformedSparseIndices if iteration stopped on an
// out-of-order or out-of-range override index.
func (s *Sparse[T]) Err() error {
	return s.err
}
