package accessor

import (
	"errors"
	"testing"
)

func sparseU8(t *testing.T, base []byte, total int, indices []byte, values []byte) *Sparse[uint8] {
	t.Helper()
	var baseSeq Seq[uint8]
	if base != nil {
		it, err := Scalars[uint8](base, 1)
		if err != nil {
			t.Fatal(err)
		}
		baseSeq = it.limit(total)
	}
	idx, err := Scalars[uint8](indices, 1)
	if err != nil {
		t.Fatal(err)
	}
	vals, err := Scalars[uint8](values, 1)
	if err != nil {
		t.Fatal(err)
	}
	return newSparse[uint8](baseSeq, widenSeq[uint8]{idx}, vals, total)
}

func collect[T any](s Seq[T]) []T {
	var out []T
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestSparseOverlayZeroBase(t *testing.T) {
	s := sparseU8(t, nil, 5, []byte{1, 3}, []byte{10, 20})
	if got := s.Remaining(); got != 5 {
		t.Errorf("Remaining() = %d, want 5", got)
	}
	got := collect[uint8](s)
	want := []uint8{0, 10, 0, 20, 0}
	if len(got) != len(want) {
		t.Fatalf("overlay = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("overlay[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestSparseOverlayWithBase(t *testing.T) {
	s := sparseU8(t, []byte{1, 2, 3, 4, 5, 6}, 6, []byte{0, 2, 5}, []byte{100, 101, 102})
	got := collect[uint8](s)
	want := []uint8{100, 2, 101, 4, 5, 102}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("overlay[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSparseRemainingTracksTotal(t *testing.T) {
	s := sparseU8(t, nil, 4, []byte{1}, []byte{9})
	s.Next()
	s.Next()
	if got := s.Remaining(); got != 2 {
		t.Errorf("Remaining() after two = %d, want 2", got)
	}
}

func TestSparseMalformedIndices(t *testing.T) {
	tests := []struct {
		name    string
		indices []byte
	}{
		{"decreasing", []byte{3, 1}},
		{"duplicate", []byte{2, 2}},
		{"out of range", []byte{7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sparseU8(t, nil, 5, tt.indices, []byte{10, 20})
			collect[uint8](s)
			if !errors.Is(s.Err(), ErrMalformedSparseIndices) {
				t.Errorf("Err() = %v, want ErrMalformedSparseIndices", s.Err())
			}
		})
	}
}

func TestSparseNoOverrides(t *testing.T) {
	s := sparseU8(t, []byte{7, 8, 9}, 3, nil, nil)
	got := collect[uint8](s)
	want := []uint8{7, 8, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("overlay[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
