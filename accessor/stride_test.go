package accessor

import "testing"

func bytesN(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestScalarsEndianness(t *testing.T) {
	it, err := Scalars[float32]([]byte{0x00, 0x00, 0x80, 0x3f}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := it.Next(); !ok || v != 1.0 {
		t.Errorf("f32 = %v, %v, want 1.0", v, ok)
	}

	it16, err := Scalars[uint16]([]byte{0x00, 0x00, 0x80, 0x3f}, 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0x0000, 0x3f80}
	for i, w := range want {
		if v, ok := it16.Next(); !ok || v != w {
			t.Errorf("u16[%d] = %04x, want %04x", i, v, w)
		}
	}

	it8, err := Scalars[int8]([]byte{0xff}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := it8.Next(); v != -1 {
		t.Errorf("i8 = %d, want -1", v)
	}
}

func TestIterCountExact(t *testing.T) {
	tests := []struct {
		dataLen, stride, size int
	}{
		{12, 4, 4},
		{12, 6, 4},   // interleaved
		{10, 6, 4},   // trailing element without stride padding
		{9, 6, 4},    // trailing 3 bytes too short to decode
		{3, 4, 4},    // nothing decodable
		{0, 4, 4},    // empty
		{100, 12, 4}, // wide stride
	}
	for _, tt := range tests {
		it, err := Scalars[float32](bytesN(tt.dataLen), tt.stride)
		if err != nil {
			t.Fatal(err)
		}
		want := tt.dataLen / tt.stride
		if tt.dataLen%tt.stride >= tt.size {
			want++
		}
		if got := it.Remaining(); got != want {
			t.Errorf("len=%d stride=%d: Remaining() = %d, want %d", tt.dataLen, tt.stride, got, want)
		}
		n := 0
		for {
			if _, ok := it.Next(); !ok {
				break
			}
			n++
		}
		if n != want {
			t.Errorf("len=%d stride=%d: produced %d items, want %d", tt.dataLen, tt.stride, n, want)
		}
	}
}

func TestIterStrideSkipsInterleaved(t *testing.T) {
	// u16 values at offsets 0, 6, 12 with 4 garbage bytes in between.
	data := []byte{1, 0, 0xde, 0xad, 0xde, 0xad, 2, 0, 0xde, 0xad, 0xde, 0xad, 3, 0}
	it, err := Scalars[uint16](data, 6)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range []uint16{1, 2, 3} {
		if v, ok := it.Next(); !ok || v != want {
			t.Errorf("item %d = %v, %v, want %d", i, v, ok, want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("iterator did not end")
	}
}

func TestIterNthEquivalence(t *testing.T) {
	data := bytesN(50)
	for n := 0; n < 14; n++ {
		jump, err := Scalars[uint8](data, 4)
		if err != nil {
			t.Fatal(err)
		}
		seq, _ := Scalars[uint8](data, 4)
		for i := 0; i < n; i++ {
			seq.Next()
		}
		wantV, wantOK := seq.Next()
		gotV, gotOK := jump.Nth(n)
		if gotV != wantV || gotOK != wantOK {
			t.Errorf("Nth(%d) = %v, %v; sequential = %v, %v", n, gotV, gotOK, wantV, wantOK)
		}
		if jump.Remaining() != seq.Remaining() {
			t.Errorf("Nth(%d): Remaining() = %d, sequential = %d", n, jump.Remaining(), seq.Remaining())
		}
	}
}

func TestIterLast(t *testing.T) {
	it, err := Scalars[uint16]([]byte{1, 0, 0xde, 2, 0, 0xde, 3, 0}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := it.Last(); !ok || v != 3 {
		t.Errorf("Last() = %v, %v, want 3", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after Last() returned an item")
	}

	empty, _ := Scalars[uint16](nil, 2)
	if _, ok := empty.Last(); ok {
		t.Error("Last() on empty iterator returned an item")
	}
}

func TestIterStrideTooSmall(t *testing.T) {
	if _, err := Scalars[float32](bytesN(8), 2); err == nil {
		t.Error("stride 2 for 4-byte elements accepted")
	}
	if _, err := Vec3s[float32](bytesN(24), 8); err == nil {
		t.Error("stride 8 for 12-byte elements accepted")
	}
}

func TestVecIters(t *testing.T) {
	data := []byte{
		0x00, 0x00, 0x80, 0x3f, // 1.0
		0x00, 0x00, 0x00, 0x40, // 2.0
		0x00, 0x00, 0x40, 0x40, // 3.0
	}
	it, err := Vec3s[float32](data, 12)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := it.Next(); !ok || v != [3]float32{1, 2, 3} {
		t.Errorf("vec3 = %v, %v", v, ok)
	}

	it2, err := Vec2s[uint8]([]byte{1, 2, 3, 4}, 2)
	if err != nil {
		t.Fatal(err)
	}
	it2.Next()
	if v, _ := it2.Next(); v != [2]uint8{3, 4} {
		t.Errorf("vec2 = %v", v)
	}

	m, err := Mat4s[uint8](bytesN(16), 16)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := m.Next(); !ok || v[0] != 0 || v[15] != 15 {
		t.Errorf("mat4 = %v, %v", v, ok)
	}
}
