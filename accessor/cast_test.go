package accessor

import "testing"

func TestNormalization(t *testing.T) {
	if NormU8(255) != 1 || NormU8(0) != 0 {
		t.Error("u8 endpoints")
	}
	if NormU16(65535) != 1 {
		t.Error("u16 endpoint")
	}
	if NormI8(-128) != -1 || NormI8(127) != 1 {
		t.Error("i8 endpoints")
	}
	if NormI16(-32768) != -1 || NormI16(32767) != 1 {
		t.Error("i16 endpoints")
	}
}

func TestDenormRoundSaturate(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128}, // 127.5 rounds to nearest
		{1.5, 255}, // saturates above 1
		{-0.2, 0},  // saturates below 0
	}
	for _, tt := range tests {
		if got := DenormU8(tt.in); got != tt.want {
			t.Errorf("DenormU8(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := DenormU16(1); got != 65535 {
		t.Errorf("DenormU16(1) = %d", got)
	}
}
