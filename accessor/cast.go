package accessor

import "github.com/chewxy/math32"

// Normalized widening per the glTF specification: unsigned types map
// onto [0,1], signed types onto [-1,1] with the most negative value
// clamped so that the minimum is exactly -1.

func NormU8(v uint8) float32 {
	return float32(v) / 255
}

func NormI8(v int8) float32 {
	return math32.Max(float32(v)/127, -1)
}

func NormU16(v uint16) float32 {
	return float32(v) / 65535
}

func NormI16(v int16) float32 {
	return math32.Max(float32(v)/32767, -1)
}

// Lossy narrowing: round to nearest, saturating at the representable
// range.

func DenormU8(f float32) uint8 {
	return uint8(math32.Round(math32.Max(math32.Min(f, 1), 0) * 255))
}

func DenormU16(f float32) uint16 {
	return uint16(math32.Round(math32.Max(math32.Min(f, 1), 0) * 65535))
}

func normVec2U8(v [2]uint8) [2]float32 {
	return [2]float32{NormU8(v[0]), NormU8(v[1])}
}

func normVec2U16(v [2]uint16) [2]float32 {
	return [2]float32{NormU16(v[0]), NormU16(v[1])}
}

func normVec4U8(v [4]uint8) [4]float32 {
	return [4]float32{NormU8(v[0]), NormU8(v[1]), NormU8(v[2]), NormU8(v[3])}
}

func normVec4U16(v [4]uint16) [4]float32 {
	return [4]float32{NormU16(v[0]), NormU16(v[1]), NormU16(v[2]), NormU16(v[3])}
}

func normVec4I8(v [4]int8) [4]float32 {
	return [4]float32{NormI8(v[0]), NormI8(v[1]), NormI8(v[2]), NormI8(v[3])}
}

func normVec4I16(v [4]int16) [4]float32 {
	return [4]float32{NormI16(v[0]), NormI16(v[1]), NormI16(v[2]), NormI16(v[3])}
}
