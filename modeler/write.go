package modeler

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/chewxy/math32"

	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/accessor"
)

// WriteBufferView appends data to the document's first buffer, aligned
// to a 4-byte boundary, and registers a buffer view over it. It
// returns the new view's index.
func WriteBufferView(doc *gltf.Document, target gltf.Target, data []byte) uint32 {
	if len(doc.Buffers) == 0 {
		doc.Buffers = append(doc.Buffers, &gltf.Buffer{})
	}
	buf := doc.Buffers[0]
	for len(buf.Data)%4 != 0 {
		buf.Data = append(buf.Data, 0)
	}
	doc.BufferViews = append(doc.BufferViews, &gltf.BufferView{
		Buffer:     0,
		ByteOffset: uint32(len(buf.Data)),
		ByteLength: uint32(len(data)),
		Target:     target,
	})
	buf.Data = append(buf.Data, data...)
	buf.ByteLength = uint32(len(buf.Data))
	return uint32(len(doc.BufferViews) - 1)
}

func pack(data any) []byte {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, data)
	return buf.Bytes()
}

func addAccessor(doc *gltf.Document, target gltf.Target, data any, c gltf.ComponentType, t gltf.AccessorType, count int, normalized bool) uint32 {
	view := WriteBufferView(doc, target, pack(data))
	doc.Accessors = append(doc.Accessors, &gltf.Accessor{
		BufferView:    gltf.Index(view),
		ComponentType: c,
		Type:          t,
		Count:         uint32(count),
		Normalized:    normalized,
	})
	return uint32(len(doc.Accessors) - 1)
}

// WriteIndices stores indices in the narrowest unsigned type that fits
// and returns the accessor index.
func WriteIndices(doc *gltf.Document, indices []uint32) uint32 {
	var max uint32
	for _, v := range indices {
		if v > max {
			max = v
		}
	}
	if max <= math.MaxUint16 {
		narrow := make([]uint16, len(indices))
		for i, v := range indices {
			narrow[i] = uint16(v)
		}
		return addAccessor(doc, gltf.TargetElementArrayBuffer, narrow, gltf.ComponentUshort, gltf.AccessorScalar, len(indices), false)
	}
	return addAccessor(doc, gltf.TargetElementArrayBuffer, indices, gltf.ComponentUint, gltf.AccessorScalar, len(indices), false)
}

// WritePosition stores vertex positions and fills in the accessor's
// min/max bounds.
func WritePosition(doc *gltf.Document, pos [][3]float32) uint32 {
	idx := addAccessor(doc, gltf.TargetArrayBuffer, pos, gltf.ComponentFloat, gltf.AccessorVec3, len(pos), false)
	if len(pos) == 0 {
		return idx
	}
	acc := doc.Accessors[idx]
	min, max := pos[0], pos[0]
	for _, p := range pos[1:] {
		for i := 0; i < 3; i++ {
			min[i] = math32.Min(min[i], p[i])
			max[i] = math32.Max(max[i], p[i])
		}
	}
	acc.Min = min[:]
	acc.Max = max[:]
	return idx
}

func WriteNormal(doc *gltf.Document, normals [][3]float32) uint32 {
	return addAccessor(doc, gltf.TargetArrayBuffer, normals, gltf.ComponentFloat, gltf.AccessorVec3, len(normals), false)
}

func WriteTangent(doc *gltf.Document, tangents [][4]float32) uint32 {
	return addAccessor(doc, gltf.TargetArrayBuffer, tangents, gltf.ComponentFloat, gltf.AccessorVec4, len(tangents), false)
}

func WriteTextureCoord(doc *gltf.Document, tc [][2]float32) uint32 {
	return addAccessor(doc, gltf.TargetArrayBuffer, tc, gltf.ComponentFloat, gltf.AccessorVec2, len(tc), false)
}

// WriteColor stores 8-bit RGBA vertex colors as a normalized accessor.
func WriteColor(doc *gltf.Document, colors [][4]uint8) uint32 {
	return addAccessor(doc, gltf.TargetArrayBuffer, colors, gltf.ComponentUbyte, gltf.AccessorVec4, len(colors), true)
}

func WriteJoints(doc *gltf.Document, joints [][4]uint16) uint32 {
	return addAccessor(doc, gltf.TargetArrayBuffer, joints, gltf.ComponentUshort, gltf.AccessorVec4, len(joints), false)
}

func WriteWeights(doc *gltf.Document, weights [][4]float32) uint32 {
	return addAccessor(doc, gltf.TargetArrayBuffer, weights, gltf.ComponentFloat, gltf.AccessorVec4, len(weights), false)
}

// WriteInverseBindMatrices stores flat column-major matrices for a
// skin.
func WriteInverseBindMatrices(doc *gltf.Document, matrices [][16]float32) uint32 {
	return addAccessor(doc, gltf.TargetNone, matrices, gltf.ComponentFloat, gltf.AccessorMat4, len(matrices), false)
}

// PutVec3 writes float vectors into dst in place, honoring stride
// (0 means tightly packed). Used to rewrite existing buffer regions.
func PutVec3(dst []byte, stride uint32, data [][3]float32) error {
	const size = 12
	if stride == 0 {
		stride = size
	}
	if stride < size {
		return fmt.Errorf("%w: stride %d", accessor.ErrStride, stride)
	}
	if len(data) > 0 {
		if need := (len(data)-1)*int(stride) + size; need > len(dst) {
			return fmt.Errorf("%w: need %d bytes, have %d", accessor.ErrBounds, need, len(dst))
		}
	}
	for i, v := range data {
		off := i * int(stride)
		for c := 0; c < 3; c++ {
			binary.LittleEndian.PutUint32(dst[off+4*c:], math.Float32bits(v[c]))
		}
	}
	return nil
}
