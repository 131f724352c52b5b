package accessor

import (
	"fmt"
	"strings"

	"github.com/meshtools/gltf"
)

// BufferLookup materializes the bytes behind a buffer index. It must
// return the same bytes for the same index for the lifetime of the
// iterators built from it.
type BufferLookup func(buffer int) []byte

// DocumentLookup returns a lookup over the document's resolved buffer
// data.
func DocumentLookup(doc *gltf.Document) BufferLookup {
	return func(i int) []byte {
		if i < 0 || i >= len(doc.Buffers) {
			return nil
		}
		return doc.Buffers[i].Data
	}
}

// Source builds typed element sequences for the accessors of one
// document. The zero lookup reads doc.Buffers[i].Data.
type Source struct {
	doc    *gltf.Document
	lookup BufferLookup
}

func NewSource(doc *gltf.Document, lookup BufferLookup) *Source {
	if lookup == nil {
		lookup = DocumentLookup(doc)
	}
	return &Source{doc: doc, lookup: lookup}
}

// viewData returns the bytes of a buffer view from byteOffset to the
// view's end, plus the view's declared stride (0 when tightly packed).
func (s *Source) viewData(view, byteOffset uint32, compSize int) ([]byte, uint32, error) {
	if int(view) >= len(s.doc.BufferViews) {
		return nil, 0, fmt.Errorf("%w: buffer view %d of %d", ErrBounds, view, len(s.doc.BufferViews))
	}
	bv := s.doc.BufferViews[view]
	buf := s.lookup(int(bv.Buffer))
	if buf == nil {
		return nil, 0, fmt.Errorf("%w: buffer %d has no data", ErrBounds, bv.Buffer)
	}
	end := uint64(bv.ByteOffset) + uint64(bv.ByteLength)
	if end > uint64(len(buf)) {
		return nil, 0, fmt.Errorf("%w: view ends at %d, buffer has %d bytes", ErrBounds, end, len(buf))
	}
	if byteOffset > bv.ByteLength {
		return nil, 0, fmt.Errorf("%w: offset %d in %d-byte view", ErrBounds, byteOffset, bv.ByteLength)
	}
	if (uint64(bv.ByteOffset)+uint64(byteOffset))%uint64(compSize) != 0 {
		return nil, 0, fmt.Errorf("%w: offset %d, component %d bytes", ErrAlignment, bv.ByteOffset+byteOffset, compSize)
	}
	return buf[uint64(bv.ByteOffset)+uint64(byteOffset) : end], bv.ByteStride, nil
}

func (s *Source) sparseIndices(si *gltf.SparseIndices, count int) (uintSeq, error) {
	size := si.ComponentType.ByteSize()
	switch si.ComponentType {
	case gltf.ComponentUbyte, gltf.ComponentUshort, gltf.ComponentUint:
	default:
		return nil, fmt.Errorf("%w: sparse index component %v", ErrType, si.ComponentType)
	}
	data, _, err := s.viewData(si.BufferView, si.ByteOffset, size)
	if err != nil {
		return nil, err
	}
	if count*size > len(data) {
		return nil, fmt.Errorf("%w: %d sparse indices need %d bytes, view has %d", ErrBounds, count, count*size, len(data))
	}
	switch si.ComponentType {
	case gltf.ComponentUbyte:
		it, err := Scalars[uint8](data, 1)
		if err != nil {
			return nil, err
		}
		return widenSeq[uint8]{it.limit(count)}, nil
	case gltf.ComponentUshort:
		it, err := Scalars[uint16](data, 2)
		if err != nil {
			return nil, err
		}
		return widenSeq[uint16]{it.limit(count)}, nil
	default:
		it, err := Scalars[uint32](data, 4)
		if err != nil {
			return nil, err
		}
		return widenSeq[uint32]{it.limit(count)}, nil
	}
}

// buildSeq assembles the element sequence of acc: a strided iterator
// over its buffer view (or implicit zeros), with the sparse overlay on
// top when declared.
func buildSeq[E any, T Component](s *Source, acc *gltf.Accessor, comps int, mk func([]byte, int) (*Iter[E], error)) (Seq[E], error) {
	size := comps * componentSize[T]()
	count := int(acc.Count)
	var base Seq[E]
	if acc.BufferView != nil {
		data, declStride, err := s.viewData(*acc.BufferView, acc.ByteOffset, componentSize[T]())
		if err != nil {
			return nil, err
		}
		stride := int(declStride)
		if stride == 0 {
			stride = size
		}
		if count > 0 && (count-1)*stride+size > len(data) {
			return nil, fmt.Errorf("%w: %d elements need %d bytes, view has %d", ErrBounds, count, (count-1)*stride+size, len(data))
		}
		it, err := mk(data, stride)
		if err != nil {
			return nil, err
		}
		base = it.limit(count)
	}
	if acc.Sparse == nil {
		if base == nil {
			base = &zeroSeq[E]{n: count}
		}
		return base, nil
	}
	sp := acc.Sparse
	idx, err := s.sparseIndices(&sp.Indices, int(sp.Count))
	if err != nil {
		return nil, err
	}
	vdata, _, err := s.viewData(sp.Values.BufferView, sp.Values.ByteOffset, componentSize[T]())
	if err != nil {
		return nil, err
	}
	if int(sp.Count)*size > len(vdata) {
		return nil, fmt.Errorf("%w: %d sparse values need %d bytes, view has %d", ErrBounds, sp.Count, int(sp.Count)*size, len(vdata))
	}
	vit, err := mk(vdata, size)
	if err != nil {
		return nil, err
	}
	return newSparse[E](base, idx, vit.limit(int(sp.Count)), count), nil
}

func seqScalar[T Component](s *Source, acc *gltf.Accessor) (Seq[T], error) {
	return buildSeq[T, T](s, acc, 1, Scalars[T])
}

func seqVec2[T Component](s *Source, acc *gltf.Accessor) (Seq[[2]T], error) {
	return buildSeq[[2]T, T](s, acc, 2, Vec2s[T])
}

func seqVec3[T Component](s *Source, acc *gltf.Accessor) (Seq[[3]T], error) {
	return buildSeq[[3]T, T](s, acc, 3, Vec3s[T])
}

func seqVec4[T Component](s *Source, acc *gltf.Accessor) (Seq[[4]T], error) {
	return buildSeq[[4]T, T](s, acc, 4, Vec4s[T])
}

func seqMat4[T Component](s *Source, acc *gltf.Accessor) (Seq[[16]T], error) {
	return buildSeq[[16]T, T](s, acc, 16, Mat4s[T])
}

func seqErr(v any) error {
	if e, ok := v.(interface{ Err() error }); ok {
		return e.Err()
	}
	return nil
}

// Indices is a primitive index sequence in its storage width. Next
// widens to uint32.
type Indices struct {
	U8  Seq[uint8]
	U16 Seq[uint16]
	U32 Seq[uint32]
}

func (ix *Indices) Next() (uint32, bool) {
	switch {
	case ix.U8 != nil:
		v, ok := ix.U8.Next()
		return uint32(v), ok
	case ix.U16 != nil:
		v, ok := ix.U16.Next()
		return uint32(v), ok
	default:
		return ix.U32.Next()
	}
}

func (ix *Indices) Remaining() int {
	switch {
	case ix.U8 != nil:
		return ix.U8.Remaining()
	case ix.U16 != nil:
		return ix.U16.Remaining()
	default:
		return ix.U32.Remaining()
	}
}

func (ix *Indices) Err() error {
	switch {
	case ix.U8 != nil:
		return seqErr(ix.U8)
	case ix.U16 != nil:
		return seqErr(ix.U16)
	default:
		return seqErr(ix.U32)
	}
}

// Indices builds the index sequence of a primitive's indices accessor.
func (s *Source) Indices(acc *gltf.Accessor) (*Indices, error) {
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: indices must be SCALAR, got %v", ErrType, acc.Type)
	}
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		it, err := seqScalar[uint8](s, acc)
		return &Indices{U8: it}, err
	case gltf.ComponentUshort:
		it, err := seqScalar[uint16](s, acc)
		return &Indices{U16: it}, err
	case gltf.ComponentUint:
		it, err := seqScalar[uint32](s, acc)
		return &Indices{U32: it}, err
	}
	return nil, fmt.Errorf("%w: indices component %v", ErrType, acc.ComponentType)
}

// Positions builds the POSITION sequence (also morph target deltas).
func (s *Source) Positions(acc *gltf.Accessor) (Seq[[3]float32], error) {
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: positions must be VEC3 float, got %v %v", ErrType, acc.Type, acc.ComponentType)
	}
	return seqVec3[float32](s, acc)
}

// Normals builds the NORMAL sequence.
func (s *Source) Normals(acc *gltf.Accessor) (Seq[[3]float32], error) {
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: normals must be VEC3 float, got %v %v", ErrType, acc.Type, acc.ComponentType)
	}
	return seqVec3[float32](s, acc)
}

// Tangents builds the TANGENT sequence (xyz + handedness w).
func (s *Source) Tangents(acc *gltf.Accessor) (Seq[[4]float32], error) {
	if acc.Type != gltf.AccessorVec4 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: tangents must be VEC4 float, got %v %v", ErrType, acc.Type, acc.ComponentType)
	}
	return seqVec4[float32](s, acc)
}

// TexCoords is a TEXCOORD_n sequence in its storage type. Next widens
// normalized integer storage to float.
type TexCoords struct {
	U8  Seq[[2]uint8]
	U16 Seq[[2]uint16]
	F32 Seq[[2]float32]
}

func (tc *TexCoords) Next() ([2]float32, bool) {
	switch {
	case tc.U8 != nil:
		v, ok := tc.U8.Next()
		return normVec2U8(v), ok
	case tc.U16 != nil:
		v, ok := tc.U16.Next()
		return normVec2U16(v), ok
	default:
		return tc.F32.Next()
	}
}

func (tc *TexCoords) Remaining() int {
	switch {
	case tc.U8 != nil:
		return tc.U8.Remaining()
	case tc.U16 != nil:
		return tc.U16.Remaining()
	default:
		return tc.F32.Remaining()
	}
}

func (tc *TexCoords) Err() error {
	switch {
	case tc.U8 != nil:
		return seqErr(tc.U8)
	case tc.U16 != nil:
		return seqErr(tc.U16)
	default:
		return seqErr(tc.F32)
	}
}

func (s *Source) TexCoords(acc *gltf.Accessor) (*TexCoords, error) {
	if acc.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("%w: texcoords must be VEC2, got %v", ErrType, acc.Type)
	}
	switch {
	case acc.ComponentType == gltf.ComponentFloat:
		it, err := seqVec2[float32](s, acc)
		return &TexCoords{F32: it}, err
	case acc.ComponentType == gltf.ComponentUbyte && acc.Normalized:
		it, err := seqVec2[uint8](s, acc)
		return &TexCoords{U8: it}, err
	case acc.ComponentType == gltf.ComponentUshort && acc.Normalized:
		it, err := seqVec2[uint16](s, acc)
		return &TexCoords{U16: it}, err
	}
	return nil, fmt.Errorf("%w: texcoords component %v normalized=%v", ErrType, acc.ComponentType, acc.Normalized)
}

// Colors is a COLOR_n sequence in its storage type and arity.
type Colors struct {
	RGBU8   Seq[[3]uint8]
	RGBU16  Seq[[3]uint16]
	RGBF32  Seq[[3]float32]
	RGBAU8  Seq[[4]uint8]
	RGBAU16 Seq[[4]uint16]
	RGBAF32 Seq[[4]float32]
}

// NextRGBA widens to float RGBA; RGB storage gets alpha 1.
func (c *Colors) NextRGBA() ([4]float32, bool) {
	switch {
	case c.RGBU8 != nil:
		v, ok := c.RGBU8.Next()
		return [4]float32{NormU8(v[0]), NormU8(v[1]), NormU8(v[2]), 1}, ok
	case c.RGBU16 != nil:
		v, ok := c.RGBU16.Next()
		return [4]float32{NormU16(v[0]), NormU16(v[1]), NormU16(v[2]), 1}, ok
	case c.RGBF32 != nil:
		v, ok := c.RGBF32.Next()
		return [4]float32{v[0], v[1], v[2], 1}, ok
	case c.RGBAU8 != nil:
		v, ok := c.RGBAU8.Next()
		return normVec4U8(v), ok
	case c.RGBAU16 != nil:
		v, ok := c.RGBAU16.Next()
		return normVec4U16(v), ok
	default:
		return c.RGBAF32.Next()
	}
}

// NextRGBAU8 narrows to 8-bit RGBA. Lossy for float and 16-bit storage:
// round to nearest, saturating.
func (c *Colors) NextRGBAU8() ([4]uint8, bool) {
	v, ok := c.NextRGBA()
	return [4]uint8{DenormU8(v[0]), DenormU8(v[1]), DenormU8(v[2]), DenormU8(v[3])}, ok
}

// NextRGBAU16 narrows to 16-bit RGBA. 16-bit storage passes through;
// float and 8-bit storage is rounded, saturating.
func (c *Colors) NextRGBAU16() ([4]uint16, bool) {
	switch {
	case c.RGBAU16 != nil:
		return c.RGBAU16.Next()
	case c.RGBU16 != nil:
		v, ok := c.RGBU16.Next()
		return [4]uint16{v[0], v[1], v[2], 65535}, ok
	}
	v, ok := c.NextRGBA()
	return [4]uint16{DenormU16(v[0]), DenormU16(v[1]), DenormU16(v[2]), DenormU16(v[3])}, ok
}

func (c *Colors) Remaining() int {
	switch {
	case c.RGBU8 != nil:
		return c.RGBU8.Remaining()
	case c.RGBU16 != nil:
		return c.RGBU16.Remaining()
	case c.RGBF32 != nil:
		return c.RGBF32.Remaining()
	case c.RGBAU8 != nil:
		return c.RGBAU8.Remaining()
	case c.RGBAU16 != nil:
		return c.RGBAU16.Remaining()
	default:
		return c.RGBAF32.Remaining()
	}
}

func (c *Colors) Err() error {
	switch {
	case c.RGBU8 != nil:
		return seqErr(c.RGBU8)
	case c.RGBU16 != nil:
		return seqErr(c.RGBU16)
	case c.RGBF32 != nil:
		return seqErr(c.RGBF32)
	case c.RGBAU8 != nil:
		return seqErr(c.RGBAU8)
	case c.RGBAU16 != nil:
		return seqErr(c.RGBAU16)
	default:
		return seqErr(c.RGBAF32)
	}
}

func (s *Source) Colors(acc *gltf.Accessor) (*Colors, error) {
	switch acc.Type {
	case gltf.AccessorVec3:
		switch acc.ComponentType {
		case gltf.ComponentUbyte:
			it, err := seqVec3[uint8](s, acc)
			return &Colors{RGBU8: it}, err
		case gltf.ComponentUshort:
			it, err := seqVec3[uint16](s, acc)
			return &Colors{RGBU16: it}, err
		case gltf.ComponentFloat:
			it, err := seqVec3[float32](s, acc)
			return &Colors{RGBF32: it}, err
		}
	case gltf.AccessorVec4:
		switch acc.ComponentType {
		case gltf.ComponentUbyte:
			it, err := seqVec4[uint8](s, acc)
			return &Colors{RGBAU8: it}, err
		case gltf.ComponentUshort:
			it, err := seqVec4[uint16](s, acc)
			return &Colors{RGBAU16: it}, err
		case gltf.ComponentFloat:
			it, err := seqVec4[float32](s, acc)
			return &Colors{RGBAF32: it}, err
		}
	}
	return nil, fmt.Errorf("%w: colors %v %v", ErrType, acc.Type, acc.ComponentType)
}

// Joints is a JOINTS_n sequence. Next widens to 16-bit joint indices.
type Joints struct {
	U8  Seq[[4]uint8]
	U16 Seq[[4]uint16]
}

func (j *Joints) Next() ([4]uint16, bool) {
	if j.U8 != nil {
		v, ok := j.U8.Next()
		return [4]uint16{uint16(v[0]), uint16(v[1]), uint16(v[2]), uint16(v[3])}, ok
	}
	return j.U16.Next()
}

func (j *Joints) Remaining() int {
	if j.U8 != nil {
		return j.U8.Remaining()
	}
	return j.U16.Remaining()
}

func (j *Joints) Err() error {
	if j.U8 != nil {
		return seqErr(j.U8)
	}
	return seqErr(j.U16)
}

func (s *Source) Joints(acc *gltf.Accessor) (*Joints, error) {
	if acc.Type != gltf.AccessorVec4 {
		return nil, fmt.Errorf("%w: joints must be VEC4, got %v", ErrType, acc.Type)
	}
	switch acc.ComponentType {
	case gltf.ComponentUbyte:
		it, err := seqVec4[uint8](s, acc)
		return &Joints{U8: it}, err
	case gltf.ComponentUshort:
		it, err := seqVec4[uint16](s, acc)
		return &Joints{U16: it}, err
	}
	return nil, fmt.Errorf("%w: joints component %v", ErrType, acc.ComponentType)
}

// Weights is a WEIGHTS_n sequence. Next widens normalized integer
// storage to float.
type Weights struct {
	U8  Seq[[4]uint8]
	U16 Seq[[4]uint16]
	F32 Seq[[4]float32]
}

func (w *Weights) Next() ([4]float32, bool) {
	switch {
	case w.U8 != nil:
		v, ok := w.U8.Next()
		return normVec4U8(v), ok
	case w.U16 != nil:
		v, ok := w.U16.Next()
		return normVec4U16(v), ok
	default:
		return w.F32.Next()
	}
}

func (w *Weights) Remaining() int {
	switch {
	case w.U8 != nil:
		return w.U8.Remaining()
	case w.U16 != nil:
		return w.U16.Remaining()
	default:
		return w.F32.Remaining()
	}
}

func (w *Weights) Err() error {
	switch {
	case w.U8 != nil:
		return seqErr(w.U8)
	case w.U16 != nil:
		return seqErr(w.U16)
	default:
		return seqErr(w.F32)
	}
}

func (s *Source) Weights(acc *gltf.Accessor) (*Weights, error) {
	if acc.Type != gltf.AccessorVec4 {
		return nil, fmt.Errorf("%w: weights must be VEC4, got %v", ErrType, acc.Type)
	}
	switch {
	case acc.ComponentType == gltf.ComponentFloat:
		it, err := seqVec4[float32](s, acc)
		return &Weights{F32: it}, err
	case acc.ComponentType == gltf.ComponentUbyte && acc.Normalized:
		it, err := seqVec4[uint8](s, acc)
		return &Weights{U8: it}, err
	case acc.ComponentType == gltf.ComponentUshort && acc.Normalized:
		it, err := seqVec4[uint16](s, acc)
		return &Weights{U16: it}, err
	}
	return nil, fmt.Errorf("%w: weights component %v normalized=%v", ErrType, acc.ComponentType, acc.Normalized)
}

// Rotations is an animation rotation output sequence: quaternion
// components in their storage type. Next widens to float with signed
// normalization.
type Rotations struct {
	I8  Seq[[4]int8]
	U8  Seq[[4]uint8]
	I16 Seq[[4]int16]
	U16 Seq[[4]uint16]
	F32 Seq[[4]float32]
}

func (r *Rotations) Next() ([4]float32, bool) {
	switch {
	case r.I8 != nil:
		v, ok := r.I8.Next()
		return normVec4I8(v), ok
	case r.U8 != nil:
		v, ok := r.U8.Next()
		return normVec4U8(v), ok
	case r.I16 != nil:
		v, ok := r.I16.Next()
		return normVec4I16(v), ok
	case r.U16 != nil:
		v, ok := r.U16.Next()
		return normVec4U16(v), ok
	default:
		return r.F32.Next()
	}
}

func (r *Rotations) Remaining() int {
	switch {
	case r.I8 != nil:
		return r.I8.Remaining()
	case r.U8 != nil:
		return r.U8.Remaining()
	case r.I16 != nil:
		return r.I16.Remaining()
	case r.U16 != nil:
		return r.U16.Remaining()
	default:
		return r.F32.Remaining()
	}
}

func (r *Rotations) Err() error {
	switch {
	case r.I8 != nil:
		return seqErr(r.I8)
	case r.U8 != nil:
		return seqErr(r.U8)
	case r.I16 != nil:
		return seqErr(r.I16)
	case r.U16 != nil:
		return seqErr(r.U16)
	default:
		return seqErr(r.F32)
	}
}

func (s *Source) Rotations(acc *gltf.Accessor) (*Rotations, error) {
	if acc.Type != gltf.AccessorVec4 {
		return nil, fmt.Errorf("%w: rotations must be VEC4, got %v", ErrType, acc.Type)
	}
	switch acc.ComponentType {
	case gltf.ComponentFloat:
		it, err := seqVec4[float32](s, acc)
		return &Rotations{F32: it}, err
	case gltf.ComponentByte:
		it, err := seqVec4[int8](s, acc)
		return &Rotations{I8: it}, err
	case gltf.ComponentUbyte:
		it, err := seqVec4[uint8](s, acc)
		return &Rotations{U8: it}, err
	case gltf.ComponentShort:
		it, err := seqVec4[int16](s, acc)
		return &Rotations{I16: it}, err
	case gltf.ComponentUshort:
		it, err := seqVec4[uint16](s, acc)
		return &Rotations{U16: it}, err
	}
	return nil, fmt.Errorf("%w: rotations component %v", ErrType, acc.ComponentType)
}

// MorphWeights is an animation weights output sequence. Next widens
// normalized integer storage to float.
type MorphWeights struct {
	I8  Seq[int8]
	U8  Seq[uint8]
	I16 Seq[int16]
	U16 Seq[uint16]
	F32 Seq[float32]
}

func (m *MorphWeights) Next() (float32, bool) {
	switch {
	case m.I8 != nil:
		v, ok := m.I8.Next()
		return NormI8(v), ok
	case m.U8 != nil:
		v, ok := m.U8.Next()
		return NormU8(v), ok
	case m.I16 != nil:
		v, ok := m.I16.Next()
		return NormI16(v), ok
	case m.U16 != nil:
		v, ok := m.U16.Next()
		return NormU16(v), ok
	default:
		return m.F32.Next()
	}
}

func (m *MorphWeights) Remaining() int {
	switch {
	case m.I8 != nil:
		return m.I8.Remaining()
	case m.U8 != nil:
		return m.U8.Remaining()
	case m.I16 != nil:
		return m.I16.Remaining()
	case m.U16 != nil:
		return m.U16.Remaining()
	default:
		return m.F32.Remaining()
	}
}

func (m *MorphWeights) Err() error {
	switch {
	case m.I8 != nil:
		return seqErr(m.I8)
	case m.U8 != nil:
		return seqErr(m.U8)
	case m.I16 != nil:
		return seqErr(m.I16)
	case m.U16 != nil:
		return seqErr(m.U16)
	default:
		return seqErr(m.F32)
	}
}

func (s *Source) MorphWeights(acc *gltf.Accessor) (*MorphWeights, error) {
	if acc.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("%w: morph weights must be SCALAR, got %v", ErrType, acc.Type)
	}
	switch acc.ComponentType {
	case gltf.ComponentFloat:
		it, err := seqScalar[float32](s, acc)
		return &MorphWeights{F32: it}, err
	case gltf.ComponentByte:
		it, err := seqScalar[int8](s, acc)
		return &MorphWeights{I8: it}, err
	case gltf.ComponentUbyte:
		it, err := seqScalar[uint8](s, acc)
		return &MorphWeights{U8: it}, err
	case gltf.ComponentShort:
		it, err := seqScalar[int16](s, acc)
		return &MorphWeights{I16: it}, err
	case gltf.ComponentUshort:
		it, err := seqScalar[uint16](s, acc)
		return &MorphWeights{U16: it}, err
	}
	return nil, fmt.Errorf("%w: morph weights component %v", ErrType, acc.ComponentType)
}

// Times builds an animation sampler input sequence (keyframe seconds).
func (s *Source) Times(acc *gltf.Accessor) (Seq[float32], error) {
	if acc.Type != gltf.AccessorScalar || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: sampler input must be SCALAR float, got %v %v", ErrType, acc.Type, acc.ComponentType)
	}
	return seqScalar[float32](s, acc)
}

// Translations builds a translation or scale animation output sequence.
func (s *Source) Translations(acc *gltf.Accessor) (Seq[[3]float32], error) {
	if acc.Type != gltf.AccessorVec3 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: output must be VEC3 float, got %v %v", ErrType, acc.Type, acc.ComponentType)
	}
	return seqVec3[float32](s, acc)
}

// Matrices builds a MAT4 float sequence, e.g. a skin's inverse bind
// matrices.
func (s *Source) Matrices(acc *gltf.Accessor) (Seq[[16]float32], error) {
	if acc.Type != gltf.AccessorMat4 || acc.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("%w: matrices must be MAT4 float, got %v %v", ErrType, acc.Type, acc.ComponentType)
	}
	return seqMat4[float32](s, acc)
}

// Attribute dispatches on a primitive attribute semantic and returns
// the matching sequence: Seq[[3]float32] for POSITION and NORMAL,
// Seq[[4]float32] for TANGENT, *TexCoords, *Colors, *Joints or
// *Weights for the numbered semantics.
func (s *Source) Attribute(semantic string, acc *gltf.Accessor) (any, error) {
	switch {
	case semantic == gltf.POSITION:
		return s.Positions(acc)
	case semantic == gltf.NORMAL:
		return s.Normals(acc)
	case semantic == gltf.TANGENT:
		return s.Tangents(acc)
	case strings.HasPrefix(semantic, "TEXCOORD_"):
		return s.TexCoords(acc)
	case strings.HasPrefix(semantic, "COLOR_"):
		return s.Colors(acc)
	case strings.HasPrefix(semantic, "JOINTS_"):
		return s.Joints(acc)
	case strings.HasPrefix(semantic, "WEIGHTS_"):
		return s.Weights(acc)
	}
	return nil, fmt.Errorf("%w: semantic %q", ErrType, semantic)
}
