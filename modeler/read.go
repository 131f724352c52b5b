// Package modeler reads and writes whole accessors as Go slices, on
// top of the accessor iteration layer. Readers hand back data in one
// canonical type per semantic regardless of the asset's storage choice;
// writers append packed data to the document's first buffer.
package modeler

import (
	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/accessor"
)

func finish[T any](s accessor.Seq[T], buf []T) ([]T, error) {
	if cap(buf) < s.Remaining() {
		buf = make([]T, 0, s.Remaining())
	} else {
		buf = buf[:0]
	}
	for {
		v, ok := s.Next()
		if !ok {
			break
		}
		buf = append(buf, v)
	}
	if e, ok := any(s).(interface{ Err() error }); ok && e.Err() != nil {
		return nil, e.Err()
	}
	return buf, nil
}

// ReadIndices returns the index accessor widened to uint32, reusing
// buffer when it has capacity.
func ReadIndices(doc *gltf.Document, acc *gltf.Accessor, buffer []uint32) ([]uint32, error) {
	ix, err := accessor.NewSource(doc, nil).Indices(acc)
	if err != nil {
		return nil, err
	}
	if cap(buffer) < ix.Remaining() {
		buffer = make([]uint32, 0, ix.Remaining())
	} else {
		buffer = buffer[:0]
	}
	for {
		v, ok := ix.Next()
		if !ok {
			break
		}
		buffer = append(buffer, v)
	}
	return buffer, ix.Err()
}

// ReadPosition returns the POSITION accessor (sparse included) as
// float vectors.
func ReadPosition(doc *gltf.Document, acc *gltf.Accessor, buffer [][3]float32) ([][3]float32, error) {
	pos, err := accessor.NewSource(doc, nil).Positions(acc)
	if err != nil {
		return nil, err
	}
	return finish(pos, buffer)
}

// ReadNormal returns the NORMAL accessor as float vectors.
func ReadNormal(doc *gltf.Document, acc *gltf.Accessor, buffer [][3]float32) ([][3]float32, error) {
	n, err := accessor.NewSource(doc, nil).Normals(acc)
	if err != nil {
		return nil, err
	}
	return finish(n, buffer)
}

// ReadTangent returns the TANGENT accessor as xyz+w float vectors.
func ReadTangent(doc *gltf.Document, acc *gltf.Accessor, buffer [][4]float32) ([][4]float32, error) {
	tn, err := accessor.NewSource(doc, nil).Tangents(acc)
	if err != nil {
		return nil, err
	}
	return finish(tn, buffer)
}

// ReadTextureCoord returns a TEXCOORD_n accessor widened to float.
func ReadTextureCoord(doc *gltf.Document, acc *gltf.Accessor, buffer [][2]float32) ([][2]float32, error) {
	tc, err := accessor.NewSource(doc, nil).TexCoords(acc)
	if err != nil {
		return nil, err
	}
	if cap(buffer) < tc.Remaining() {
		buffer = make([][2]float32, 0, tc.Remaining())
	} else {
		buffer = buffer[:0]
	}
	for {
		v, ok := tc.Next()
		if !ok {
			break
		}
		buffer = append(buffer, v)
	}
	return buffer, tc.Err()
}

// ReadColor returns a COLOR_n accessor as 8-bit RGBA. Float and 16-bit
// storage is narrowed with rounding.
func ReadColor(doc *gltf.Document, acc *gltf.Accessor, buffer [][4]uint8) ([][4]uint8, error) {
	c, err := accessor.NewSource(doc, nil).Colors(acc)
	if err != nil {
		return nil, err
	}
	if cap(buffer) < c.Remaining() {
		buffer = make([][4]uint8, 0, c.Remaining())
	} else {
		buffer = buffer[:0]
	}
	for {
		v, ok := c.NextRGBAU8()
		if !ok {
			break
		}
		buffer = append(buffer, v)
	}
	return buffer, c.Err()
}

// ReadColorFloat returns a COLOR_n accessor widened to float RGBA.
func ReadColorFloat(doc *gltf.Document, acc *gltf.Accessor, buffer [][4]float32) ([][4]float32, error) {
	c, err := accessor.NewSource(doc, nil).Colors(acc)
	if err != nil {
		return nil, err
	}
	if cap(buffer) < c.Remaining() {
		buffer = make([][4]float32, 0, c.Remaining())
	} else {
		buffer = buffer[:0]
	}
	for {
		v, ok := c.NextRGBA()
		if !ok {
			break
		}
		buffer = append(buffer, v)
	}
	return buffer, c.Err()
}

// ReadJoints returns a JOINTS_n accessor widened to 16-bit indices.
func ReadJoints(doc *gltf.Document, acc *gltf.Accessor, buffer [][4]uint16) ([][4]uint16, error) {
	j, err := accessor.NewSource(doc, nil).Joints(acc)
	if err != nil {
		return nil, err
	}
	if cap(buffer) < j.Remaining() {
		buffer = make([][4]uint16, 0, j.Remaining())
	} else {
		buffer = buffer[:0]
	}
	for {
		v, ok := j.Next()
		if !ok {
			break
		}
		buffer = append(buffer, v)
	}
	return buffer, j.Err()
}

// ReadWeights returns a WEIGHTS_n accessor widened to float.
func ReadWeights(doc *gltf.Document, acc *gltf.Accessor, buffer [][4]float32) ([][4]float32, error) {
	w, err := accessor.NewSource(doc, nil).Weights(acc)
	if err != nil {
		return nil, err
	}
	if cap(buffer) < w.Remaining() {
		buffer = make([][4]float32, 0, w.Remaining())
	} else {
		buffer = buffer[:0]
	}
	for {
		v, ok := w.Next()
		if !ok {
			break
		}
		buffer = append(buffer, v)
	}
	return buffer, w.Err()
}

// ReadInverseBindMatrices returns a skin's MAT4 accessor as flat
// column-major matrices.
func ReadInverseBindMatrices(doc *gltf.Document, acc *gltf.Accessor, buffer [][16]float32) ([][16]float32, error) {
	m, err := accessor.NewSource(doc, nil).Matrices(acc)
	if err != nil {
		return nil, err
	}
	return finish(m, buffer)
}
