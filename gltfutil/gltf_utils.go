// Package gltfutil provides document-level utilities: packing an asset
// into a single self-contained file and rescaling its geometry in
// place.
package gltfutil

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/chewxy/math32"

	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/modeler"
)

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// ToSingleFile inlines external image files and clears buffer URIs so
// the document can be saved as one GLB. Images that cannot be read are
// skipped.
func ToSingleFile(doc *gltf.Document, srcDir string) error {
	for _, b := range doc.Buffers {
		if b.Data != nil {
			b.URI = ""
		}
	}
	for _, m := range doc.Images {
		if m.BufferView != nil || m.URI == "" || strings.HasPrefix(m.URI, "data:") {
			continue
		}
		buf, err := os.ReadFile(filepath.Join(srcDir, filepath.FromSlash(m.URI)))
		if err != nil {
			continue
		}
		if m.MimeType == "" {
			if strings.HasSuffix(strings.ToLower(m.URI), ".png") {
				m.MimeType = "image/png"
			} else {
				m.MimeType = "image/jpeg"
			}
		}
		m.BufferView = gltf.Index(modeler.WriteBufferView(doc, gltf.TargetNone, buf))
		m.URI = ""
	}
	return nil
}

// Transform rescales and offsets all POSITION data in place: vertex
// positions, morph target deltas (scale only), node translations and
// the translation part of inverse bind matrices. Sparse position
// accessors are not rewritable in place and return an error.
func Transform(doc *gltf.Document, scale, offset *[3]float32) error {
	if scale == nil && offset == nil {
		return nil
	}
	s := [3]float32{1, 1, 1}
	if scale != nil {
		s = *scale
	}
	var o [3]float32
	if offset != nil {
		o = *offset
	}

	// Morph target deltas are relative, so they scale without offset.
	accs := map[uint32]bool{}
	for _, m := range doc.Meshes {
		for _, p := range m.Primitives {
			if a, ok := p.Attributes[gltf.POSITION]; ok {
				accs[a] = false
			}
			for _, t := range p.Targets {
				if a, ok := t[gltf.POSITION]; ok {
					accs[a] = true
				}
			}
		}
	}
	for a, delta := range accs {
		if err := transformPositions(doc, a, s, o, delta); err != nil {
			return err
		}
	}

	for _, node := range doc.Nodes {
		for i := 0; i < 3; i++ {
			node.Translation[i] = node.Translation[i]*s[i] + o[i]
		}
	}
	for _, skin := range doc.Skins {
		if skin.InverseBindMatrices != nil {
			if err := transformBindMatrices(doc, *skin.InverseBindMatrices, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func transformPositions(doc *gltf.Document, a uint32, s, o [3]float32, delta bool) error {
	if int(a) >= len(doc.Accessors) {
		return fmt.Errorf("gltfutil: accessor %d out of range", a)
	}
	acc := doc.Accessors[a]
	if acc.Sparse != nil {
		return fmt.Errorf("gltfutil: accessor %d: sparse POSITION not supported", a)
	}
	if acc.BufferView == nil {
		return nil
	}
	pos, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		return err
	}

	min := [3]float32{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := [3]float32{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for i := range pos {
		for c := 0; c < 3; c++ {
			pos[i][c] *= s[c]
			if !delta {
				pos[i][c] += o[c]
			}
			min[c] = math32.Min(min[c], pos[i][c])
			max[c] = math32.Max(max[c], pos[i][c])
		}
	}
	acc.Min = min[:]
	acc.Max = max[:]

	bv := doc.BufferViews[*acc.BufferView]
	buf := doc.Buffers[bv.Buffer]
	start := bv.ByteOffset + acc.ByteOffset
	return modeler.PutVec3(buf.Data[start:bv.ByteOffset+bv.ByteLength], bv.ByteStride, pos)
}

func transformBindMatrices(doc *gltf.Document, a uint32, s [3]float32) error {
	if int(a) >= len(doc.Accessors) {
		return fmt.Errorf("gltfutil: accessor %d out of range", a)
	}
	acc := doc.Accessors[a]
	if acc.BufferView == nil {
		return nil
	}
	mats, err := modeler.ReadInverseBindMatrices(doc, acc, nil)
	if err != nil {
		return err
	}
	// Column-major: translation lives in elements 12..14.
	for i := range mats {
		mats[i][12] *= s[0]
		mats[i][13] *= s[1]
		mats[i][14] *= s[2]
	}
	bv := doc.BufferViews[*acc.BufferView]
	buf := doc.Buffers[bv.Buffer]
	off := int(bv.ByteOffset + acc.ByteOffset)
	for i := range mats {
		for c, v := range mats[i] {
			binary.LittleEndian.PutUint32(buf.Data[off+i*64+c*4:], math.Float32bits(v))
		}
	}
	return nil
}
