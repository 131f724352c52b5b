package gltfutil

import (
	"testing"

	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/modeler"
)

func TestTransform(t *testing.T) {
	doc := gltf.NewDocument()
	pos := WritePrimitive(doc, [][3]float32{{1, 1, 1}, {-1, 0, 2}})
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0), Translation: [3]float32{1, 2, 3}}}

	scale := [3]float32{2, 2, 2}
	offset := [3]float32{0, 10, 0}
	if err := Transform(doc, &scale, &offset); err != nil {
		t.Fatal(err)
	}

	got, err := modeler.ReadPosition(doc, doc.Accessors[pos], nil)
	if err != nil {
		t.Fatal(err)
	}
	want := [][3]float32{{2, 12, 2}, {-2, 10, 4}}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	acc := doc.Accessors[pos]
	if acc.Min[0] != -2 || acc.Max[1] != 12 {
		t.Errorf("bounds = %v %v", acc.Min, acc.Max)
	}
	if doc.Nodes[0].Translation != [3]float32{2, 14, 6} {
		t.Errorf("node translation = %v", doc.Nodes[0].Translation)
	}
}

func TestTransformNilIsNoop(t *testing.T) {
	doc := gltf.NewDocument()
	WritePrimitive(doc, [][3]float32{{1, 2, 3}})
	if err := Transform(doc, nil, nil); err != nil {
		t.Fatal(err)
	}
	got, _ := modeler.ReadPosition(doc, doc.Accessors[0], nil)
	if got[0] != [3]float32{1, 2, 3} {
		t.Errorf("position = %v", got[0])
	}
}

func TestTransformRejectsSparse(t *testing.T) {
	doc := gltf.NewDocument()
	WritePrimitive(doc, [][3]float32{{1, 2, 3}})
	doc.Accessors[0].Sparse = &gltf.Sparse{Count: 1}
	scale := [3]float32{2, 2, 2}
	if err := Transform(doc, &scale, nil); err == nil {
		t.Error("sparse accessor accepted")
	}
}

// WritePrimitive appends a mesh with one triangle-less primitive over
// pos and returns the position accessor index.
func WritePrimitive(doc *gltf.Document, pos [][3]float32) uint32 {
	a := modeler.WritePosition(doc, pos)
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Primitives: []*gltf.Primitive{{Attributes: map[string]uint32{gltf.POSITION: a}}},
	})
	return a
}
