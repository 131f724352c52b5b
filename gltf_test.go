package gltf_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/modeler"
)

const sampleJSON = `{
	"asset": {"version": "2.0"},
	"buffers": [{"byteLength": 42, "uri": "data:application/octet-stream;base64,AAAAAAAAAAAAAAAAAACAPwAAgD8AAIA/AAAAQAAAAEAAAABAAAABAAIA"}],
	"bufferViews": [
		{"buffer": 0, "byteLength": 36},
		{"buffer": 0, "byteOffset": 36, "byteLength": 6, "target": 34963}
	],
	"accessors": [
		{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [0,0,0], "max": [2,2,2]},
		{"bufferView": 1, "componentType": 5123, "count": 3, "type": "SCALAR"}
	],
	"meshes": [{"primitives": [{"attributes": {"POSITION": 0}, "indices": 1, "mode": 4}]}],
	"nodes": [{"mesh": 0, "translation": [1, 2, 3]}],
	"scenes": [{"nodes": [0]}],
	"scene": 0
}`

func TestDecodeJSONDocument(t *testing.T) {
	doc, err := gltf.Decode([]byte(sampleJSON), "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Asset.Version != "2.0" {
		t.Errorf("version = %q", doc.Asset.Version)
	}
	acc := doc.Accessors[0]
	if acc.ComponentType != gltf.ComponentFloat || acc.Type != gltf.AccessorVec3 {
		t.Errorf("accessor = %v %v", acc.ComponentType, acc.Type)
	}
	if doc.Accessors[1].ComponentType != gltf.ComponentUshort {
		t.Errorf("index accessor = %v", doc.Accessors[1].ComponentType)
	}
	if len(doc.Buffers[0].Data) != 42 {
		t.Errorf("buffer data = %d bytes", len(doc.Buffers[0].Data))
	}
	if doc.Meshes[0].Primitives[0].Mode != gltf.PrimitiveTriangles {
		t.Errorf("mode = %v", doc.Meshes[0].Primitives[0].Mode)
	}

	pos, err := modeler.ReadPosition(doc, acc, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(pos) != 3 || pos[2] != [3]float32{2, 2, 2} {
		t.Errorf("positions = %v", pos)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint32{0, 1, 2})
	doc.Meshes = []*gltf.Mesh{{Primitives: []*gltf.Primitive{{
		Attributes: map[string]uint32{gltf.POSITION: pos},
		Indices:    gltf.Index(idx),
	}}}}

	var blob bytes.Buffer
	if err := gltf.EncodeBinary(&blob, doc); err != nil {
		t.Fatal(err)
	}

	got, err := gltf.Decode(blob.Bytes(), "")
	if err != nil {
		t.Fatal(err)
	}
	p, err := modeler.ReadPosition(got, got.Accessors[pos], nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 || p[1] != [3]float32{1, 0, 0} {
		t.Errorf("positions = %v", p)
	}
	ix, err := modeler.ReadIndices(got, got.Accessors[idx], nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(ix) != 3 || ix[2] != 2 {
		t.Errorf("indices = %v", ix)
	}
}

func TestEncodeEmbedsBuffers(t *testing.T) {
	doc := gltf.NewDocument()
	modeler.WritePosition(doc, [][3]float32{{1, 2, 3}})

	var out bytes.Buffer
	if err := gltf.Encode(&out, doc); err != nil {
		t.Fatal(err)
	}
	if doc.Buffers[0].URI != "" {
		t.Error("buffer URI not restored after encode")
	}
	got, err := gltf.Decode(out.Bytes(), "")
	if err != nil {
		t.Fatal(err)
	}
	p, err := modeler.ReadPosition(got, got.Accessors[0], nil)
	if err != nil {
		t.Fatal(err)
	}
	if p[0] != [3]float32{1, 2, 3} {
		t.Errorf("positions = %v", p)
	}
}

func TestNodeTransformDefaults(t *testing.T) {
	doc, err := gltf.Decode([]byte(`{
		"asset": {"version": "2.0"},
		"nodes": [
			{"name": "n"},
			{"rotation": [0, 0.5, 0, 1], "scale": [2, 2, 2], "translation": [1, 0, 0]}
		]
	}`), "")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Nodes[0].Rotation != [4]float32{0, 0, 0, 1} {
		t.Errorf("rotation = %v, want identity", doc.Nodes[0].Rotation)
	}
	if doc.Nodes[0].Scale != [3]float32{1, 1, 1} {
		t.Errorf("scale = %v, want ones", doc.Nodes[0].Scale)
	}

	// Default transforms stay out of the serialized form.
	b, err := json.Marshal(doc.Nodes[0])
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"name":"n"}` {
		t.Errorf("marshal = %s", b)
	}

	var out bytes.Buffer
	if err := gltf.Encode(&out, doc); err != nil {
		t.Fatal(err)
	}
	again, err := gltf.Decode(out.Bytes(), "")
	if err != nil {
		t.Fatal(err)
	}
	if again.Nodes[0].Rotation != [4]float32{0, 0, 0, 1} || again.Nodes[0].Scale != [3]float32{1, 1, 1} {
		t.Errorf("round trip transforms = %v %v", again.Nodes[0].Rotation, again.Nodes[0].Scale)
	}
	if again.Nodes[1].Rotation != [4]float32{0, 0.5, 0, 1} ||
		again.Nodes[1].Scale != [3]float32{2, 2, 2} ||
		again.Nodes[1].Translation != [3]float32{1, 0, 0} {
		t.Errorf("round trip node = %+v", again.Nodes[1])
	}
}

func TestEnumCodecs(t *testing.T) {
	var c gltf.ComponentType
	if err := json.Unmarshal([]byte("5126"), &c); err != nil || c != gltf.ComponentFloat {
		t.Errorf("componentType = %v, err %v", c, err)
	}
	if err := json.Unmarshal([]byte("1234"), &c); err == nil {
		t.Error("bad componentType accepted")
	}
	var a gltf.AccessorType
	if err := json.Unmarshal([]byte(`"MAT4"`), &a); err != nil || a != gltf.AccessorMat4 {
		t.Errorf("accessorType = %v, err %v", a, err)
	}
	if b, _ := json.Marshal(gltf.AccessorVec3); string(b) != `"VEC3"` {
		t.Errorf("marshal = %s", b)
	}
}

func TestSizeOfElement(t *testing.T) {
	tests := []struct {
		c    gltf.ComponentType
		a    gltf.AccessorType
		want int
	}{
		{gltf.ComponentByte, gltf.AccessorScalar, 1},
		{gltf.ComponentUshort, gltf.AccessorVec2, 4},
		{gltf.ComponentFloat, gltf.AccessorVec3, 12},
		{gltf.ComponentFloat, gltf.AccessorMat2, 16},
		{gltf.ComponentFloat, gltf.AccessorMat3, 36},
		{gltf.ComponentFloat, gltf.AccessorMat4, 64},
		{gltf.ComponentUbyte, gltf.AccessorVec4, 4},
	}
	for _, tt := range tests {
		if got := gltf.SizeOfElement(tt.c, tt.a); got != tt.want {
			t.Errorf("SizeOfElement(%v, %v) = %d, want %d", tt.c, tt.a, got, tt.want)
		}
	}
}

type testExt struct {
	Flag bool `json:"flag"`
}

func TestExtensionRegistry(t *testing.T) {
	gltf.RegisterExtension("TEST_ext", func(b []byte) (interface{}, error) {
		var e testExt
		err := json.Unmarshal(b, &e)
		return &e, err
	})
	doc, err := gltf.Decode([]byte(`{
		"asset": {"version": "2.0"},
		"extensions": {"TEST_ext": {"flag": true}, "TEST_other": {"x": 1}}
	}`), "")
	if err != nil {
		t.Fatal(err)
	}
	e, ok := doc.Extensions["TEST_ext"].(*testExt)
	if !ok || !e.Flag {
		t.Errorf("extension = %#v", doc.Extensions["TEST_ext"])
	}
	if _, ok := doc.Extensions["TEST_other"].(json.RawMessage); !ok {
		t.Errorf("unregistered extension = %T", doc.Extensions["TEST_other"])
	}
}
