package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/meshtools/gltf"
	"github.com/meshtools/gltf/modeler"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestDecodeFromBufferView(t *testing.T) {
	doc := gltf.NewDocument()
	view := modeler.WriteBufferView(doc, gltf.TargetNone, pngBytes(t, 2, 2))
	doc.Images = []*gltf.Image{{BufferView: gltf.Index(view), MimeType: "image/png"}}

	m, err := Decode(doc, doc.Images[0], "")
	if err != nil {
		t.Fatal(err)
	}
	if m.Bounds().Dx() != 2 || m.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", m.Bounds())
	}
}

func TestDecodeNoSource(t *testing.T) {
	doc := gltf.NewDocument()
	if _, err := Decode(doc, &gltf.Image{}, ""); err == nil {
		t.Error("image without source accepted")
	}
}

func TestResize(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	small := Resize(img, 2, 2)
	if small.Bounds().Dx() != 2 || small.Bounds().Dy() != 2 {
		t.Errorf("bounds = %v", small.Bounds())
	}
}
