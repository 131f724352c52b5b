// Package imageutil decodes the textures referenced by a document,
// whether they live in a buffer view, a data URI or an external file.
package imageutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/blezek/tga"
	_ "github.com/oov/psd"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/meshtools/gltf"
)

// Bytes returns the encoded bytes of a document image. dir is the base
// directory for relative URIs.
func Bytes(doc *gltf.Document, img *gltf.Image, dir string) ([]byte, error) {
	switch {
	case img.BufferView != nil:
		if int(*img.BufferView) >= len(doc.BufferViews) {
			return nil, fmt.Errorf("imageutil: buffer view %d out of range", *img.BufferView)
		}
		bv := doc.BufferViews[*img.BufferView]
		if int(bv.Buffer) >= len(doc.Buffers) {
			return nil, fmt.Errorf("imageutil: buffer %d out of range", bv.Buffer)
		}
		data := doc.Buffers[bv.Buffer].Data
		end := uint64(bv.ByteOffset) + uint64(bv.ByteLength)
		if end > uint64(len(data)) {
			return nil, fmt.Errorf("imageutil: view ends at %d, buffer has %d bytes", end, len(data))
		}
		return data[bv.ByteOffset:end], nil
	case strings.HasPrefix(img.URI, "data:"):
		comma := strings.IndexByte(img.URI, ',')
		if comma < 0 {
			return nil, fmt.Errorf("imageutil: malformed data uri")
		}
		return base64.StdEncoding.DecodeString(img.URI[comma+1:])
	case img.URI != "":
		return os.ReadFile(filepath.Join(dir, filepath.FromSlash(img.URI)))
	}
	return nil, fmt.Errorf("imageutil: image has no data source")
}

// Decode returns the pixels of a document image. TGA files carry no
// magic usable by image.Decode, so they get a dedicated retry.
func Decode(doc *gltf.Document, img *gltf.Image, dir string) (image.Image, error) {
	data, err := Bytes(doc, img, dir)
	if err != nil {
		return nil, err
	}
	m, _, err := image.Decode(bytes.NewReader(data))
	if err != nil && isTGA(img) {
		return tga.Decode(bytes.NewReader(data))
	}
	return m, err
}

func isTGA(img *gltf.Image) bool {
	return strings.EqualFold(filepath.Ext(img.URI), ".tga") ||
		img.MimeType == "image/x-tga" || img.MimeType == "image/tga"
}

// Resize scales img to w x h.
func Resize(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
