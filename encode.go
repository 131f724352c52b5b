package gltf

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"os"

	"github.com/meshtools/gltf/glb"
)

// Save writes the document as a .gltf JSON file. Buffers holding data
// but no URI are embedded as base64 data URIs.
func Save(doc *Document, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return Encode(w, doc)
}

// Encode writes the document as JSON to w.
func Encode(w io.Writer, doc *Document) error {
	restore := embedBuffers(doc)
	defer restore()
	enc := json.NewEncoder(w)
	return enc.Encode(doc)
}

// SaveBinary writes the document as a GLB file, packing the first
// URI-less buffer into the binary chunk.
func SaveBinary(doc *Document, path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return EncodeBinary(w, doc)
}

// EncodeBinary writes the document as a GLB blob to w.
func EncodeBinary(w io.Writer, doc *Document) error {
	var bin []byte
	if len(doc.Buffers) > 0 && doc.Buffers[0].URI == "" {
		bin = doc.Buffers[0].Data
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return glb.Encode(w, jsonData, bin)
}

// embedBuffers temporarily rewrites URI-less data-carrying buffers as
// data URIs for standalone JSON output. The returned func undoes it.
func embedBuffers(doc *Document) func() {
	saved := map[int]string{}
	for i, buf := range doc.Buffers {
		if buf.URI == "" && buf.Data != nil {
			saved[i] = buf.URI
			buf.URI = "data:application/octet-stream;base64," +
				base64.StdEncoding.EncodeToString(buf.Data)
		}
	}
	return func() {
		for i, uri := range saved {
			doc.Buffers[i].URI = uri
		}
	}
}
