package gltf

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/meshtools/gltf/glb"
)

// Open reads a .gltf or .glb file and resolves its buffers. External
// buffer URIs are loaded relative to the file's directory.
func Open(path string) (*Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(b, filepath.Dir(path))
}

// OpenReader decodes a document from r. dir is the base directory for
// relative buffer URIs; pass "" to skip external file resolution.
func OpenReader(r io.Reader, dir string) (*Document, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(b, dir)
}

// Decode parses either a GLB blob or bare document JSON from b.
func Decode(b []byte, dir string) (*Document, error) {
	var bin []byte
	if glb.IsGLB(b) {
		var err error
		b, bin, err = glb.DecodeBytes(b)
		if err != nil {
			return nil, err
		}
	}
	var doc Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	if err := resolveBuffers(&doc, dir, bin); err != nil {
		return nil, err
	}
	return &doc, nil
}

func resolveBuffers(doc *Document, dir string, bin []byte) error {
	for i, buf := range doc.Buffers {
		switch {
		case buf.URI == "":
			// The GLB binary chunk backs the first URI-less buffer.
			if i == 0 && bin != nil {
				buf.Data = bin
			}
		case strings.HasPrefix(buf.URI, "data:"):
			data, err := decodeDataURI(buf.URI)
			if err != nil {
				return fmt.Errorf("gltf: buffer %d: %w", i, err)
			}
			buf.Data = data
		default:
			if dir == "" {
				continue
			}
			rel, err := url.PathUnescape(buf.URI)
			if err != nil {
				return fmt.Errorf("gltf: buffer %d: %w", i, err)
			}
			data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("gltf: buffer %d: %w", i, err)
			}
			buf.Data = data
		}
		if buf.Data != nil && uint32(len(buf.Data)) < buf.ByteLength {
			return fmt.Errorf("gltf: buffer %d: %d bytes, byteLength declares %d", i, len(buf.Data), buf.ByteLength)
		}
	}
	return nil
}

func decodeDataURI(uri string) ([]byte, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data uri")
	}
	meta, payload := uri[len("data:"):comma], uri[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data uri encoding %q", meta)
	}
	return base64.StdEncoding.DecodeString(payload)
}
