// Package glb reads and writes the binary glTF container format.
//
// A GLB file is a 12-byte header followed by a mandatory JSON chunk and
// an optional BIN chunk. Chunk payloads are padded to 4-byte boundaries,
// JSON with spaces and BIN with zeros.
package glb

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	Magic   = 0x46546c67 // "glTF"
	Version = 2

	ChunkJSON = 0x4e4f534a // "JSON"
	ChunkBIN  = 0x004e4942 // "BIN\0"

	headerSize = 12
	chunkSize  = 8
)

var (
	ErrMagic   = errors.New("glb: invalid magic")
	ErrVersion = errors.New("glb: unsupported version")
	ErrLength  = errors.New("glb: length mismatch")
	ErrChunkLength = errors.New("glb: chunk length exceeds data")
	ErrChunkType   = errors.New("glb: unexpected chunk type")
)

// Header is the fixed 12-byte GLB file header.
type Header struct {
	Magic   uint32
	Version uint32
	Length  uint32
}

// IsGLB reports whether b starts with a version 2 GLB header.
func IsGLB(b []byte) bool {
	return len(b) >= headerSize &&
		binary.LittleEndian.Uint32(b) == Magic &&
		binary.LittleEndian.Uint32(b[4:]) == Version
}

// DecodeBytes splits a GLB blob into its JSON payload and, if present,
// its binary payload. Both returned slices alias b.
func DecodeBytes(b []byte) (jsonData, bin []byte, err error) {
	if len(b) < headerSize {
		return nil, nil, fmt.Errorf("%w: %d bytes, want at least %d", ErrLength, len(b), headerSize)
	}
	h := Header{
		Magic:   binary.LittleEndian.Uint32(b),
		Version: binary.LittleEndian.Uint32(b[4:]),
		Length:  binary.LittleEndian.Uint32(b[8:]),
	}
	if h.Magic != Magic {
		return nil, nil, fmt.Errorf("%w: %08x", ErrMagic, h.Magic)
	}
	if h.Version != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	if uint64(h.Length) > uint64(len(b)) || h.Length < headerSize {
		return nil, nil, fmt.Errorf("%w: header declares %d bytes, have %d", ErrLength, h.Length, len(b))
	}
	rest := b[headerSize:h.Length]

	jsonData, rest, err = readChunk(rest, ChunkJSON)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 {
		length, typ, err := chunkHeader(rest)
		if err != nil {
			return nil, nil, err
		}
		switch typ {
		case ChunkBIN:
			if bin != nil {
				return nil, nil, fmt.Errorf("%w: duplicate BIN chunk", ErrChunkType)
			}
			bin = rest[chunkSize : chunkSize+length]
		case ChunkJSON:
			return nil, nil, fmt.Errorf("%w: duplicate JSON chunk", ErrChunkType)
		default:
			// Unknown chunks after the mandatory ones are skipped for
			// forward compatibility.
		}
		rest = rest[chunkSize+length:]
	}
	return jsonData, bin, nil
}

// Decode reads a complete GLB blob from r. The header's declared length
// bounds the read; trailing bytes in r are left unconsumed.
func Decode(r io.Reader) (jsonData, bin []byte, err error) {
	head := make([]byte, headerSize)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLength, err)
	}
	// Validate the header before allocating whatever length it declares.
	if m := binary.LittleEndian.Uint32(head); m != Magic {
		return nil, nil, fmt.Errorf("%w: %08x", ErrMagic, m)
	}
	if v := binary.LittleEndian.Uint32(head[4:]); v != Version {
		return nil, nil, fmt.Errorf("%w: %d", ErrVersion, v)
	}
	length := binary.LittleEndian.Uint32(head[8:])
	if length < headerSize {
		return nil, nil, fmt.Errorf("%w: header declares %d bytes", ErrLength, length)
	}
	buf := make([]byte, length)
	copy(buf, head)
	if _, err := io.ReadFull(r, buf[headerSize:]); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrLength, err)
	}
	return DecodeBytes(buf)
}

func chunkHeader(b []byte) (length int, typ uint32, err error) {
	if len(b) < chunkSize {
		return 0, 0, fmt.Errorf("%w: %d bytes left, chunk header needs %d", ErrChunkLength, len(b), chunkSize)
	}
	length = int(binary.LittleEndian.Uint32(b))
	typ = binary.LittleEndian.Uint32(b[4:])
	if length > len(b)-chunkSize {
		return 0, 0, fmt.Errorf("%w: chunk declares %d bytes, %d remain", ErrChunkLength, length, len(b)-chunkSize)
	}
	return length, typ, nil
}

func readChunk(b []byte, want uint32) (data, rest []byte, err error) {
	length, typ, err := chunkHeader(b)
	if err != nil {
		return nil, nil, err
	}
	if typ != want {
		return nil, nil, fmt.Errorf("%w: %08x, want %08x", ErrChunkType, typ, want)
	}
	return b[chunkSize : chunkSize+length], b[chunkSize+length:], nil
}

func padded(n int) int {
	return (n + 3) &^ 3
}

// EncodedLength returns the total byte length of the GLB blob Encode
// would produce for the given payloads.
func EncodedLength(jsonLen, binLen int) int {
	n := headerSize + chunkSize + padded(jsonLen)
	if binLen > 0 {
		n += chunkSize + padded(binLen)
	}
	return n
}

// Encode writes a GLB blob assembling jsonData and bin as the JSON and
// BIN chunks. If bin is empty the BIN chunk is omitted.
func Encode(w io.Writer, jsonData, bin []byte) error {
	total := EncodedLength(len(jsonData), len(bin))
	if uint64(total) > uint64(^uint32(0)) {
		return fmt.Errorf("%w: %d bytes exceed uint32", ErrLength, total)
	}
	if err := writeLE(w, Magic, Version, uint32(total)); err != nil {
		return err
	}
	if err := writeLE(w, uint32(padded(len(jsonData))), ChunkJSON); err != nil {
		return err
	}
	if err := writePadded(w, jsonData, 0x20); err != nil {
		return err
	}
	if len(bin) == 0 {
		return nil
	}
	if err := writeLE(w, uint32(padded(len(bin))), ChunkBIN); err != nil {
		return err
	}
	return writePadded(w, bin, 0x00)
}

func writeLE(w io.Writer, vs ...uint32) error {
	var b [4]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint32(b[:], v)
		if _, err := w.Write(b[:]); err != nil {
			return err
		}
	}
	return nil
}

func writePadded(w io.Writer, data []byte, pad byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	for i := len(data); i%4 != 0; i++ {
		if _, err := w.Write([]byte{pad}); err != nil {
			return err
		}
	}
	return nil
}
