// Package gltf implements reading and writing of glTF 2.0 documents,
// including the GLB binary container and typed access to binary
// geometry and animation data.
package gltf

import "encoding/json"

// Document is the root object of a glTF asset.
type Document struct {
	ExtensionsUsed     []string      `json:"extensionsUsed,omitempty"`
	ExtensionsRequired []string      `json:"extensionsRequired,omitempty"`
	Accessors          []*Accessor   `json:"accessors,omitempty"`
	Animations         []*Animation  `json:"animations,omitempty"`
	Asset              Asset         `json:"asset"`
	Buffers            []*Buffer     `json:"buffers,omitempty"`
	BufferViews        []*BufferView `json:"bufferViews,omitempty"`
	Cameras            []*Camera     `json:"cameras,omitempty"`
	Images             []*Image      `json:"images,omitempty"`
	Materials          []*Material   `json:"materials,omitempty"`
	Meshes             []*Mesh       `json:"meshes,omitempty"`
	Nodes              []*Node       `json:"nodes,omitempty"`
	Samplers           []*Sampler    `json:"samplers,omitempty"`
	Scene              *uint32       `json:"scene,omitempty"`
	Scenes             []*Scene      `json:"scenes,omitempty"`
	Skins              []*Skin       `json:"skins,omitempty"`
	Textures           []*Texture    `json:"textures,omitempty"`
	Extensions         Extensions    `json:"extensions,omitempty"`
}

// NewDocument returns a document with the asset header filled in and an
// empty default scene, ready for the modeler write helpers.
func NewDocument() *Document {
	return &Document{
		Asset:  Asset{Version: "2.0", Generator: "github.com/meshtools/gltf"},
		Scene:  Index(0),
		Scenes: []*Scene{{Name: "Scene"}},
	}
}

type Asset struct {
	Copyright  string `json:"copyright,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Version    string `json:"version"`
	MinVersion string `json:"minVersion,omitempty"`
}

type Scene struct {
	Name  string   `json:"name,omitempty"`
	Nodes []uint32 `json:"nodes,omitempty"`
}

type Node struct {
	Name        string       `json:"name,omitempty"`
	Camera      *uint32      `json:"camera,omitempty"`
	Children    []uint32     `json:"children,omitempty"`
	Skin        *uint32      `json:"skin,omitempty"`
	Matrix      *[16]float32 `json:"matrix,omitempty"`
	Mesh        *uint32      `json:"mesh,omitempty"`
	Rotation    [4]float32   `json:"rotation"`
	Scale       [3]float32   `json:"scale"`
	Translation [3]float32   `json:"translation"`
	Weights     []float32    `json:"weights,omitempty"`
	Extensions  Extensions   `json:"extensions,omitempty"`
}

var (
	defaultRotation = [4]float32{0, 0, 0, 1}
	defaultScale    = [3]float32{1, 1, 1}
)

// Absent rotation and scale mean identity; the zero array would be an
// invalid transform.
func (n *Node) UnmarshalJSON(b []byte) error {
	type alias Node
	tmp := alias{Rotation: defaultRotation, Scale: defaultScale}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*n = Node(tmp)
	return nil
}

func (n *Node) MarshalJSON() ([]byte, error) {
	type alias Node
	out := struct {
		alias
		Rotation    *[4]float32 `json:"rotation,omitempty"`
		Scale       *[3]float32 `json:"scale,omitempty"`
		Translation *[3]float32 `json:"translation,omitempty"`
	}{alias: alias(*n)}
	if n.Rotation != defaultRotation && n.Rotation != ([4]float32{}) {
		out.Rotation = &n.Rotation
	}
	if n.Scale != defaultScale && n.Scale != ([3]float32{}) {
		out.Scale = &n.Scale
	}
	if n.Translation != ([3]float32{}) {
		out.Translation = &n.Translation
	}
	return json.Marshal(&out)
}

type Mesh struct {
	Name       string       `json:"name,omitempty"`
	Primitives []*Primitive `json:"primitives"`
	Weights    []float32    `json:"weights,omitempty"`
}

// Primitive maps attribute semantics (POSITION, NORMAL, TEXCOORD_0, ...)
// to accessor indices.
type Primitive struct {
	Attributes map[string]uint32   `json:"attributes"`
	Indices    *uint32             `json:"indices,omitempty"`
	Material   *uint32             `json:"material,omitempty"`
	Mode       PrimitiveMode       `json:"mode"`
	Targets    []map[string]uint32 `json:"targets,omitempty"`
}

// An absent mode means triangles, not the zero enum value.
func (p *Primitive) UnmarshalJSON(b []byte) error {
	type alias Primitive
	tmp := alias{Mode: PrimitiveTriangles}
	if err := json.Unmarshal(b, &tmp); err != nil {
		return err
	}
	*p = Primitive(tmp)
	return nil
}

type Buffer struct {
	Name       string `json:"name,omitempty"`
	URI        string `json:"uri,omitempty"`
	ByteLength uint32 `json:"byteLength"`
	Data       []byte `json:"-"`
}

// BufferView is a contiguous byte range of a buffer. A non-zero
// ByteStride describes interleaved layouts.
type BufferView struct {
	Buffer     uint32 `json:"buffer"`
	ByteOffset uint32 `json:"byteOffset,omitempty"`
	ByteLength uint32 `json:"byteLength"`
	ByteStride uint32 `json:"byteStride,omitempty"`
	Target     Target `json:"target,omitempty"`
}

// Accessor is a typed view into a buffer view: Count elements of
// ComponentType components grouped per Type, starting at ByteOffset
// relative to the view.
type Accessor struct {
	Name          string        `json:"name,omitempty"`
	BufferView    *uint32       `json:"bufferView,omitempty"`
	ByteOffset    uint32        `json:"byteOffset,omitempty"`
	ComponentType ComponentType `json:"componentType"`
	Normalized    bool          `json:"normalized,omitempty"`
	Count         uint32        `json:"count"`
	Type          AccessorType  `json:"type"`
	Max           []float32     `json:"max,omitempty"`
	Min           []float32     `json:"min,omitempty"`
	Sparse        *Sparse       `json:"sparse,omitempty"`
}

// Sparse stores only the elements of an accessor that deviate from a
// base (usually all-zero) sequence.
type Sparse struct {
	Count   uint32        `json:"count"`
	Indices SparseIndices `json:"indices"`
	Values  SparseValues  `json:"values"`
}

type SparseIndices struct {
	BufferView    uint32        `json:"bufferView"`
	ByteOffset    uint32        `json:"byteOffset,omitempty"`
	ComponentType ComponentType `json:"componentType"`
}

type SparseValues struct {
	BufferView uint32 `json:"bufferView"`
	ByteOffset uint32 `json:"byteOffset,omitempty"`
}

type Material struct {
	Name                 string                `json:"name,omitempty"`
	PBRMetallicRoughness *PBRMetallicRoughness `json:"pbrMetallicRoughness,omitempty"`
	NormalTexture        *NormalTexture        `json:"normalTexture,omitempty"`
	OcclusionTexture     *OcclusionTexture     `json:"occlusionTexture,omitempty"`
	EmissiveTexture      *TextureInfo          `json:"emissiveTexture,omitempty"`
	EmissiveFactor       [3]float32            `json:"emissiveFactor,omitempty"`
	AlphaMode            string                `json:"alphaMode,omitempty"`
	AlphaCutoff          *float32              `json:"alphaCutoff,omitempty"`
	DoubleSided          bool                  `json:"doubleSided,omitempty"`
	Extensions           Extensions            `json:"extensions,omitempty"`
}

type PBRMetallicRoughness struct {
	BaseColorFactor          *[4]float32  `json:"baseColorFactor,omitempty"`
	BaseColorTexture         *TextureInfo `json:"baseColorTexture,omitempty"`
	MetallicFactor           *float32     `json:"metallicFactor,omitempty"`
	RoughnessFactor          *float32     `json:"roughnessFactor,omitempty"`
	MetallicRoughnessTexture *TextureInfo `json:"metallicRoughnessTexture,omitempty"`
}

type TextureInfo struct {
	Index    uint32 `json:"index"`
	TexCoord uint32 `json:"texCoord,omitempty"`
}

type NormalTexture struct {
	TextureInfo
	Scale *float32 `json:"scale,omitempty"`
}

type OcclusionTexture struct {
	TextureInfo
	Strength *float32 `json:"strength,omitempty"`
}

type Texture struct {
	Name    string  `json:"name,omitempty"`
	Sampler *uint32 `json:"sampler,omitempty"`
	Source  *uint32 `json:"source,omitempty"`
}

type Sampler struct {
	MagFilter uint16 `json:"magFilter,omitempty"`
	MinFilter uint16 `json:"minFilter,omitempty"`
	WrapS     uint16 `json:"wrapS,omitempty"`
	WrapT     uint16 `json:"wrapT,omitempty"`
}

type Image struct {
	Name       string  `json:"name,omitempty"`
	URI        string  `json:"uri,omitempty"`
	MimeType   string  `json:"mimeType,omitempty"`
	BufferView *uint32 `json:"bufferView,omitempty"`
}

type Skin struct {
	Name                string   `json:"name,omitempty"`
	InverseBindMatrices *uint32  `json:"inverseBindMatrices,omitempty"`
	Skeleton            *uint32  `json:"skeleton,omitempty"`
	Joints              []uint32 `json:"joints"`
}

type Animation struct {
	Name     string              `json:"name,omitempty"`
	Channels []*Channel          `json:"channels"`
	Samplers []*AnimationSampler `json:"samplers"`
}

type AnimationSampler struct {
	Input         uint32        `json:"input"`
	Interpolation Interpolation `json:"interpolation,omitempty"`
	Output        uint32        `json:"output"`
}

type Channel struct {
	Sampler uint32        `json:"sampler"`
	Target  ChannelTarget `json:"target"`
}

type ChannelTarget struct {
	Node *uint32     `json:"node,omitempty"`
	Path TRSProperty `json:"path"`
}

type Camera struct {
	Name         string        `json:"name,omitempty"`
	Type         string        `json:"type"`
	Perspective  *Perspective  `json:"perspective,omitempty"`
	Orthographic *Orthographic `json:"orthographic,omitempty"`
}

type Perspective struct {
	AspectRatio *float32 `json:"aspectRatio,omitempty"`
	YFov        float32  `json:"yfov"`
	ZFar        *float32 `json:"zfar,omitempty"`
	ZNear       float32  `json:"znear"`
}

type Orthographic struct {
	XMag  float32 `json:"xmag"`
	YMag  float32 `json:"ymag"`
	ZFar  float32 `json:"zfar"`
	ZNear float32 `json:"znear"`
}
