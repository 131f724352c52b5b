package gltf

import (
	"encoding/json"
	"fmt"
)

// ComponentType is the storage type of a single accessor component.
// Values match the GL enum used by the glTF JSON.
type ComponentType uint16

const (
	ComponentByte   ComponentType = 5120
	ComponentUbyte  ComponentType = 5121
	ComponentShort  ComponentType = 5122
	ComponentUshort ComponentType = 5123
	ComponentUint   ComponentType = 5125
	ComponentFloat  ComponentType = 5126
)

// ByteSize returns the width in bytes of one component.
func (c ComponentType) ByteSize() int {
	switch c {
	case ComponentByte, ComponentUbyte:
		return 1
	case ComponentShort, ComponentUshort:
		return 2
	case ComponentUint, ComponentFloat:
		return 4
	}
	return 0
}

func (c ComponentType) String() string {
	switch c {
	case ComponentByte:
		return "BYTE"
	case ComponentUbyte:
		return "UNSIGNED_BYTE"
	case ComponentShort:
		return "SHORT"
	case ComponentUshort:
		return "UNSIGNED_SHORT"
	case ComponentUint:
		return "UNSIGNED_INT"
	case ComponentFloat:
		return "FLOAT"
	}
	return fmt.Sprint(uint16(c))
}

func (c *ComponentType) UnmarshalJSON(b []byte) error {
	var v uint16
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch ComponentType(v) {
	case ComponentByte, ComponentUbyte, ComponentShort, ComponentUshort, ComponentUint, ComponentFloat:
		*c = ComponentType(v)
	default:
		return fmt.Errorf("gltf: bad componentType %d", v)
	}
	return nil
}

func (c ComponentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint16(c))
}

// AccessorType is the element multiplicity of an accessor.
type AccessorType uint8

const (
	AccessorScalar AccessorType = iota
	AccessorVec2
	AccessorVec3
	AccessorVec4
	AccessorMat2
	AccessorMat3
	AccessorMat4
)

var accessorTypeNames = map[AccessorType]string{
	AccessorScalar: "SCALAR",
	AccessorVec2:   "VEC2",
	AccessorVec3:   "VEC3",
	AccessorVec4:   "VEC4",
	AccessorMat2:   "MAT2",
	AccessorMat3:   "MAT3",
	AccessorMat4:   "MAT4",
}

// Components returns how many components make up one element.
func (a AccessorType) Components() int {
	switch a {
	case AccessorScalar:
		return 1
	case AccessorVec2:
		return 2
	case AccessorVec3:
		return 3
	case AccessorVec4, AccessorMat2:
		return 4
	case AccessorMat3:
		return 9
	case AccessorMat4:
		return 16
	}
	return 0
}

func (a AccessorType) String() string {
	return accessorTypeNames[a]
}

func (a *AccessorType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for k, v := range accessorTypeNames {
		if v == s {
			*a = k
			return nil
		}
	}
	return fmt.Errorf("gltf: bad accessor type %q", s)
}

func (a AccessorType) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// SizeOfElement returns the byte size of one tightly packed element.
func SizeOfElement(c ComponentType, a AccessorType) int {
	return c.ByteSize() * a.Components()
}

// Target is the intended GPU buffer binding of a buffer view.
type Target uint16

const (
	TargetNone               Target = 0
	TargetArrayBuffer        Target = 34962
	TargetElementArrayBuffer Target = 34963
)

// PrimitiveMode is the draw topology of a mesh primitive.
type PrimitiveMode uint8

const (
	PrimitivePoints PrimitiveMode = iota
	PrimitiveLines
	PrimitiveLineLoop
	PrimitiveLineStrip
	PrimitiveTriangles
	PrimitiveTriangleStrip
	PrimitiveTriangleFan
)

// Well-known attribute semantics.
const (
	POSITION   = "POSITION"
	NORMAL     = "NORMAL"
	TANGENT    = "TANGENT"
	TEXCOORD_0 = "TEXCOORD_0"
	TEXCOORD_1 = "TEXCOORD_1"
	COLOR_0    = "COLOR_0"
	JOINTS_0   = "JOINTS_0"
	WEIGHTS_0  = "WEIGHTS_0"
)

// Interpolation is the animation sampler interpolation mode.
type Interpolation string

const (
	InterpolationLinear      Interpolation = "LINEAR"
	InterpolationStep        Interpolation = "STEP"
	InterpolationCubicSpline Interpolation = "CUBICSPLINE"
)

// TRSProperty is the node property animated by a channel.
type TRSProperty string

const (
	PathTranslation TRSProperty = "translation"
	PathRotation    TRSProperty = "rotation"
	PathScale       TRSProperty = "scale"
	PathWeights     TRSProperty = "weights"
)

// Index returns a pointer to v, for the optional index fields of the
// document structs.
func Index(v uint32) *uint32 {
	return &v
}
