// Package lightspunctual implements the KHR_lights_punctual extension.
//
// https://github.com/KhronosGroup/glTF/tree/main/extensions/2.0/Khronos/KHR_lights_punctual
package lightspunctual

import (
	"encoding/json"

	"github.com/meshtools/gltf"
)

const ExtensionName = "KHR_lights_punctual"

func init() {
	gltf.RegisterExtension(ExtensionName, Unmarshal)
}

const (
	TypeDirectional = "directional"
	TypePoint       = "point"
	TypeSpot        = "spot"
)

type Light struct {
	Name      string      `json:"name,omitempty"`
	Color     *[3]float32 `json:"color,omitempty"`
	Intensity *float32    `json:"intensity,omitempty"`
	Type      string      `json:"type"`
	Range     *float32    `json:"range,omitempty"`
	Spot      *Spot       `json:"spot,omitempty"`
}

type Spot struct {
	InnerConeAngle float32  `json:"innerConeAngle,omitempty"`
	OuterConeAngle *float32 `json:"outerConeAngle,omitempty"`
}

// Lights is the document-level extension object; node-level usage
// references it by index.
type Lights struct {
	Lights []*Light `json:"lights"`
}

// LightRef is the node-level extension object.
type LightRef struct {
	Light uint32 `json:"light"`
}

func Unmarshal(data []byte) (interface{}, error) {
	// The same extension name appears at document and node level with
	// different shapes; sniff for the document form first.
	var doc Lights
	if err := json.Unmarshal(data, &doc); err == nil && doc.Lights != nil {
		return &doc, nil
	}
	var ref LightRef
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, err
	}
	return &ref, nil
}
