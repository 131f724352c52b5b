package lightspunctual

import (
	"testing"

	"github.com/meshtools/gltf"
)

func TestDecodeLights(t *testing.T) {
	doc, err := gltf.Decode([]byte(`{
		"asset": {"version": "2.0"},
		"extensionsUsed": ["KHR_lights_punctual"],
		"extensions": {"KHR_lights_punctual": {"lights": [
			{"type": "spot", "name": "lamp", "intensity": 20, "spot": {"outerConeAngle": 0.5}}
		]}},
		"nodes": [{"extensions": {"KHR_lights_punctual": {"light": 0}}}]
	}`), "")
	if err != nil {
		t.Fatal(err)
	}
	lights, ok := doc.Extensions[ExtensionName].(*Lights)
	if !ok {
		t.Fatalf("document extension = %T", doc.Extensions[ExtensionName])
	}
	if len(lights.Lights) != 1 || lights.Lights[0].Type != TypeSpot || lights.Lights[0].Name != "lamp" {
		t.Errorf("lights = %+v", lights.Lights)
	}
	if lights.Lights[0].Spot == nil || *lights.Lights[0].Spot.OuterConeAngle != 0.5 {
		t.Errorf("spot = %+v", lights.Lights[0].Spot)
	}

	ref, ok := doc.Nodes[0].Extensions[ExtensionName].(*LightRef)
	if !ok {
		t.Fatalf("node extension = %T", doc.Nodes[0].Extensions[ExtensionName])
	}
	if ref.Light != 0 {
		t.Errorf("light ref = %d", ref.Light)
	}
}
