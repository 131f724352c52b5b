package gltf

import "encoding/json"

// Extensions holds the decoded extension objects of a document node,
// keyed by extension name. Unregistered extensions are kept as raw JSON.
type Extensions map[string]interface{}

var extensions = map[string]func([]byte) (interface{}, error){}

// RegisterExtension associates an extension name with an unmarshal
// function. Registered extensions are decoded into their own types when
// a document is parsed; everything else stays json.RawMessage.
func RegisterExtension(name string, unmarshal func([]byte) (interface{}, error)) {
	extensions[name] = unmarshal
}

func (e *Extensions) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Extensions, len(raw))
	for name, data := range raw {
		if unmarshal, ok := extensions[name]; ok {
			v, err := unmarshal(data)
			if err != nil {
				return err
			}
			out[name] = v
		} else {
			out[name] = data
		}
	}
	*e = out
	return nil
}
