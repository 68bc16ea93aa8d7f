// Package yaml decodes raw YAML payloads into the generic value shape the
// validator consumes. String-keyed mappings decode to map[string]any, the
// same object shape the JSON source produces.
package yaml

import (
	yamlv3 "gopkg.in/yaml.v3"
)

// DecodeBytes decodes b into a generic value. YAML scalars surface as native
// Go types (string, int, float64, bool); the validator's classifier accepts
// these alongside json.Number.
func DecodeBytes(b []byte) (any, error) {
	var v any
	if err := yamlv3.Unmarshal(b, &v); err != nil {
		return nil, err
	}
	return v, nil
}
