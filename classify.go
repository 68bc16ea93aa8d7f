package ocasdk

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// valueKind is the classified JSON shape of one data field.
type valueKind int

const (
	kindAbsent valueKind = iota
	kindNull
	kindString
	kindNumber
	kindBool
	kindArray
	kindObject
	kindOther // non-JSON Go value; never matches a declared type
)

// classify determines the shape of a decoded data value. present is false
// when the attribute name is missing from the data object entirely, which is
// distinct from an explicit null.
func classify(v any, present bool) valueKind {
	if !present {
		return kindAbsent
	}
	switch v.(type) {
	case nil:
		return kindNull
	case string:
		return kindString
	case bool:
		return kindBool
	case json.Number, float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		// json decoding yields json.Number; the YAML path yields native ints
		// and floats.
		return kindNumber
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	}
	return kindOther
}

// renderValue formats a value for embedding in a validation message, using
// its JSON rendering so strings keep their quotes.
func renderValue(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
