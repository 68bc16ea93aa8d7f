package ocasdk

import (
	"fmt"
	"io"
	"sort"

	srcjson "github.com/ocasuite/ocasdk/source/json"
	srcyaml "github.com/ocasuite/ocasdk/source/yaml"
)

// Status reports the outcome of one validation call. The zero value is valid.
type Status struct {
	issues Issues
}

// Valid reports whether the data satisfied every attribute constraint.
func (s Status) Valid() bool { return len(s.issues) == 0 }

// Errors returns the accumulated per-attribute issues, in attribute-name
// order (grouped per attribute in check order: missing, type, entry codes).
func (s Status) Errors() Issues { return s.issues }

// Validate checks an already-parsed data document against an attribute table.
//
// data must classify as a JSON object (a map[string]any as produced by the
// source decoders); anything else returns ErrNotAnObject with no attribute
// detail. Per-attribute violations are accumulated into the returned Status,
// never onto the error channel.
func Validate(attrs map[string]Attribute, data any, opts ...ValidateOpt) (Status, error) {
	obj, ok := data.(map[string]any)
	if !ok {
		return Status{}, ErrNotAnObject
	}
	return validateOrdered(attrs, sortedNames(attrs), obj, pickOpt(opts)), nil
}

// ValidateBytes parses a raw JSON payload and validates it. A decode failure
// returns an error wrapping ErrParseData, distinct from ErrNotAnObject.
func ValidateBytes(attrs map[string]Attribute, data []byte, opts ...ValidateOpt) (Status, error) {
	v, err := srcjson.DecodeBytes(data)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrParseData, err)
	}
	return Validate(attrs, v, opts...)
}

// ValidateReader parses a JSON payload from r and validates it.
func ValidateReader(attrs map[string]Attribute, r io.Reader, opts ...ValidateOpt) (Status, error) {
	v, err := srcjson.DecodeReader(r)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrParseData, err)
	}
	return Validate(attrs, v, opts...)
}

// ValidateYAMLBytes parses a raw YAML payload and validates it. YAML mappings
// with string keys decode to the same object shape the JSON path produces.
func ValidateYAMLBytes(attrs map[string]Attribute, data []byte, opts ...ValidateOpt) (Status, error) {
	v, err := srcyaml.DecodeBytes(data)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrParseData, err)
	}
	return Validate(attrs, v, opts...)
}

// sortedNames fixes the attribute iteration order. The name-keyed table has
// no inherent order, so the error sequence is made deterministic by sorting.
func sortedNames(attrs map[string]Attribute) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validateOrdered(attrs map[string]Attribute, names []string, obj map[string]any, opt ValidateOpt) Status {
	var iss Issues
	for _, name := range names {
		attr := attrs[name]
		if attr.Name == "" {
			attr.Name = name
		}
		v, present := obj[name]
		if more := validateAttribute(attr, v, present, opt); len(more) > 0 {
			iss = AppendIssues(iss, more...)
		}
	}
	return Status{issues: iss}
}

// validateAttribute applies conformance, type and entry-code checks to one
// attribute's data value. Checks are independent: a value can contribute both
// a type issue and an entry-code issue in the same call.
func validateAttribute(attr Attribute, v any, present bool, opt ValidateOpt) Issues {
	k := classify(v, present)
	path := pointerTo(attr.Name)

	if k == kindAbsent {
		if attr.Mandatory() {
			return Issues{attrIssue(path, CodeRequired, map[string]string{"attribute": attr.Name})}
		}
		return nil
	}

	if k == kindArray || k == kindObject {
		if !opt.Strict {
			// Compatibility bypass: compound values pass unchecked regardless
			// of the declared type.
			return nil
		}
		return validateCompound(attr, path, v, k)
	}

	var iss Issues
	if it := checkType(attr.Name, path, attr.Type, v, k); it != nil {
		iss = AppendIssues(iss, *it)
	}
	if it := checkEntryCodes(attr.Name, path, attr.EntryCodes, v, k); it != nil {
		iss = AppendIssues(iss, *it)
	}
	return iss
}
