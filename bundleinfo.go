package ocasdk

import (
	"fmt"
	"io"

	srcjson "github.com/ocasuite/ocasdk/source/json"
	srcyaml "github.com/ocasuite/ocasdk/source/yaml"
)

// Link maps this bundle's attributes onto another bundle's attributes, as
// extracted from a link overlay by the upstream loader.
type Link struct {
	Target  string // SAID of the target bundle
	Mapping map[string]string
}

// AttributeFraming binds one attribute to a term in an external semantic
// framework, as extracted from a framing overlay by the upstream loader.
type AttributeFraming struct {
	Attribute string
	FrameID   string
	Term      string
}

// BundleInfo is the resolved read-only view of a bundle that validation
// consumes: the name-keyed attribute table plus the overlay products the
// upstream loader exposes alongside it. Meta is keyed by language tag, then
// by field name.
type BundleInfo struct {
	attrs map[string]Attribute
	names []string // sorted; fixes the validation iteration order

	Meta    map[string]map[string]string
	Links   []Link
	Framing []AttributeFraming
}

// NewBundleInfo builds the view from a resolved attribute table. Attribute
// names default to their map key. The table is copied; later mutation of
// attrs does not affect the view.
func NewBundleInfo(attrs map[string]Attribute) *BundleInfo {
	cp := make(map[string]Attribute, len(attrs))
	for name, attr := range attrs {
		if attr.Name == "" {
			attr.Name = name
		}
		cp[name] = attr
	}
	return &BundleInfo{
		attrs: cp,
		names: sortedNames(cp),
		Meta:  map[string]map[string]string{},
	}
}

// Attributes returns the attributes in validation order (sorted by name).
func (b *BundleInfo) Attributes() []Attribute {
	out := make([]Attribute, 0, len(b.names))
	for _, name := range b.names {
		out = append(out, b.attrs[name])
	}
	return out
}

// Attribute looks up a single attribute by name.
func (b *BundleInfo) Attribute(name string) (Attribute, bool) {
	attr, ok := b.attrs[name]
	return attr, ok
}

// Len returns the number of attributes in the view.
func (b *BundleInfo) Len() int { return len(b.attrs) }

// Validate checks an already-parsed data document against this view. It is
// equivalent to the package-level Validate but reuses the precomputed
// attribute order.
func (b *BundleInfo) Validate(data any, opts ...ValidateOpt) (Status, error) {
	obj, ok := data.(map[string]any)
	if !ok {
		return Status{}, ErrNotAnObject
	}
	return validateOrdered(b.attrs, b.names, obj, pickOpt(opts)), nil
}

// ValidateBytes parses a raw JSON payload and validates it against this view.
func (b *BundleInfo) ValidateBytes(data []byte, opts ...ValidateOpt) (Status, error) {
	v, err := srcjson.DecodeBytes(data)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrParseData, err)
	}
	return b.Validate(v, opts...)
}

// ValidateReader parses a JSON payload from r and validates it against this view.
func (b *BundleInfo) ValidateReader(r io.Reader, opts ...ValidateOpt) (Status, error) {
	v, err := srcjson.DecodeReader(r)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrParseData, err)
	}
	return b.Validate(v, opts...)
}

// ValidateYAMLBytes parses a raw YAML payload and validates it against this view.
func (b *BundleInfo) ValidateYAMLBytes(data []byte, opts ...ValidateOpt) (Status, error) {
	v, err := srcyaml.DecodeBytes(data)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrParseData, err)
	}
	return b.Validate(v, opts...)
}
