package ocasdk

// Conformance marks whether a data instance must carry a value for an
// attribute. Only ConformanceMandatory gates an absence error; every other
// marker, including the zero value, behaves as optional.
type Conformance string

const (
	ConformanceMandatory Conformance = "M"
	ConformanceOptional  Conformance = "O"
)

// Attribute is one named field of a bundle's capture base, merged with the
// overlay products that matter for data validation. The validator borrows it
// read-only for the duration of one call.
type Attribute struct {
	Name        string
	Type        AttrType    // nil means no type constraint
	Conformance Conformance // see ConformanceMandatory
	Cardinality string      // carried from the cardinality overlay; not checked here
	EntryCodes  EntryCodes  // nil means no permitted-value constraint
}

// Mandatory reports whether an absent value is a validation error.
func (a Attribute) Mandatory() bool { return a.Conformance == ConformanceMandatory }

// ScalarKind enumerates the scalar attribute types of a capture base.
type ScalarKind int

const (
	KindText ScalarKind = iota
	KindNumeric
	KindDateTime
	KindBoolean
	KindBinary
)

// jsonKind names the JSON shape a scalar kind expects, as rendered in
// validation messages.
func (k ScalarKind) jsonKind() string {
	switch k {
	case KindNumeric:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		// Text, DateTime and Binary are all carried as JSON strings.
		return "string"
	}
}

// AttrType is the declared type of an attribute. Exactly one of the concrete
// variants below applies: ScalarType, ArrayType, NestedType or NullType.
type AttrType interface{ isAttrType() }

// ScalarType declares a plain scalar value.
type ScalarType struct{ Kind ScalarKind }

// ArrayType declares an array with the given element type.
type ArrayType struct{ Elem AttrType }

// NestedType declares an object-shaped value captured by another capture
// base, referenced by its SAID. Its fields are resolved upstream and are not
// deep-checked here.
type NestedType struct{ Ref string }

// NullType declares no constraint on the value shape.
type NullType struct{}

func (ScalarType) isAttrType() {}
func (ArrayType) isAttrType()  {}
func (NestedType) isAttrType() {}
func (NullType) isAttrType()   {}

// EntryCodes is the closed set of permitted values for an attribute. Exactly
// one of the concrete variants below applies: CodeList, GroupedCodes or
// CodeListRef.
type EntryCodes interface {
	isEntryCodes()
	// contains reports membership of a candidate value. CodeListRef always
	// reports true; resolving external code tables is an upstream concern.
	contains(s string) bool
}

// CodeList is a flat list of permitted values.
type CodeList []string

// GroupedCodes maps group names to permitted values. Membership in any
// group's set satisfies the constraint.
type GroupedCodes map[string][]string

// CodeListRef points at an external code table (by SAID). Membership is not
// checked at this layer.
type CodeListRef string

func (CodeList) isEntryCodes()     {}
func (GroupedCodes) isEntryCodes() {}
func (CodeListRef) isEntryCodes()  {}

func (c CodeList) contains(s string) bool {
	for _, code := range c {
		if code == s {
			return true
		}
	}
	return false
}

func (g GroupedCodes) contains(s string) bool {
	for _, codes := range g {
		for _, code := range codes {
			if code == s {
				return true
			}
		}
	}
	return false
}

func (CodeListRef) contains(string) bool { return true }
