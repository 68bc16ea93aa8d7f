package ocasdk

// checkType verifies a classified scalar value against a declared type. A nil
// declaration passes. The array branch is unreachable through the default
// flow because compound values bypass checks upstream; it is kept so the
// checker stands on its own (and strict element checks reach it).
func checkType(name, path string, t AttrType, v any, k valueKind) *Issue {
	if t == nil {
		return nil
	}
	switch tt := t.(type) {
	case ScalarType:
		if !scalarMatches(tt.Kind, k) {
			return typeIssue(name, path, tt.Kind.jsonKind(), v)
		}
	case ArrayType:
		if k != kindArray {
			return typeIssue(name, path, "array", v)
		}
	case NestedType, NullType:
		// no shape constraint at this layer
	}
	return nil
}

func scalarMatches(sk ScalarKind, k valueKind) bool {
	switch sk {
	case KindNumeric:
		return k == kindNumber
	case KindBoolean:
		return k == kindBool
	default:
		// Text, DateTime and Binary all expect JSON strings.
		return k == kindString
	}
}

func typeIssue(name, path, expected string, v any) *Issue {
	it := attrIssue(path, CodeInvalidType, map[string]string{
		"attribute": name,
		"value":     renderValue(v),
		"expected":  expected,
	})
	return &it
}
