package ocasdk

// Strict-mode checks for compound (array/object) values. These run only when
// ValidateOpt.Strict is set; the default flow bypasses compound values
// entirely.

// validateCompound checks an array or object value against its declaration.
func validateCompound(attr Attribute, path string, v any, k valueKind) Issues {
	if k == kindObject {
		switch t := attr.Type.(type) {
		case ScalarType:
			return Issues{*typeIssue(attr.Name, path, t.Kind.jsonKind(), v)}
		case ArrayType:
			return Issues{*typeIssue(attr.Name, path, "array", v)}
		default:
			// nil, NestedType and NullType accept object shapes.
			return nil
		}
	}

	arr := v.([]any)
	switch t := attr.Type.(type) {
	case ArrayType:
		var iss Issues
		for i, el := range arr {
			iss = append(iss, validateElement(attr, pointerIndex(path, i), t.Elem, el)...)
		}
		return iss
	case nil, NullType:
		// No declared shape; entry codes still constrain the elements.
		if attr.EntryCodes == nil {
			return nil
		}
		var iss Issues
		for i, el := range arr {
			if it := checkEntryCodes(attr.Name, pointerIndex(path, i), attr.EntryCodes, el, classify(el, true)); it != nil {
				iss = append(iss, *it)
			}
		}
		return iss
	case ScalarType:
		return Issues{*typeIssue(attr.Name, path, t.Kind.jsonKind(), v)}
	case NestedType:
		return Issues{*typeIssue(attr.Name, path, "object", v)}
	}
	return nil
}

// validateElement checks one array element against the declared element type,
// recursing through nested array declarations.
func validateElement(attr Attribute, path string, elem AttrType, v any) Issues {
	k := classify(v, true)

	switch k {
	case kindArray:
		at, ok := elem.(ArrayType)
		if !ok {
			if it := checkType(attr.Name, path, elem, v, k); it != nil {
				return Issues{*it}
			}
			return nil
		}
		var iss Issues
		for i, el := range v.([]any) {
			iss = append(iss, validateElement(attr, pointerIndex(path, i), at.Elem, el)...)
		}
		return iss
	case kindObject:
		switch elem.(type) {
		case nil, NestedType, NullType:
			return nil
		}
		if it := checkType(attr.Name, path, elem, v, k); it != nil {
			return Issues{*it}
		}
		return nil
	}

	var iss Issues
	if it := checkType(attr.Name, path, elem, v, k); it != nil {
		iss = append(iss, *it)
	}
	if it := checkEntryCodes(attr.Name, path, attr.EntryCodes, v, k); it != nil {
		iss = append(iss, *it)
	}
	return iss
}
