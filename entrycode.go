package ocasdk

// checkEntryCodes verifies a scalar value against the permitted entry codes.
// A nil constraint passes, as does a reference to an external code table.
//
// Entry codes are defined over strings. Any other scalar under a flat or
// grouped constraint yields a recoverable not_comparable issue for that
// attribute; it must not abort validation of the rest of the document.
func checkEntryCodes(name, path string, codes EntryCodes, v any, k valueKind) *Issue {
	if codes == nil {
		return nil
	}
	if _, ok := codes.(CodeListRef); ok {
		return nil
	}
	if k != kindString {
		it := attrIssue(path, CodeNotComparable, map[string]string{
			"attribute": name,
			"value":     renderValue(v),
		})
		return &it
	}
	if codes.contains(v.(string)) {
		return nil
	}
	it := attrIssue(path, CodeInvalidEnum, map[string]string{
		"attribute": name,
		"value":     renderValue(v),
	})
	return &it
}
