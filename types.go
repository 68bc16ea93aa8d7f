package ocasdk

// ValidateOpt bundles validation options.
type ValidateOpt struct {
	// Strict disables the compatibility bypass for array and object values.
	// By default such values pass unchecked regardless of the declared type;
	// downstream error-count assertions rely on that. With Strict set, array
	// elements are checked recursively against the declared element type and
	// entry codes, and object values must be declared nested.
	Strict bool
}

// pickOpt follows the last-option-wins convention for variadic option lists.
func pickOpt(opts []ValidateOpt) ValidateOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return ValidateOpt{}
}
