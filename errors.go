package ocasdk

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired      = "required"       // mandatory attribute missing from the data
	CodeInvalidType   = "invalid_type"   // scalar value does not match the declared type
	CodeInvalidEnum   = "invalid_enum"   // scalar value not in the permitted entry codes
	CodeNotComparable = "not_comparable" // entry-code constraint on a non-string scalar
)

// Setup errors abort the whole call before any attribute is checked. They are
// returned on the error channel, never as per-attribute issues.
var (
	// ErrNotAnObject indicates the data payload is not a JSON object.
	ErrNotAnObject = errors.New("ocasdk: data is not an object")
	// ErrParseData wraps a decode failure of a raw-text payload.
	ErrParseData = errors.New("ocasdk: failed to parse data")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer to the offending field (for example: /age, /tags/2).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"attribute":"age", "value":"42"})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_enum at /color
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Messages renders the issues as a plain list of human-readable error strings.
func (iss Issues) Messages() []string {
	if len(iss) == 0 {
		return nil
	}
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Message
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
