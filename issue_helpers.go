package ocasdk

import (
	"strconv"
	"strings"

	"github.com/ocasuite/ocasdk/i18n"
)

// attrIssue creates an Issue for one attribute at the given JSON Pointer path.
// The message is rendered through the current i18n translator; data carries
// the attribute name and, where applicable, the rendered offending value.
func attrIssue(path, code string, data map[string]string) Issue {
	params := make(map[string]any, len(data))
	for k, v := range data {
		params[k] = v
	}
	return Issue{Path: path, Code: code, Message: i18n.T(code, data), Params: params}
}

// pointerTo renders an attribute name as a JSON Pointer segment (RFC 6901).
func pointerTo(name string) string {
	return "/" + escapePointer(name)
}

// pointerIndex appends an array index to a pointer path.
func pointerIndex(path string, i int) string {
	return path + "/" + strconv.Itoa(i)
}

func escapePointer(s string) string {
	s = strings.ReplaceAll(s, "~", "~0")
	return strings.ReplaceAll(s, "/", "~1")
}
