// Package json decodes raw JSON payloads into the generic value shape the
// validator consumes (map[string]any / []any / scalars).
package json

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeBytes decodes b into a generic JSON value. Numbers are preserved as
// json.Number so numeric fidelity survives until classification. Trailing
// non-whitespace after the first value is an error, matching strict
// single-document semantics.
func DecodeBytes(b []byte) (any, error) {
	return DecodeReader(bytes.NewReader(b))
}

// DecodeReader decodes a single JSON value from r.
func DecodeReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}
