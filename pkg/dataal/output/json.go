// Package output renders previews and envelopes as JSON.
package output

import (
	"bytes"
	"encoding/json"
	"io"
)

// ToJSON encodes v as JSON without HTML escaping. With pretty set the
// output is indented by two spaces.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v, pretty); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Write encodes v to w followed by a newline.
func Write(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
