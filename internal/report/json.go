package report

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v as a single JSON document followed by a newline.
// HTML characters are left unescaped so line_content reads as written.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
