package engine

import (
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// textProblem returns why data cannot be scanned as source text, or "".
func textProblem(data []byte) string {
	if looksBinary(data) || knownBinaryMIME(data) {
		return "Error reading file: binary content"
	}
	if !utf8.Valid(data) {
		return "Error reading file: content is not valid UTF-8"
	}
	return ""
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// knownBinaryMIME reports content carrying a recognised non-text signature
// (images, archives, executables). Unrecognised content is left to the
// UTF-8 check.
func knownBinaryMIME(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	m := mimetype.Detect(b)
	if m.Is("application/octet-stream") {
		return false
	}
	for p := m; p != nil; p = p.Parent() {
		if p.Is("text/plain") {
			return false
		}
	}
	return true
}
