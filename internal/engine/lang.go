package engine

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// languageByExt covers the languages editor integrations care about most.
var languageByExt = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".py":   "python",
	".dart": "dart",
	".java": "java",
	".rb":   "ruby",
	".php":  "php",
}

// DetectLanguage names the language of a file from its name. It consults
// the chroma lexer registry for extensions outside the fixed table and
// returns nil when neither knows the file.
func DetectLanguage(name string) *string {
	base := filepath.Base(name)
	if lang, ok := languageByExt[strings.ToLower(filepath.Ext(base))]; ok {
		return &lang
	}
	if base == "" || base == "-" || base == "." {
		return nil
	}
	l := lexers.Match(base)
	if l == nil {
		return nil
	}
	lang := strings.ToLower(l.Config().Name)
	return &lang
}
