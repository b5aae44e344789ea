// Package registry holds the static filename-based classification tables:
// extensions that resolve directly to the Binary category, and extension
// to language hints used when content analysis comes up empty.
package registry

import (
	"path/filepath"
	"sort"
	"strings"
)

// binaryExtensions are opaque formats that are never inspected as text.
// Matching files resolve to Binary without reading any content.
var binaryExtensions = map[string]struct{}{
	".7z":    {},
	".a":     {},
	".bin":   {},
	".bz2":   {},
	".class": {},
	".deb":   {},
	".dll":   {},
	".dylib": {},
	".exe":   {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".o":     {},
	".pdf":   {},
	".png":   {},
	".rpm":   {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".webp":  {},
	".woff":  {},
	".woff2": {},
	".xz":    {},
	".zip":   {},
}

// languageByExtension maps common extensions to language names. This is the
// last-resort hint table, consulted only after content analysis and the
// linguist extension data both fail to produce a language.
var languageByExtension = map[string]string{
	".bash":  "Shell",
	".c":     "C",
	".cc":    "C++",
	".cfg":   "INI",
	".cjs":   "JavaScript",
	".cpp":   "C++",
	".cs":    "C#",
	".css":   "CSS",
	".cxx":   "C++",
	".go":    "Go",
	".h":     "C",
	".hpp":   "C++",
	".html":  "HTML",
	".ini":   "INI",
	".java":  "Java",
	".js":    "JavaScript",
	".json":  "JSON",
	".kt":    "Kotlin",
	".lua":   "Lua",
	".md":    "Markdown",
	".mjs":   "JavaScript",
	".php":   "PHP",
	".pl":    "Perl",
	".py":    "Python",
	".pyi":   "Python",
	".rb":    "Ruby",
	".rs":    "Rust",
	".scala": "Scala",
	".sh":    "Shell",
	".sql":   "SQL",
	".swift": "Swift",
	".toml":  "TOML",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".txt":   "Text",
	".xml":   "XML",
	".yaml":  "YAML",
	".yml":   "YAML",
	".zsh":   "Shell",
}

// normalizeExt extracts the case-normalized extension from a filename.
// Returns "" for filenames without an extension.
func normalizeExt(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}

// IsBinaryExtension reports whether the filename carries an extension of a
// known opaque format.
func IsBinaryExtension(filename string) bool {
	_, ok := binaryExtensions[normalizeExt(filename)]
	return ok
}

// Lookup resolves a filename to a language hint by extension.
func Lookup(filename string) (string, bool) {
	lang, ok := languageByExtension[normalizeExt(filename)]
	return lang, ok
}

// BinaryExtensions returns the sorted list of registered opaque extensions.
func BinaryExtensions() []string {
	exts := make([]string, 0, len(binaryExtensions))
	for ext := range binaryExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
