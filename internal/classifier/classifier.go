// Package classifier resolves one language label per file. Content analysis
// is done with go-enry (the Go port of GitHub Linguist); filename-based
// resolution serves as fallback when content carries no usable signal.
package classifier

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"

	"github.com/lingust/lingust/internal/registry"
	"github.com/lingust/lingust/internal/types"
)

// strategy attempts to name a language for a file, returning "" on a miss.
type strategy func(filename string, content []byte) string

// strategies are tried in order: content analysis first (it handles shebangs,
// well-known filenames like Makefile, and ambiguous extensions such as .h),
// then pure extension resolution. Filenames without extensions must rely on
// content alone, while ambiguous content defers to filename conventions.
var strategies = []strategy{
	classifyByContent,
	classifyByExtension,
	classifyByFilename,
}

// Classify guesses the language of decoded text. It never fails; when no
// strategy matches it returns the Unknown label.
func Classify(filename, text string) string {
	content := []byte(text)
	for _, s := range strategies {
		if lang := s(filename, content); lang != "" {
			return lang
		}
	}
	return types.LabelUnknown
}

func classifyByContent(filename string, content []byte) string {
	if len(content) == 0 {
		return ""
	}
	return enry.GetLanguage(filepath.Base(filename), content)
}

func classifyByExtension(filename string, content []byte) string {
	if lang, _ := enry.GetLanguageByExtension(filename); lang != "" {
		return lang
	}
	if lang, ok := registry.Lookup(filename); ok {
		return lang
	}
	return ""
}

func classifyByFilename(filename string, content []byte) string {
	lang, _ := enry.GetLanguageByFilename(filepath.Base(filename))
	return lang
}
