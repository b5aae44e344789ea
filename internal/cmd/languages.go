package cmd

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-enry/go-enry/v2"
	"github.com/go-enry/go-enry/v2/data"
	"github.com/spf13/cobra"

	"github.com/lingust/lingust/internal/registry"
)

var languagesFormat string
var languagesOutput string

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List all languages known to the classifier",
	Long:  `List every language the built-in classifier can resolve, with its type and file extensions, plus the extensions treated as opaque binary formats.`,
	Run:   runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	setupOutputFlags(languagesCmd, &languagesFormat, &languagesOutput)
}

// LanguageInfo holds information about one known language
type LanguageInfo struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Extensions []string `json:"extensions"`
}

// LanguagesResult is the output for the languages command
type LanguagesResult struct {
	Languages        []LanguageInfo `json:"languages"`
	BinaryExtensions []string       `json:"binary_extensions"`
	Total            int            `json:"total"`
}

func (r *LanguagesResult) ToJSON() interface{} {
	return r
}

func (r *LanguagesResult) ToText(w io.Writer) {
	for _, lang := range r.Languages {
		fmt.Fprintf(w, "%-30s %-12s %v\n", lang.Name, lang.Type, lang.Extensions)
	}
	fmt.Fprintf(w, "\nTotal: %d languages\n", r.Total)
	fmt.Fprintf(w, "Binary extensions: %v\n", r.BinaryExtensions)
}

func runLanguages(cmd *cobra.Command, args []string) {
	result := buildLanguagesResult()
	OutputToFile(result, languagesFormat, languagesOutput)
}

func buildLanguagesResult() *LanguagesResult {
	// Collect the unique language set from enry's extension data
	extensionsByLang := make(map[string][]string)
	for ext, langs := range data.LanguagesByExtension {
		for _, lang := range langs {
			extensionsByLang[lang] = append(extensionsByLang[lang], ext)
		}
	}

	languages := make([]LanguageInfo, 0, len(extensionsByLang))
	for lang, extensions := range extensionsByLang {
		sort.Strings(extensions)
		languages = append(languages, LanguageInfo{
			Name:       lang,
			Type:       languageTypeToString(enry.GetLanguageType(lang)),
			Extensions: extensions,
		})
	}

	sort.Slice(languages, func(i, j int) bool {
		return languages[i].Name < languages[j].Name
	})

	return &LanguagesResult{
		Languages:        languages,
		BinaryExtensions: registry.BinaryExtensions(),
		Total:            len(languages),
	}
}

// languageTypeToString converts enry.Type to string (programming, data, markup, prose)
func languageTypeToString(t enry.Type) string {
	switch t {
	case enry.Programming:
		return "programming"
	case enry.Data:
		return "data"
	case enry.Markup:
		return "markup"
	case enry.Prose:
		return "prose"
	default:
		return "unknown"
	}
}
