// Package codestats provides per-language line statistics for scanned trees,
// backed by the scc processor.
package codestats

import (
	"os"
	"sort"
	"sync"

	"github.com/boyter/scc/v3/processor"
)

var initOnce sync.Once

// Stats holds line counts for one language or the grand total
type Stats struct {
	Lines    int64 `json:"lines"`
	Code     int64 `json:"code"`
	Comments int64 `json:"comments"`
	Blanks   int64 `json:"blanks"`
	Files    int   `json:"files"`
}

// LanguageStats holds stats for a specific language (includes language name for sorted output)
type LanguageStats struct {
	Language string `json:"language"`
	Lines    int64  `json:"lines"`
	Code     int64  `json:"code"`
	Comments int64  `json:"comments"`
	Blanks   int64  `json:"blanks"`
	Files    int    `json:"files"`
}

// CodeStats holds aggregated statistics for one scan
type CodeStats struct {
	Total      Stats           `json:"total"`
	ByLanguage []LanguageStats `json:"by_language"` // Sorted by lines descending
}

// Analyzer collects code statistics during a scan
type Analyzer interface {
	// ProcessFile analyzes a file and adds its stats. label is the resolved
	// language label; sentinel labels are skipped. If content is nil the
	// file is read from disk.
	ProcessFile(filename string, label string, content []byte)

	// Stats returns the aggregated statistics, nil when disabled
	Stats() *CodeStats

	// Enabled reports whether collection is active
	Enabled() bool
}

// NewAnalyzer creates an analyzer based on the enabled flag
func NewAnalyzer(enabled bool) Analyzer {
	if enabled {
		return &sccAnalyzer{byLanguage: make(map[string]*Stats)}
	}
	return &noopAnalyzer{}
}

// noopAnalyzer is used when code stats are disabled
type noopAnalyzer struct{}

func (n *noopAnalyzer) ProcessFile(filename string, label string, content []byte) {}
func (n *noopAnalyzer) Stats() *CodeStats                                         { return nil }
func (n *noopAnalyzer) Enabled() bool                                             { return false }

// sccAnalyzer counts lines with boyter/scc
type sccAnalyzer struct {
	mu         sync.Mutex
	total      Stats
	byLanguage map[string]*Stats
}

func (a *sccAnalyzer) Enabled() bool {
	return true
}

func (a *sccAnalyzer) ProcessFile(filename string, label string, content []byte) {
	if label == "" || label == "Binary" || label == "Error" {
		return
	}

	if len(content) == 0 {
		var err error
		content, err = os.ReadFile(filename)
		if err != nil || len(content) == 0 {
			return
		}
	}

	// Initialize scc language definitions once
	initOnce.Do(func() {
		processor.ProcessConstants()
	})

	// scc needs its own language name for comment/code parsing
	sccLangs, _ := processor.DetectLanguage(filename)
	sccLang := ""
	if len(sccLangs) > 0 {
		sccLang = sccLangs[0]
	}

	filejob := &processor.FileJob{
		Filename: filename,
		Language: sccLang,
		Content:  content,
		Bytes:    int64(len(content)),
	}
	processor.CountStats(filejob)

	a.mu.Lock()
	defer a.mu.Unlock()

	a.add(&a.total, filejob)
	stats := a.byLanguage[label]
	if stats == nil {
		stats = &Stats{}
		a.byLanguage[label] = stats
	}
	a.add(stats, filejob)
}

func (a *sccAnalyzer) add(stats *Stats, job *processor.FileJob) {
	stats.Lines += job.Lines
	stats.Code += job.Code
	stats.Comments += job.Comment
	stats.Blanks += job.Blank
	stats.Files++
}

func (a *sccAnalyzer) Stats() *CodeStats {
	a.mu.Lock()
	defer a.mu.Unlock()

	byLanguage := make([]LanguageStats, 0, len(a.byLanguage))
	for lang, stats := range a.byLanguage {
		byLanguage = append(byLanguage, LanguageStats{
			Language: lang, Lines: stats.Lines, Code: stats.Code,
			Comments: stats.Comments, Blanks: stats.Blanks, Files: stats.Files,
		})
	}
	sort.Slice(byLanguage, func(i, j int) bool { return byLanguage[i].Lines > byLanguage[j].Lines })

	return &CodeStats{Total: a.total, ByLanguage: byLanguage}
}
