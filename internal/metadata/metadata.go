package metadata

import (
	"path/filepath"
	"time"

	"github.com/lingust/lingust/internal/git"
)

// Scan result formats.
const (
	FormatSingle = "single" // one file, singleton breakdown
	FormatTree   = "tree"   // directory walk, percentage breakdown
)

// ScanMetadata contains information about the scan execution
type ScanMetadata struct {
	Format        string    `json:"format"` // "single" or "tree"
	Timestamp     string    `json:"timestamp"`
	ScanPath      string    `json:"scan_path"`
	Version       string    `json:"version"` // tool version
	Source        string    `json:"source"`  // "internal" or "linguist"
	DurationMs    int64     `json:"duration_ms,omitempty"`
	FileCount     int       `json:"file_count,omitempty"`
	LanguageCount int       `json:"language_count,omitempty"`
	Git           *git.Info `json:"git,omitempty"`
}

// New creates scan metadata for the given path
func New(scanPath string, version string) *ScanMetadata {
	absPath, _ := filepath.Abs(scanPath)

	return &ScanMetadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		ScanPath:  absPath,
		Version:   version,
		Source:    "internal",
	}
}

// SetDuration sets the scan duration in milliseconds
func (m *ScanMetadata) SetDuration(duration time.Duration) {
	m.DurationMs = duration.Milliseconds()
}

// SetCounts sets the file and distinct-language counts
func (m *ScanMetadata) SetCounts(fileCount, languageCount int) {
	m.FileCount = fileCount
	m.LanguageCount = languageCount
}

// SetFormat sets the result format
func (m *ScanMetadata) SetFormat(format string) {
	m.Format = format
}

// SetSource records where the breakdown came from
func (m *ScanMetadata) SetSource(source string) {
	m.Source = source
}
