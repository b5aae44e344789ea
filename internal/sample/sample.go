// Package sample reads a bounded prefix of a file and decides whether it is
// text or binary. UTF-8 validity of the prefix is the sole binary signal for
// files that did not already match an opaque extension.
package sample

import (
	"fmt"
	"unicode/utf8"

	"github.com/lingust/lingust/internal/types"
)

// MaxSampleSize caps how many bytes are read per file. Classification only
// ever sees a prefix, never the whole file.
const MaxSampleSize = 8192

// Verdict is the decode outcome for a sample.
type Verdict int

const (
	// VerdictText means the prefix decoded as valid UTF-8.
	VerdictText Verdict = iota
	// VerdictBinary means the prefix is not valid UTF-8.
	VerdictBinary
)

// Sample is the bounded prefix of one file, created at classification time
// and discarded after label resolution.
type Sample struct {
	Path    string
	Raw     []byte
	Text    string // decoded content, empty unless Verdict is VerdictText
	Verdict Verdict
}

// Extract reads at most MaxSampleSize bytes of the file at path and decodes
// them. A read failure is returned as an error; callers map it to the Error
// label. A decode failure is not an error, the sample is marked binary.
//
// A multi-byte rune cut off at the cap makes the prefix invalid UTF-8 and the
// file binary. That mirrors decoding a truncated byte string and keeps the
// verdict a pure function of the prefix.
func Extract(p types.Provider, path string) (*Sample, error) {
	raw, err := p.ReadPrefix(path, MaxSampleSize)
	if err != nil {
		return nil, fmt.Errorf("read sample of %s: %w", path, err)
	}

	s := &Sample{Path: path, Raw: raw}
	if utf8.Valid(raw) {
		s.Verdict = VerdictText
		s.Text = string(raw)
	} else {
		s.Verdict = VerdictBinary
	}
	return s, nil
}
