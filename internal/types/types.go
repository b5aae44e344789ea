package types

import "sort"

// Sentinel labels assigned when a file cannot be resolved to a language.
// Exactly one label, language or sentinel, is assigned per file.
const (
	LabelBinary  = "Binary"  // opaque format or undecodable content
	LabelError   = "Error"   // file could not be read
	LabelUnknown = "Unknown" // decodable text, no matching language
)

// IsSentinel reports whether label is one of the sentinel categories
// rather than an actual language name.
func IsSentinel(label string) bool {
	return label == LabelBinary || label == LabelError || label == LabelUnknown
}

// Breakdown maps language labels to percentages.
// A single-file result is the singleton {label: 100}.
type Breakdown map[string]float64

// BreakdownEntry is one row of a sorted breakdown listing.
type BreakdownEntry struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// Entries returns the breakdown sorted by percentage descending,
// label ascending on ties.
func (b Breakdown) Entries() []BreakdownEntry {
	entries := make([]BreakdownEntry, 0, len(b))
	for label, pct := range b {
		entries = append(entries, BreakdownEntry{Label: label, Percentage: pct})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Percentage != entries[j].Percentage {
			return entries[i].Percentage > entries[j].Percentage
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
