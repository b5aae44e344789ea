package aggregator

import (
	"math"

	"github.com/lingust/lingust/internal/types"
)

// State accumulates per-label file counts for one scan. It is owned by a
// single Aggregator for the duration of the scan; a partially filled state
// left over from an interrupted walk is still valid and summable.
type State struct {
	Counts     map[string]int
	TotalFiles int
}

// NewState creates an empty aggregation state
func NewState() *State {
	return &State{Counts: make(map[string]int)}
}

// Add records one file resolved to the given label
func (s *State) Add(label string) {
	s.Counts[label]++
	s.TotalFiles++
}

// Breakdown converts counts to percentages, one decimal place per label.
// Each label rounds independently, so a sum can deviate slightly from 100;
// no renormalization is applied. An empty state yields an empty breakdown.
func (s *State) Breakdown() types.Breakdown {
	breakdown := make(types.Breakdown, len(s.Counts))
	if s.TotalFiles == 0 {
		return breakdown
	}
	for label, count := range s.Counts {
		breakdown[label] = round1(float64(count) / float64(s.TotalFiles) * 100)
	}
	return breakdown
}

// LanguageCount returns the number of distinct labels observed
func (s *State) LanguageCount() int {
	return len(s.Counts)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
