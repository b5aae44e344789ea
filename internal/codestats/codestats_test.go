package codestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopAnalyzer(t *testing.T) {
	a := NewAnalyzer(false)
	assert.False(t, a.Enabled())

	a.ProcessFile("main.go", "Go", []byte("package main\n"))
	assert.Nil(t, a.Stats())
}

func TestAnalyzerCountsLines(t *testing.T) {
	a := NewAnalyzer(true)
	require.True(t, a.Enabled())

	content := []byte("package main\n\n// entry point\nfunc main() {\n}\n")
	a.ProcessFile("main.go", "Go", content)

	stats := a.Stats()
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.Total.Files)
	assert.Greater(t, stats.Total.Lines, int64(0))
	require.Len(t, stats.ByLanguage, 1)
	assert.Equal(t, "Go", stats.ByLanguage[0].Language)
}

func TestAnalyzerSkipsSentinels(t *testing.T) {
	a := NewAnalyzer(true)

	a.ProcessFile("blob.bin", "Binary", []byte{0x00, 0x01})
	a.ProcessFile("gone.py", "Error", nil)
	a.ProcessFile("empty", "", []byte("text"))

	stats := a.Stats()
	assert.Equal(t, 0, stats.Total.Files)
	assert.Empty(t, stats.ByLanguage)
}

func TestAnalyzerSortsByLines(t *testing.T) {
	a := NewAnalyzer(true)

	a.ProcessFile("big.py", "Python", []byte("a = 1\nb = 2\nc = 3\nd = 4\n"))
	a.ProcessFile("small.rb", "Ruby", []byte("x = 1\n"))

	stats := a.Stats()
	require.Len(t, stats.ByLanguage, 2)
	assert.Equal(t, "Python", stats.ByLanguage[0].Language)
	assert.Equal(t, "Ruby", stats.ByLanguage[1].Language)
}
