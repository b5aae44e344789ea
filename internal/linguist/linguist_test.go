package linguist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBreakdown_Valid(t *testing.T) {
	raw := []byte(`{
		"Ruby": {"size": 51306, "percentage": "76.06"},
		"JavaScript": {"size": 16148, "percentage": "23.94"}
	}`)

	breakdown, err := ParseBreakdown(raw)
	require.NoError(t, err)

	assert.Equal(t, 76.06, breakdown["Ruby"])
	assert.Equal(t, 23.94, breakdown["JavaScript"])
	assert.Len(t, breakdown, 2)
}

func TestParseBreakdown_InvalidJSON(t *testing.T) {
	_, err := ParseBreakdown([]byte("not json at all"))
	assert.Error(t, err)
}

func TestParseBreakdown_WrongShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"array instead of object", `[1, 2, 3]`},
		{"missing percentage", `{"Ruby": {"size": 100}}`},
		{"percentage not a string", `{"Ruby": {"size": 100, "percentage": 76.06}}`},
		{"entry not an object", `{"Ruby": "76.06"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBreakdown([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseBreakdown_UnparseablePercentage(t *testing.T) {
	_, err := ParseBreakdown([]byte(`{"Ruby": {"size": 100, "percentage": "many"}}`))
	assert.Error(t, err)
}

func TestParseBreakdown_Empty(t *testing.T) {
	_, err := ParseBreakdown([]byte(`{}`))
	assert.Error(t, err)
}

func TestRunner_MissingBinary(t *testing.T) {
	t.Setenv("PATH", "")

	r := NewRunner(time.Second, nil)
	assert.False(t, r.Available())

	_, err := r.Breakdown(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestNewRunner_DefaultTimeout(t *testing.T) {
	r := NewRunner(0, nil)
	assert.Equal(t, DefaultTimeout, r.timeout)
}
