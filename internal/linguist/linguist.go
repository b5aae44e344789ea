// Package linguist shells out to github-linguist when it is installed and
// turns its breakdown into the internal format. Every failure, missing
// binary, timeout, unparseable output, is returned as an error so the caller
// can fall back to internal classification.
package linguist

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"

	"log/slog"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/lingust/lingust/internal/types"
)

// DefaultTimeout bounds a linguist invocation.
const DefaultTimeout = 30 * time.Second

const binaryName = "github-linguist"

// breakdownSchema describes the shape of `github-linguist --breakdown --json`
// output: language name to {size, percentage}. Output that does not validate
// is rejected rather than half-trusted.
var breakdownSchema = jsonschema.MustCompileString("linguist-breakdown.json", `{
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"properties": {
			"size": {"type": "number"},
			"percentage": {"type": "string"}
		},
		"required": ["size", "percentage"]
	}
}`)

// Runner invokes github-linguist with a bounded timeout
type Runner struct {
	timeout time.Duration
	logger  *slog.Logger
}

// NewRunner creates a runner. A zero timeout means DefaultTimeout.
func NewRunner(timeout time.Duration, logger *slog.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{timeout: timeout, logger: logger}
}

// Available reports whether the github-linguist binary is on PATH
func (r *Runner) Available() bool {
	_, err := exec.LookPath(binaryName)
	return err == nil
}

// Breakdown runs github-linguist against path and parses its breakdown
func (r *Runner) Breakdown(ctx context.Context, path string) (types.Breakdown, error) {
	if _, err := exec.LookPath(binaryName); err != nil {
		return nil, fmt.Errorf("%s not found: %w", binaryName, err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Debug("Running external analyzer", "binary", binaryName, "path", path, "timeout", r.timeout)

	out, err := exec.CommandContext(ctx, binaryName, "--breakdown", "--json", path).Output()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%s timed out after %s", binaryName, r.timeout)
		}
		return nil, fmt.Errorf("%s failed: %w", binaryName, err)
	}

	return ParseBreakdown(out)
}

// ParseBreakdown validates and converts raw linguist JSON output
func ParseBreakdown(data []byte) (types.Breakdown, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid linguist output: %w", err)
	}
	if err := breakdownSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("unexpected linguist output shape: %w", err)
	}

	var raw map[string]struct {
		Size       int64  `json:"size"`
		Percentage string `json:"percentage"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid linguist output: %w", err)
	}

	breakdown := make(types.Breakdown, len(raw))
	for lang, entry := range raw {
		pct, err := strconv.ParseFloat(entry.Percentage, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid percentage %q for %s: %w", entry.Percentage, lang, err)
		}
		breakdown[lang] = pct
	}

	if len(breakdown) == 0 {
		return nil, fmt.Errorf("linguist returned an empty breakdown")
	}
	return breakdown, nil
}
