// Package aggregator walks a file tree, classifies every regular file and
// turns the tally into a percentage breakdown. Symbolic links are skipped,
// never followed; this keeps file counts stable across scans regardless of
// link topology.
package aggregator

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"log/slog"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lingust/lingust/internal/classifier"
	"github.com/lingust/lingust/internal/codestats"
	"github.com/lingust/lingust/internal/git"
	"github.com/lingust/lingust/internal/progress"
	"github.com/lingust/lingust/internal/types"
)

// Collaborator supplies a pre-computed breakdown from an external tool.
// When it succeeds its result wins over internal classification.
type Collaborator interface {
	Breakdown(ctx context.Context, path string) (types.Breakdown, error)
}

// Options configures an Aggregator
type Options struct {
	ExcludePatterns []string
	Progress        *progress.Progress
	CodeStats       codestats.Analyzer
	Collaborator    Collaborator
	Logger          *slog.Logger
}

// Aggregator classifies files under a provider and accumulates counts
type Aggregator struct {
	provider  types.Provider
	excludes  []string
	ignores   *git.IgnoreStack
	progress  *progress.Progress
	codeStats codestats.Analyzer
	collab    Collaborator
	logger    *slog.Logger
}

// New creates an aggregator over the given provider
func New(p types.Provider, opts Options) *Aggregator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stats := opts.CodeStats
	if stats == nil {
		stats = codestats.NewAnalyzer(false)
	}
	return &Aggregator{
		provider:  p,
		excludes:  opts.ExcludePatterns,
		ignores:   git.NewIgnoreStack(),
		progress:  opts.Progress,
		codeStats: stats,
		collab:    opts.Collaborator,
		logger:    logger,
	}
}

// Result is the outcome of one detection run
type Result struct {
	Breakdown     types.Breakdown
	Source        string // "internal" or "linguist"
	FileCount     int    // zero for collaborator results
	LanguageCount int
}

// Detect resolves a breakdown for path, preferring the collaborator when one
// is configured and usable. Collaborator failure is informational, never an
// error; the internal result is used instead.
func (a *Aggregator) Detect(ctx context.Context, path string, isDir bool) (*Result, error) {
	if a.collab != nil {
		breakdown, err := a.collab.Breakdown(ctx, path)
		if err == nil && len(breakdown) > 0 {
			return &Result{Breakdown: breakdown, Source: "linguist", LanguageCount: len(breakdown)}, nil
		}
		if err != nil {
			a.logger.Info("External analyzer unavailable, using internal classification", "error", err)
		}
	}

	if !isDir {
		breakdown := a.ClassifySingle(path)
		return &Result{Breakdown: breakdown, Source: "internal", FileCount: 1, LanguageCount: 1}, nil
	}

	breakdown, state, err := a.ClassifyTreeWithState(path)
	if err != nil {
		return nil, err
	}
	return &Result{
		Breakdown:     breakdown,
		Source:        "internal",
		FileCount:     state.TotalFiles,
		LanguageCount: state.LanguageCount(),
	}, nil
}

// ClassifySingle classifies one file and reports 100% for its label
func (a *Aggregator) ClassifySingle(path string) types.Breakdown {
	label := classifier.ClassifyFile(a.provider, path)
	return types.Breakdown{label: 100}
}

// ClassifyTree walks every regular file under root and returns the
// percentage breakdown. An empty tree yields an empty breakdown.
func (a *Aggregator) ClassifyTree(root string) (types.Breakdown, error) {
	breakdown, _, err := a.ClassifyTreeWithState(root)
	return breakdown, err
}

// ClassifyTreeWithState is ClassifyTree exposing the final aggregation
// state, used by callers that need file and language counts.
func (a *Aggregator) ClassifyTreeWithState(root string) (types.Breakdown, *State, error) {
	state := NewState()
	start := time.Now()

	a.progress.ScanStart(root, a.excludes)

	if err := a.recurse(state, root); err != nil {
		return nil, state, err
	}

	a.progress.ScanComplete(state.TotalFiles, time.Since(start))
	return state.Breakdown(), state, nil
}

// recurse processes one directory level. Listing failures below the root are
// tolerated, classification failures never surface here at all, they are
// already sentinel labels.
func (a *Aggregator) recurse(state *State, dirPath string) error {
	a.progress.EnterDirectory(dirPath)
	defer a.progress.LeaveDirectory(dirPath)

	if a.ignores.LoadAndPush(dirPath) {
		defer a.ignores.Pop()
	}

	files, err := a.provider.ListDir(dirPath)
	if err != nil {
		return err
	}

	for _, file := range files {
		relPath := relativeTo(a.provider.GetBasePath(), file.Path)

		switch file.Type {
		case types.FileTypeSymlink:
			a.progress.Skipped(file.Path, "symlink")

		case types.FileTypeFile:
			if a.shouldExclude(file.Name, relPath) {
				a.progress.Skipped(file.Path, "excluded")
				continue
			}
			label := classifier.ClassifyFile(a.provider, file.Path)
			state.Add(label)
			a.progress.FileClassified(file.Path, label)
			if a.codeStats.Enabled() && !types.IsSentinel(label) {
				a.codeStats.ProcessFile(file.Path, label, nil)
			}

		case types.FileTypeDir:
			if a.shouldExclude(file.Name, relPath) {
				a.progress.Skipped(file.Path, "excluded")
				continue
			}
			subPath := filepath.Join(dirPath, file.Name)
			if err := a.recurse(state, subPath); err != nil {
				// Continue processing other directories even if one fails
				a.logger.Debug("Skipping unreadable directory", "path", subPath, "error", err)
				continue
			}
		}
	}

	return nil
}

// shouldExclude checks CLI exclude patterns and the gitignore stack
func (a *Aggregator) shouldExclude(name, relPath string) bool {
	for _, pattern := range a.excludes {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return a.ignores.ShouldExclude(name, relPath)
}

func relativeTo(base, path string) string {
	if base == "" || base == "/" {
		return strings.TrimPrefix(path, "/")
	}
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
