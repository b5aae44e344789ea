package git

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// loadPatternsFromGitignore loads patterns from a specific .gitignore file
func loadPatternsFromGitignore(gitignorePath string) ([]string, error) {
	file, err := os.Open(gitignorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read .gitignore: %w", err)
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Remove trailing slashes for consistency (dir/ -> dir)
		pattern := strings.TrimSuffix(line, "/")

		// Skip negation patterns; they are complex to honor in a glob matcher
		if strings.HasPrefix(pattern, "!") {
			continue
		}

		patterns = append(patterns, pattern)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading .gitignore: %w", err)
	}

	return patterns, nil
}

// PatternSet represents patterns from a single .gitignore file
type PatternSet struct {
	Directory string   // Directory where this .gitignore was found
	Patterns  []string // Patterns from this .gitignore
}

// IgnoreStack holds .gitignore pattern sets for the directories currently
// being walked. Patterns apply to their own directory and everything below,
// so sets are pushed on entry and popped on leave.
type IgnoreStack struct {
	stack []*PatternSet
}

// NewIgnoreStack creates a new empty ignore stack
func NewIgnoreStack() *IgnoreStack {
	return &IgnoreStack{
		stack: make([]*PatternSet, 0),
	}
}

// Push adds a pattern set for a directory to the stack
func (s *IgnoreStack) Push(directory string, patterns []string) {
	if len(patterns) == 0 {
		return // Don't push empty pattern sets
	}
	s.stack = append(s.stack, &PatternSet{Directory: directory, Patterns: patterns})
}

// Pop removes the top pattern set from the stack
func (s *IgnoreStack) Pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// LoadAndPush loads the .gitignore of a directory, if present, and pushes its
// patterns. Returns true when a pattern set was pushed; callers must Pop when
// leaving the directory in that case.
func (s *IgnoreStack) LoadAndPush(directory string) bool {
	gitignorePath := filepath.Join(directory, ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		return false
	}

	patterns, err := loadPatternsFromGitignore(gitignorePath)
	if err != nil || len(patterns) == 0 {
		return false
	}

	s.Push(directory, patterns)
	return true
}

// ShouldExclude checks if a file or directory matches any pattern currently
// on the stack. Patterns are matched against both the bare name and the
// relative path.
func (s *IgnoreStack) ShouldExclude(name, relativePath string) bool {
	for _, set := range s.stack {
		for _, pattern := range set.Patterns {
			if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
				return true
			}
			if matched, err := doublestar.Match(pattern, name); err == nil && matched {
				return true
			}
		}
	}
	return false
}

// Depth returns the current depth of the stack
func (s *IgnoreStack) Depth() int {
	return len(s.stack)
}
