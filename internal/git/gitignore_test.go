package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreStack_PushPop(t *testing.T) {
	stack := NewIgnoreStack()
	assert.Equal(t, 0, stack.Depth())

	stack.Push("/repo", []string{"*.log"})
	stack.Push("/repo/sub", []string{"build"})
	assert.Equal(t, 2, stack.Depth())

	stack.Pop()
	assert.Equal(t, 1, stack.Depth())

	stack.Pop()
	stack.Pop() // popping an empty stack is a no-op
	assert.Equal(t, 0, stack.Depth())
}

func TestIgnoreStack_EmptyPatternSetNotPushed(t *testing.T) {
	stack := NewIgnoreStack()
	stack.Push("/repo", nil)
	assert.Equal(t, 0, stack.Depth())
}

func TestIgnoreStack_ShouldExclude(t *testing.T) {
	stack := NewIgnoreStack()
	stack.Push("/repo", []string{"*.log", "vendor", "**/generated/*.go"})

	tests := []struct {
		name    string
		relPath string
		exclude bool
	}{
		{"debug.log", "debug.log", true},
		{"vendor", "vendor", true},
		{"out.go", "pkg/generated/out.go", true},
		{"main.go", "main.go", false},
		{"app.log.txt", "app.log.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.relPath, func(t *testing.T) {
			assert.Equal(t, tt.exclude, stack.ShouldExclude(tt.name, tt.relPath))
		})
	}
}

func TestIgnoreStack_LoadAndPush(t *testing.T) {
	dir := t.TempDir()
	gitignore := "# comment line\n\n*.tmp\nbuild/\n!keep.tmp\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644))

	stack := NewIgnoreStack()
	pushed := stack.LoadAndPush(dir)
	assert.True(t, pushed)
	assert.Equal(t, 1, stack.Depth())

	// Comments and negations dropped, trailing slash trimmed
	assert.True(t, stack.ShouldExclude("scratch.tmp", "scratch.tmp"))
	assert.True(t, stack.ShouldExclude("build", "build"))
	assert.False(t, stack.ShouldExclude("main.go", "main.go"))
}

func TestIgnoreStack_LoadAndPushNoGitignore(t *testing.T) {
	stack := NewIgnoreStack()
	assert.False(t, stack.LoadAndPush(t.TempDir()))
	assert.Equal(t, 0, stack.Depth())
}

func TestGetInfo_NotARepository(t *testing.T) {
	assert.Nil(t, GetInfo(t.TempDir()))
}
