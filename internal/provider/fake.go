package provider

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lingust/lingust/internal/types"
)

// FakeProvider implements the Provider interface for testing
type FakeProvider struct {
	files      map[string][]types.File
	content    map[string][]byte
	unreadable map[string]bool
}

// NewFakeProvider creates a new fake provider
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		files:      make(map[string][]types.File),
		content:    make(map[string][]byte),
		unreadable: make(map[string]bool),
	}
}

// AddFile adds a file with content to the fake provider
func (p *FakeProvider) AddFile(path string, content []byte) {
	p.addEntry(path, types.FileTypeFile, int64(len(content)))
	p.content[path] = content
}

// AddUnreadableFile adds a file whose reads fail, for exercising IO error paths
func (p *FakeProvider) AddUnreadableFile(path string) {
	p.addEntry(path, types.FileTypeFile, 0)
	p.unreadable[path] = true
}

// AddSymlink adds a symlink entry; scans are expected to skip it
func (p *FakeProvider) AddSymlink(path string) {
	p.addEntry(path, types.FileTypeSymlink, 0)
}

// AddDir adds a directory, registering it in its parent's listing
func (p *FakeProvider) AddDir(path string) {
	if path == "" || path == "." {
		path = "/"
	}
	if p.files[path] == nil {
		p.files[path] = make([]types.File, 0)
	}
	if path == "/" {
		return
	}

	parent := filepath.Dir(path)
	p.AddDir(parent)
	for _, f := range p.files[parent] {
		if f.Path == path {
			return
		}
	}
	p.files[parent] = append(p.files[parent], types.File{
		Name: filepath.Base(path),
		Path: path,
		Type: types.FileTypeDir,
	})
}

func (p *FakeProvider) addEntry(path, fileType string, size int64) {
	dir := filepath.Dir(path)
	if dir == "." {
		dir = "/"
	}
	p.AddDir(dir)

	p.files[dir] = append(p.files[dir], types.File{
		Name: filepath.Base(path),
		Path: path,
		Type: fileType,
		Size: size,
	})
}

// ListDir returns the contents of a directory
func (p *FakeProvider) ListDir(path string) ([]types.File, error) {
	files, exists := p.files[path]
	if !exists {
		return nil, os.ErrNotExist
	}
	return files, nil
}

// ReadFile reads file content as bytes
func (p *FakeProvider) ReadFile(path string) ([]byte, error) {
	if p.unreadable[path] {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrPermission)
	}
	content, exists := p.content[path]
	if !exists {
		return nil, os.ErrNotExist
	}
	return content, nil
}

// ReadPrefix reads at most max bytes from the start of a file
func (p *FakeProvider) ReadPrefix(path string, max int) ([]byte, error) {
	content, err := p.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(content) > max {
		content = content[:max]
	}
	return content, nil
}

// Exists checks if a file or directory exists
func (p *FakeProvider) Exists(path string) (bool, error) {
	_, fileExists := p.content[path]
	_, dirExists := p.files[path]
	return fileExists || dirExists || p.unreadable[path], nil
}

// IsDir checks if a path is a directory
func (p *FakeProvider) IsDir(path string) (bool, error) {
	_, exists := p.files[path]
	return exists, nil
}

// GetBasePath returns the base path for this provider
func (p *FakeProvider) GetBasePath() string {
	return "/"
}
