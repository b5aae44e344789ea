package types

// File entry types as reported by Provider.ListDir.
const (
	FileTypeFile    = "file"
	FileTypeDir     = "dir"
	FileTypeSymlink = "symlink"
)

// Provider defines the interface for file system operations
type Provider interface {
	// ListDir returns the contents of a directory
	ListDir(path string) ([]File, error)

	// ReadFile reads file content as bytes
	ReadFile(path string) ([]byte, error)

	// ReadPrefix reads at most max bytes from the start of a file
	ReadPrefix(path string, max int) ([]byte, error)

	// Exists checks if a file or directory exists
	Exists(path string) (bool, error)

	// IsDir checks if a path is a directory
	IsDir(path string) (bool, error)

	// GetBasePath returns the base path for this provider
	GetBasePath() string
}

// File represents a file, directory or symlink entry
type File struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Type     string `json:"type"` // "file", "dir" or "symlink"
	Size     int64  `json:"size"`
	Modified int64  `json:"modified"`
}
