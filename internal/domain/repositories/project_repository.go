package repositories

// ProjectRepository gives the generator access to the application directory.
// All paths are relative to the project root passed on each call.
type ProjectRepository interface {
	// Exists reports whether path exists under root.
	Exists(root, path string) bool

	ReadFile(root, path string) (string, error)

	// WriteFile creates or truncates path, creating parent directories.
	WriteFile(root, path, content string) error

	// AppendFile appends content to an existing file.
	AppendFile(root, path, content string) error

	// InitRepository creates a git repository at root. An existing
	// repository is not an error.
	InitRepository(root string) error
}
