//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"os"
	"path"

	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// StubProjectRepository implements repositories.ProjectRepository in memory.
// Files are keyed by "root/path".
type StubProjectRepository struct {
	Files    map[string]string
	WriteErr error
	InitErr  error

	// spy: roots passed to InitRepository
	InitializedRoots []string
	// spy: paths written, in order
	Written []string
}

var _ repositories.ProjectRepository = (*StubProjectRepository)(nil)

// NewStubProjectRepository creates an empty in-memory project.
func NewStubProjectRepository() *StubProjectRepository {
	return &StubProjectRepository{Files: make(map[string]string)}
}

func (p *StubProjectRepository) Exists(root, file string) bool {
	_, ok := p.Files[path.Join(root, file)]
	return ok
}

func (p *StubProjectRepository) ReadFile(root, file string) (string, error) {
	content, ok := p.Files[path.Join(root, file)]
	if !ok {
		return "", os.ErrNotExist
	}
	return content, nil
}

func (p *StubProjectRepository) WriteFile(root, file, content string) error {
	if p.WriteErr != nil {
		return p.WriteErr
	}
	p.Files[path.Join(root, file)] = content
	p.Written = append(p.Written, file)
	return nil
}

func (p *StubProjectRepository) AppendFile(root, file, content string) error {
	key := path.Join(root, file)
	existing, ok := p.Files[key]
	if !ok {
		return os.ErrNotExist
	}
	p.Files[key] = existing + content
	return nil
}

func (p *StubProjectRepository) InitRepository(root string) error {
	p.InitializedRoots = append(p.InitializedRoots, root)
	return p.InitErr
}
