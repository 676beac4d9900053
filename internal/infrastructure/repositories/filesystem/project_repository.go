package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// ErrPathEscapesRoot is returned when a path would resolve outside the project root.
var ErrPathEscapesRoot = errors.New("path escapes the project root")

// ProjectRepository works on application directories on the local disk.
type ProjectRepository struct{}

var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// NewProjectRepository creates a new ProjectRepository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) Exists(root, path string) bool {
	_, err := os.Stat(filepath.Join(root, path))
	return err == nil
}

func (r *ProjectRepository) ReadFile(root, path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, path))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *ProjectRepository) WriteFile(root, path, content string) error {
	target, err := containedPath(root, path)
	if err != nil {
		return err
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(target), dirMode); mkdirErr != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, mkdirErr)
	}
	return os.WriteFile(target, []byte(content), fileMode)
}

func (r *ProjectRepository) AppendFile(root, path, content string) error {
	target, err := containedPath(root, path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(target, os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return err
	}

	if _, writeErr := f.WriteString(content); writeErr != nil {
		_ = f.Close()
		return writeErr
	}
	return f.Close()
}

func (r *ProjectRepository) InitRepository(root string) error {
	if err := os.MkdirAll(root, dirMode); err != nil {
		return fmt.Errorf("failed to create %s: %w", root, err)
	}

	_, err := git.PlainInit(root, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		logger.Debugf("git repository already exists in %s", root)
		return nil
	}
	return err
}

// containedPath joins path onto root and refuses results outside root.
func containedPath(root, path string) (string, error) {
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, path)
	}
	target := filepath.Join(root, path)
	rel, err := filepath.Rel(filepath.Clean(root), target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesRoot, path)
	}
	return target, nil
}
