package repositories

import "github.com/rios0rios0/scaffolder/internal/domain/entities"

// ManifestRenderer serializes a manifest into one output format.
type ManifestRenderer interface {
	// Name returns the format identifier (e.g. "gemfile", "yaml").
	Name() string

	Render(entries []entities.DependencyEntry) ([]byte, error)
}
