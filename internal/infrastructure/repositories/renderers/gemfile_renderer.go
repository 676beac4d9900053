package renderers

import (
	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// GemfileRenderer writes the manifest as a Gemfile.
type GemfileRenderer struct{}

var _ repositories.ManifestRenderer = (*GemfileRenderer)(nil)

// NewGemfileRenderer creates a new GemfileRenderer.
func NewGemfileRenderer() *GemfileRenderer { return &GemfileRenderer{} }

func (r *GemfileRenderer) Name() string { return "gemfile" }

func (r *GemfileRenderer) Render(entries []entities.DependencyEntry) ([]byte, error) {
	return []byte(entities.RenderGemfile(entries)), nil
}
