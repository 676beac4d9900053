package renderers

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// YAMLRenderer writes the manifest as a YAML document with a `gems` list.
type YAMLRenderer struct{}

var _ repositories.ManifestRenderer = (*YAMLRenderer)(nil)

// NewYAMLRenderer creates a new YAMLRenderer.
func NewYAMLRenderer() *YAMLRenderer { return &YAMLRenderer{} }

func (r *YAMLRenderer) Name() string { return "yaml" }

func (r *YAMLRenderer) Render(entries []entities.DependencyEntry) ([]byte, error) {
	doc := struct {
		Gems []entities.DependencyEntry `yaml:"gems"`
	}{Gems: entries}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest as YAML: %w", err)
	}
	return data, nil
}
