package renderers

import (
	"encoding/json"
	"fmt"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// JSONRenderer writes the manifest as an indented JSON array.
type JSONRenderer struct{}

var _ repositories.ManifestRenderer = (*JSONRenderer)(nil)

// NewJSONRenderer creates a new JSONRenderer.
func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Name() string { return "json" }

func (r *JSONRenderer) Render(entries []entities.DependencyEntry) ([]byte, error) {
	if entries == nil {
		entries = []entities.DependencyEntry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render manifest as JSON: %w", err)
	}
	return append(data, '\n'), nil
}
