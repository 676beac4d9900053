package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// RendererRegistry manages all registered manifest output formats.
type RendererRegistry struct {
	renderers map[string]domainRepos.ManifestRenderer
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.ManifestRenderer),
	}
}

// Register adds a renderer under its name.
func (r *RendererRegistry) Register(renderer domainRepos.ManifestRenderer) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given format.
func (r *RendererRegistry) Get(name string) (domainRepos.ManifestRenderer, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown manifest format %q (available: %v)", name, r.Names())
	}
	return renderer, nil
}

// Names returns the registered format names, sorted.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
