package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/scaffolder/internal/infrastructure/repositories"
)

// Manifest is the interface for the manifest command.
type Manifest interface {
	Execute(ctx context.Context, cfg *entities.Configuration, opts ManifestOptions) ([]byte, error)
}

// ManifestOptions holds runtime options for building a manifest.
type ManifestOptions struct {
	FrameworkVersion entities.Version
	DevPath          string
	Exclude          []string
	Format           string
}

// ManifestCommand builds the dependency manifest for a configuration and
// renders it in the requested format.
type ManifestCommand struct {
	templates repositories.TemplateRepository
	renderers *infraRepos.RendererRegistry
}

// NewManifestCommand creates a new ManifestCommand.
func NewManifestCommand(
	templates repositories.TemplateRepository,
	renderers *infraRepos.RendererRegistry,
) *ManifestCommand {
	return &ManifestCommand{templates: templates, renderers: renderers}
}

// Execute builds and renders the manifest.
func (it *ManifestCommand) Execute(
	ctx context.Context,
	cfg *entities.Configuration,
	opts ManifestOptions,
) ([]byte, error) {
	renderer, err := it.renderers.Get(opts.Format)
	if err != nil {
		return nil, err
	}

	manifest, _, err := assembleManifest(ctx, it.templates, cfg, opts)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Rendering %d manifest entries as %s", len(manifest), renderer.Name())
	return renderer.Render(manifest)
}

// assembleManifest builds the family entries and appends the gems of the
// configured application template, if any.
func assembleManifest(
	ctx context.Context,
	templates repositories.TemplateRepository,
	cfg *entities.Configuration,
	opts ManifestOptions,
) ([]entities.DependencyEntry, *entities.ApplicationTemplate, error) {
	builder := entities.NewManifestBuilder(opts.FrameworkVersion, opts.DevPath)
	manifest := builder.Build(cfg, manifestPredicate(cfg, opts.Exclude))

	location := cfg.Options().Template
	if location == "" {
		return manifest, nil, nil
	}

	logger.Infof("[template] Applying %s", location)
	tmpl, err := templates.Load(ctx, location)
	if err != nil {
		return nil, nil, err
	}

	manifest, err = entities.AppendEntries(manifest, tmpl.Gems)
	if err != nil {
		return nil, nil, fmt.Errorf("template %s: %w", location, err)
	}
	return manifest, tmpl, nil
}

func manifestPredicate(cfg *entities.Configuration, exclude []string) entities.IncludePredicate {
	predicates := []entities.IncludePredicate{entities.Excluding(exclude...)}
	if cfg.Options().API {
		predicates = append(predicates, entities.APIOnly())
	}
	return entities.AllOf(predicates...)
}
