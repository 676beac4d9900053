package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/scaffolder/internal/domain/repositories"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/repositories/filesystem"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/repositories/renderers"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/repositories/shell"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/repositories/templates"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register renderer registry with every manifest output format
	if err := container.Provide(func() *RendererRegistry {
		reg := NewRendererRegistry()
		reg.Register(renderers.NewGemfileRenderer())
		reg.Register(renderers.NewYAMLRenderer())
		reg.Register(renderers.NewJSONRenderer())
		return reg
	}); err != nil {
		return err
	}

	// Bind ports to their local adapters
	if err := container.Provide(func() domainRepos.CommandRunner {
		return shell.NewCommandRunner()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.TemplateRepository {
		return templates.NewTemplateRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.ProjectRepository {
		return filesystem.NewProjectRepository()
	}); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.BundlerDetector {
		return filesystem.NewBundlerDetector()
	}); err != nil {
		return err
	}

	return nil
}
