//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scaffolder/internal/domain/commands"
	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	infraRepos "github.com/rios0rios0/scaffolder/internal/infrastructure/repositories"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/repositories/renderers"
	"github.com/rios0rios0/scaffolder/test/domain/entitybuilders"
	"github.com/rios0rios0/scaffolder/test/infrastructure/repositorydoubles"
)

func newRendererRegistry() *infraRepos.RendererRegistry {
	registry := infraRepos.NewRendererRegistry()
	registry.Register(renderers.NewGemfileRenderer())
	registry.Register(renderers.NewJSONRenderer())
	return registry
}

func TestManifestCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should render the manifest as a Gemfile", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewManifestCommand(&repositorydoubles.StubTemplateRepository{}, newRendererRegistry())
		cfg := entities.NewConfiguration(entities.Options{Database: "mysql"})
		opts := commands.ManifestOptions{FrameworkVersion: entities.MustParseVersion("7.0.0"), Format: "gemfile"}

		// when
		output, err := command.Execute(context.Background(), cfg, opts)

		// then
		require.NoError(t, err)
		assert.Contains(t, string(output), `gem "mysql2", "~> 0.5"`)
		assert.Contains(t, string(output), `# gem "redis", "~> 4.0"`)
	})

	t.Run("should fail for an unknown format", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewManifestCommand(&repositorydoubles.StubTemplateRepository{}, newRendererRegistry())
		cfg := entities.NewConfiguration(entities.Options{})
		opts := commands.ManifestOptions{FrameworkVersion: entities.MustParseVersion("7.0.0"), Format: "toml"}

		// when
		_, err := command.Execute(context.Background(), cfg, opts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown manifest format "toml"`)
	})

	t.Run("should drop excluded entries", func(t *testing.T) {
		t.Parallel()

		// given
		command := commands.NewManifestCommand(&repositorydoubles.StubTemplateRepository{}, newRendererRegistry())
		cfg := entities.NewConfiguration(entities.Options{})
		opts := commands.ManifestOptions{
			FrameworkVersion: entities.MustParseVersion("7.0.0"),
			Exclude:          []string{"puma"},
			Format:           "gemfile",
		}

		// when
		output, err := command.Execute(context.Background(), cfg, opts)

		// then
		require.NoError(t, err)
		assert.NotContains(t, string(output), `gem "puma"`)
	})

	t.Run("should reject a template gem that duplicates a built entry", func(t *testing.T) {
		t.Parallel()

		// given
		templates := &repositorydoubles.StubTemplateRepository{Template: &entities.ApplicationTemplate{
			Gems: []entities.DependencyEntry{
				entitybuilders.NewDependencyEntryBuilder().WithName("puma").BuildDependencyEntry(),
			},
		}}
		command := commands.NewManifestCommand(templates, newRendererRegistry())
		cfg := entities.NewConfiguration(entities.Options{Template: "dup.hcl"})
		opts := commands.ManifestOptions{FrameworkVersion: entities.MustParseVersion("7.0.0"), Format: "json"}

		// when
		_, err := command.Execute(context.Background(), cfg, opts)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidConfiguration)
	})

	t.Run("should propagate template load failures", func(t *testing.T) {
		t.Parallel()

		// given
		loadErr := &entities.TemplateLoadError{Location: "missing.hcl", Err: errors.New("no such file")}
		templates := &repositorydoubles.StubTemplateRepository{LoadErr: loadErr}
		command := commands.NewManifestCommand(templates, newRendererRegistry())
		cfg := entities.NewConfiguration(entities.Options{Template: "missing.hcl"})
		opts := commands.ManifestOptions{FrameworkVersion: entities.MustParseVersion("7.0.0"), Format: "gemfile"}

		// when
		_, err := command.Execute(context.Background(), cfg, opts)

		// then
		require.ErrorIs(t, err, entities.ErrTemplateLoad)
	})
}

func TestManifestPredicate(t *testing.T) {
	t.Parallel()

	t.Run("should drop browser helpers for API applications", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := entities.NewConfiguration(entities.Options{API: true})
		builder := entitybuilders.NewDependencyEntryBuilder()

		// when
		include := commands.ManifestPredicate(cfg, nil)

		// then
		assert.False(t, include(builder.WithName("sprockets-rails").BuildDependencyEntry()))
		assert.False(t, include(builder.WithName("turbo-rails").BuildDependencyEntry()))
		assert.True(t, include(builder.WithName("jbuilder").BuildDependencyEntry()))
	})

	t.Run("should combine exclusions with the API filter", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := entities.NewConfiguration(entities.Options{})
		builder := entitybuilders.NewDependencyEntryBuilder()

		// when
		include := commands.ManifestPredicate(cfg, []string{"redis"})

		// then
		assert.False(t, include(builder.WithName("redis").BuildDependencyEntry()))
		assert.True(t, include(builder.WithName("sprockets-rails").BuildDependencyEntry()))
	})
}

func TestPackageAddCommand(t *testing.T) {
	t.Parallel()

	t.Run("should use add for pnpm and yarn and install for npm", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []string{"add", "trix"}, commands.PackageAddCommand("pnpm", "app", "trix").Args)
		assert.Equal(t, "yarn", commands.PackageAddCommand("yarn", "app", "trix").Name)
		npm := commands.PackageAddCommand("npm", "app", "trix")
		assert.Equal(t, "npm", npm.Name)
		assert.Equal(t, []string{"install", "trix"}, npm.Args)
		assert.Equal(t, "app", npm.Dir)
	})
}
