//go:build unit

package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/test/domain/entitybuilders"
)

func TestRenderGemLine(t *testing.T) {
	t.Parallel()

	t.Run("should render a registry entry with every constraint", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDependencyEntryBuilder().
			WithName("rails").
			WithVersions("~> 6.1.3", ">= 6.1.3.1").
			BuildDependencyEntry()

		// when
		line := entities.RenderGemLine(entry)

		// then
		assert.Equal(t, `gem "rails", "~> 6.1.3", ">= 6.1.3.1"`, line)
	})

	t.Run("should render a git entry with its branch", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDependencyEntryBuilder().
			WithName("rails").
			WithGitSource("rails/rails", "main").
			BuildDependencyEntry()

		// when
		line := entities.RenderGemLine(entry)

		// then
		assert.Equal(t, `gem "rails", github: "rails/rails", branch: "main"`, line)
	})

	t.Run("should render a path entry", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDependencyEntryBuilder().
			WithName("rails").
			WithPathSource("../rails").
			BuildDependencyEntry()

		// when
		line := entities.RenderGemLine(entry)

		// then
		assert.Equal(t, `gem "rails", path: "../rails"`, line)
	})

	t.Run("should escape interpolation inside quoted values", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDependencyEntryBuilder().
			WithName("x").
			WithGitSource("a/#$b", "#@c").
			WithVersions(`#{system("id")}`).
			BuildDependencyEntry()

		// when
		line := entities.RenderGemLine(entry)

		// then
		assert.Equal(t, `gem "x", "\#{system(\"id\")}", github: "a/\#$b", branch: "\#@c"`, line)
	})

	t.Run("should append attributes and prefix commented-out entries", func(t *testing.T) {
		t.Parallel()

		// given
		entry := entitybuilders.NewDependencyEntryBuilder().
			WithName("psych").
			WithVersions("~> 2.0").
			WithAttribute("platforms", ":jruby").
			CommentedOut().
			BuildDependencyEntry()

		// when
		line := entities.RenderGemLine(entry)

		// then
		assert.Equal(t, `# gem "psych", "~> 2.0", platforms: :jruby`, line)
	})
}

func TestRenderGemfile(t *testing.T) {
	t.Parallel()

	t.Run("should write the source header and a comment above each documented entry", func(t *testing.T) {
		t.Parallel()

		// given
		entries := []entities.DependencyEntry{
			entitybuilders.NewDependencyEntryBuilder().
				WithName("puma").WithVersions("~> 5.0").WithComment("Use Puma").
				BuildDependencyEntry(),
			entitybuilders.NewDependencyEntryBuilder().
				WithName("bootsnap").WithVersions().
				BuildDependencyEntry(),
		}

		// when
		gemfile := entities.RenderGemfile(entries)

		// then
		expected := "source \"https://rubygems.org\"\n" +
			"git_source(:github) { |repo| \"https://github.com/#{repo}.git\" }\n" +
			"\n# Use Puma\n" +
			"gem \"puma\", \"~> 5.0\"\n" +
			"gem \"bootsnap\"\n"
		assert.Equal(t, expected, gemfile)
	})

	t.Run("should keep every line of a multi-line comment commented out", func(t *testing.T) {
		t.Parallel()

		// given
		entries := []entities.DependencyEntry{
			entitybuilders.NewDependencyEntryBuilder().
				WithName("x").WithVersions().WithComment("harmless\nsystem(\"touch /tmp/owned\")").
				BuildDependencyEntry(),
		}

		// when
		gemfile := entities.RenderGemfile(entries)

		// then
		assert.Contains(t, gemfile, "\n# harmless\n# system(\"touch /tmp/owned\")\ngem \"x\"\n")
		for _, line := range strings.Split(gemfile, "\n") {
			assert.False(t, strings.HasPrefix(line, "system("), line)
		}
	})
}
