//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()

	t.Run("should split numeric and alphabetic segments", func(t *testing.T) {
		t.Parallel()

		// given
		raw := "1.2.3.pre4"

		// when
		version, err := entities.ParseVersion(raw)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3", "pre", "4"}, version.Segments())
		assert.Equal(t, []string{"1", "2", "3"}, version.ReleaseSegments())
		assert.True(t, version.IsPrerelease())
		assert.Equal(t, raw, version.String())
	})

	t.Run("should reject malformed versions", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "abc", "1..2", "1.2.", "v1.2.3"} {
			// when
			_, err := entities.ParseVersion(raw)

			// then
			require.ErrorIs(t, err, entities.ErrMalformedVersion, raw)
		}
	})

	t.Run("should panic on malformed input when using MustParseVersion", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Panics(t, func() { entities.MustParseVersion("not-a-version") })
	})
}

func TestVersionSpecifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		expected []string
	}{
		{name: "three segment release", version: "7.0.0", expected: []string{"~> 7.0.0"}},
		{name: "pre-release with three release segments", version: "7.0.0.alpha", expected: []string{"~> 7.0.0.alpha"}},
		{name: "pre-release with trailing number", version: "1.2.3.pre4", expected: []string{"~> 1.2.3.pre4"}},
		{name: "four segment release", version: "6.1.3.1", expected: []string{"~> 6.1.3", ">= 6.1.3.1"}},
	}

	for _, tt := range tests {
		t.Run("should build the constraints for a "+tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			version := entities.MustParseVersion(tt.version)

			// when
			specifier := version.Specifier()

			// then
			assert.Equal(t, tt.expected, specifier)
		})
	}
}

func TestVersionEdgeBranch(t *testing.T) {
	t.Parallel()

	t.Run("should track main for a pre-release", func(t *testing.T) {
		t.Parallel()

		// given
		version := entities.MustParseVersion("7.0.0.alpha")

		// when
		branch := version.EdgeBranch()

		// then
		assert.Equal(t, "main", branch)
	})

	t.Run("should track the stable branch for a release", func(t *testing.T) {
		t.Parallel()

		// given
		version := entities.MustParseVersion("6.1.3.1")

		// when
		branch := version.EdgeBranch()

		// then
		assert.Equal(t, "6-1-stable", branch)
	})
}

func TestNpmVersion(t *testing.T) {
	t.Parallel()

	t.Run("should replace every dot after the patch with a dash", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "6.1.3-1", entities.NpmVersion("6.1.3.1", entities.SourceModeRelease))
		assert.Equal(t, "7.0.0-alpha", entities.NpmVersion("7.0.0.alpha", entities.SourceModeRelease))
		assert.Equal(t, "1.2.3-pre-4", entities.NpmVersion("1.2.3.pre.4", entities.SourceModeRelease))
		assert.Equal(t, "7.0.0", entities.NpmVersion("7.0.0", entities.SourceModeRelease))
	})

	t.Run("should resolve to latest outside release mode", func(t *testing.T) {
		t.Parallel()

		for _, mode := range []entities.SourceMode{
			entities.SourceModeDev,
			entities.SourceModeEdge,
			entities.SourceModeMain,
		} {
			assert.Equal(t, "latest", entities.NpmVersion("6.1.3.1", mode), mode.String())
		}
	})
}
