//go:build unit

package controllers_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/infrastructure/controllers"
	"github.com/rios0rios0/scaffolder/test/domain/commanddoubles"
)

// newCommand mirrors the root command wiring: persistent flags plus the
// controller's own flags, parsed from args.
func newCommand(t *testing.T, ctrl entities.Controller, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: ctrl.GetBind().Use}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("framework-version", entities.DefaultFrameworkVersion, "")
	ctrl.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

// isolateRCLookup keeps rc files of the machine running the tests out of the way.
func isolateRCLookup(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func TestResolveConfiguration(t *testing.T) {
	t.Run("should read flags", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--database=postgresql", "--skip-action-text", "--api")

		// when
		cfg, err := controllers.ResolveConfiguration(cmd)

		// then
		require.NoError(t, err)
		assert.Equal(t, "postgresql", cfg.Database())
		assert.True(t, cfg.Options().SkipActionText)
		assert.True(t, cfg.Options().API)
	})

	t.Run("should read SCAFFOLDER_ environment variables", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		t.Setenv("SCAFFOLDER_SKIP_ACTIVE_RECORD", "true")
		t.Setenv("SCAFFOLDER_DATABASE", "mysql")
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl)

		// when
		cfg, err := controllers.ResolveConfiguration(cmd)

		// then
		require.NoError(t, err)
		assert.True(t, cfg.Options().SkipActiveRecord)
		assert.Equal(t, "mysql", cfg.Database())
	})

	t.Run("should reject a non-boolean environment value for a boolean flag", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		t.Setenv("SCAFFOLDER_API", "maybe")
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl)

		// when
		_, err := controllers.ResolveConfiguration(cmd)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidConfiguration)
	})

	t.Run("should read snake case keys from the rc file", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		rc := filepath.Join(t.TempDir(), ".scaffolderrc.yaml")
		require.NoError(t, os.WriteFile(rc, []byte("skip_hotwire: true\ndatabase: oracle\n"), 0o600))
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--config", rc)

		// when
		cfg, err := controllers.ResolveConfiguration(cmd)

		// then
		require.NoError(t, err)
		assert.True(t, cfg.Options().SkipHotwire)
		assert.Equal(t, "oracle", cfg.Database())
	})

	t.Run("should reject unrecognized keys in the rc file", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		rc := filepath.Join(t.TempDir(), ".scaffolderrc.yaml")
		require.NoError(t, os.WriteFile(rc, []byte("skip_activerecord: true\nskip_dev_gems: true\n"), 0o600))
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--config", rc)

		// when
		_, err := controllers.ResolveConfiguration(cmd)

		// then
		var configErr *entities.InvalidConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "skip_activerecord", configErr.Key)
		assert.ErrorIs(t, err, entities.ErrInvalidConfiguration)
	})

	t.Run("should accept kebab case keys in the rc file", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		rc := filepath.Join(t.TempDir(), ".scaffolderrc.yaml")
		require.NoError(t, os.WriteFile(rc, []byte("skip-active-record: true\n"), 0o600))
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--config", rc)

		// when
		cfg, err := controllers.ResolveConfiguration(cmd)

		// then
		require.NoError(t, err)
		assert.True(t, cfg.Options().SkipActiveRecord)
	})

	t.Run("should stop the manifest command on an unrecognized rc key", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		rc := filepath.Join(t.TempDir(), ".scaffolderrc.yaml")
		require.NoError(t, os.WriteFile(rc, []byte("skip_dev_gems: true\n"), 0o600))
		stub := &commanddoubles.StubManifestCommand{}
		ctrl := controllers.NewManifestController(stub)
		cmd := newCommand(t, ctrl, "--config", rc)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrInvalidConfiguration)
		assert.Nil(t, stub.LastConfig)
	})

	t.Run("should let flags override the rc file", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		rc := filepath.Join(t.TempDir(), ".scaffolderrc.yaml")
		require.NoError(t, os.WriteFile(rc, []byte("database: oracle\n"), 0o600))
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--config", rc, "--database", "sqlite3")

		// when
		cfg, err := controllers.ResolveConfiguration(cmd)

		// then
		require.NoError(t, err)
		assert.Equal(t, "sqlite3", cfg.Database())
	})

	t.Run("should fail when the given rc file cannot be read", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		_, err := controllers.ResolveConfiguration(cmd)

		// then
		require.Error(t, err)
	})
}

func TestManifestController_Execute(t *testing.T) {
	t.Run("should write the rendered manifest to the command output", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		stub := &commanddoubles.StubManifestCommand{Output: []byte("source \"https://rubygems.org\"\n")}
		ctrl := controllers.NewManifestController(stub)
		cmd := newCommand(t, ctrl, "--format", "yaml", "--exclude", "puma,redis", "--framework-version", "6.1.3.1")
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, "source \"https://rubygems.org\"\n", out.String())
		assert.Equal(t, "yaml", stub.LastOpts.Format)
		assert.Equal(t, []string{"puma", "redis"}, stub.LastOpts.Exclude)
		assert.Equal(t, "6.1.3.1", stub.LastOpts.FrameworkVersion.String())
		assert.Equal(t, entities.DefaultDevPath, stub.LastOpts.DevPath)
	})

	t.Run("should reject a malformed framework version", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		ctrl := controllers.NewManifestController(&commanddoubles.StubManifestCommand{})
		cmd := newCommand(t, ctrl, "--framework-version", "seven")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.ErrorIs(t, err, entities.ErrMalformedVersion)
	})
}

func TestGenerateController_Execute(t *testing.T) {
	t.Run("should require an application path", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		stub := &commanddoubles.StubGenerateCommand{}
		ctrl := controllers.NewGenerateController(stub)
		cmd := newCommand(t, ctrl)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Zero(t, stub.ExecuteCallCount)
	})

	t.Run("should pass the resolved configuration and path to the generator", func(t *testing.T) {
		// given
		isolateRCLookup(t)
		stub := &commanddoubles.StubGenerateCommand{}
		ctrl := controllers.NewGenerateController(stub)
		cmd := newCommand(t, ctrl, "--dev", "--dev-path", "/src/rails", "--skip-bundle")

		// when
		err := ctrl.Execute(cmd, []string{"blog"})

		// then
		require.NoError(t, err)
		require.Equal(t, 1, stub.ExecuteCallCount)
		assert.Equal(t, "blog", stub.LastOpts.AppPath)
		assert.Equal(t, "/src/rails", stub.LastOpts.DevPath)
		assert.Equal(t, entities.SourceModeDev, stub.LastConfig.SourceMode())
		assert.True(t, stub.LastConfig.Options().SkipBundle)
	})
}

func TestRichTextController_Execute(t *testing.T) {
	t.Run("should default to the current directory", func(t *testing.T) {
		// given
		spy := &commanddoubles.SpyRichTextCommand{}
		ctrl := controllers.NewRichTextController(spy)
		cmd := newCommand(t, ctrl, "--edge", "--pretend")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Equal(t, ".", spy.LastOpts.AppPath)
		assert.Equal(t, entities.SourceModeEdge, spy.LastOpts.Mode)
		assert.True(t, spy.LastOpts.Pretend)
		assert.Equal(t, entities.DefaultFrameworkVersion, spy.LastOpts.FrameworkVersion)
	})
}
