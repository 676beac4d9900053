package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/scaffolder/internal/domain/commands"
	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// ManifestController handles the "manifest" subcommand.
type ManifestController struct {
	command commands.Manifest
}

// NewManifestController creates a new ManifestController.
func NewManifestController(command commands.Manifest) *ManifestController {
	return &ManifestController{command: command}
}

// GetBind returns the Cobra command metadata for the manifest controller.
func (it *ManifestController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "manifest",
		Short: "Print the dependency manifest for the given flags",
		Long: `Print the Gemfile that "new" would generate for the given flags,
without touching the filesystem. Use --format to get YAML or JSON instead.`,
	}
}

// AddFlags adds the generator flags plus --format to the given Cobra command.
func (it *ManifestController) AddFlags(cmd *cobra.Command) {
	addConfigurationFlags(cmd)
	cmd.Flags().String("format", "gemfile", "Output format (gemfile, yaml, json)")
}

// Execute renders the manifest to the command output.
func (it *ManifestController) Execute(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfiguration(cmd)
	if err != nil {
		return err
	}
	version, devPath, exclude, err := manifestOptions(cmd)
	if err != nil {
		return err
	}
	format, _ := cmd.Flags().GetString("format")

	out, err := it.command.Execute(context.Background(), cfg, commands.ManifestOptions{
		FrameworkVersion: version,
		DevPath:          devPath,
		Exclude:          exclude,
		Format:           format,
	})
	if err != nil {
		logger.Errorf("Manifest failed: %v", err)
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}
