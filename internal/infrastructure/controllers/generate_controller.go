package controllers

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/scaffolder/internal/domain/commands"
	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// GenerateController handles the "new" subcommand.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "new <app-path>",
		Short: "Create a new application",
		Long: `Create a new application at the given path.

Writes the Gemfile and skeleton files, initializes a git repository,
runs bundle install and the JavaScript installers selected by the flags.

Flags can also be set through SCAFFOLDER_* environment variables
(e.g. SCAFFOLDER_SKIP_ACTIVE_RECORD=true) or a .scaffolderrc.yaml file.`,
	}
}

// AddFlags adds the generator flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	addConfigurationFlags(cmd)
}

// Execute generates the application.
func (it *GenerateController) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errors.New("an application path is required")
	}

	cfg, err := resolveConfiguration(cmd)
	if err != nil {
		return err
	}
	version, devPath, exclude, err := manifestOptions(cmd)
	if err != nil {
		return err
	}

	if execErr := it.command.Execute(context.Background(), cfg, commands.GenerateOptions{
		AppPath: args[0],
		ManifestOptions: commands.ManifestOptions{
			FrameworkVersion: version,
			DevPath:          devPath,
			Exclude:          exclude,
		},
	}); execErr != nil {
		logger.Errorf("Generation failed: %v", execErr)
		return execErr
	}
	return nil
}
