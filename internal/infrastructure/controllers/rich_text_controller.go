package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/scaffolder/internal/domain/commands"
	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// RichTextController handles the "richtext:install" subcommand.
type RichTextController struct {
	command commands.RichText
}

// NewRichTextController creates a new RichTextController.
func NewRichTextController(command commands.RichText) *RichTextController {
	return &RichTextController{command: command}
}

// GetBind returns the Cobra command metadata for the rich-text controller.
func (it *RichTextController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "richtext:install [app-path]",
		Short: "Install rich-text editing into an existing application",
		Long: `Install the rich-text editor JavaScript packages (through the
application's node package manager or its import map) and copy the
storage and rich-text migrations.`,
	}
}

// AddFlags adds the source-mode and pretend flags to the given Cobra command.
func (it *RichTextController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("dev", false, flagUsage["dev"])
	cmd.Flags().Bool("edge", false, flagUsage["edge"])
	cmd.Flags().Bool("main", false, flagUsage["main"])
	cmd.Flags().Bool("pretend", false, flagUsage["pretend"])
}

// Execute runs the rich-text install in the given (or current) directory.
func (it *RichTextController) Execute(cmd *cobra.Command, args []string) error {
	appPath := "."
	if len(args) > 0 {
		appPath = args[0]
	}

	version, err := frameworkVersion(cmd)
	if err != nil {
		return err
	}

	dev, _ := cmd.Flags().GetBool("dev")
	edge, _ := cmd.Flags().GetBool("edge")
	mainBranch, _ := cmd.Flags().GetBool("main")
	pretend, _ := cmd.Flags().GetBool("pretend")
	cfg := entities.NewConfiguration(entities.Options{Dev: dev, Edge: edge, Main: mainBranch, Pretend: pretend})

	if execErr := it.command.Execute(context.Background(), commands.RichTextOptions{
		AppPath:          appPath,
		FrameworkVersion: version.String(),
		Mode:             cfg.SourceMode(),
		Pretend:          pretend,
	}); execErr != nil {
		logger.Errorf("Rich-text install failed: %v", execErr)
		return execErr
	}
	return nil
}
