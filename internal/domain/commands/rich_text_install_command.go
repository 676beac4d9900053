package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

const (
	applicationJSPath = "app/javascript/application.js"
	importmapPath     = "config/importmap.rb"

	richTextImports = "\nimport \"trix\"\nimport \"@rails/actiontext\"\n"
	richTextPins    = "pin \"trix\"\npin \"@rails/actiontext\", to: \"actiontext.js\"\n"
)

// RichText is the interface for the rich-text install command.
type RichText interface {
	Execute(ctx context.Context, opts RichTextOptions) error
}

// RichTextOptions holds runtime options for installing rich-text editing.
type RichTextOptions struct {
	AppPath          string
	FrameworkVersion string
	Mode             entities.SourceMode
	Pretend          bool
}

// RichTextInstallCommand wires the rich-text editor into a host application:
// it installs the JavaScript packages through whatever bundler the app uses
// and copies the storage and rich-text migrations.
type RichTextInstallCommand struct {
	runner   repositories.CommandRunner
	project  repositories.ProjectRepository
	detector repositories.BundlerDetector
}

// NewRichTextInstallCommand creates a new RichTextInstallCommand.
func NewRichTextInstallCommand(
	runner repositories.CommandRunner,
	project repositories.ProjectRepository,
	detector repositories.BundlerDetector,
) *RichTextInstallCommand {
	return &RichTextInstallCommand{runner: runner, project: project, detector: detector}
}

// Execute runs every install step in order and stops at the first failure.
func (it *RichTextInstallCommand) Execute(ctx context.Context, opts RichTextOptions) error {
	bundler := it.detector.DetectBundler(opts.AppPath)
	logger.Infof("[richtext] Detected JavaScript bundler: %s", bundler)

	switch bundler {
	case repositories.JSBundlerNode:
		if err := it.installPackages(ctx, opts); err != nil {
			return err
		}
		if err := it.appendImports(opts); err != nil {
			return err
		}
	case repositories.JSBundlerImportmap:
		if err := it.pinImportmap(opts); err != nil {
			return err
		}
	case repositories.JSBundlerNone:
		logger.Warn(
			"[richtext] You must import the @rails/actiontext and trix JavaScript modules in your application entrypoint.",
		)
	}

	return it.installMigrations(ctx, opts)
}

func (it *RichTextInstallCommand) installPackages(ctx context.Context, opts RichTextOptions) error {
	npmVersion := entities.NpmVersion(opts.FrameworkVersion, opts.Mode)
	if npmVersion != "latest" && !semver.IsValid("v"+npmVersion) {
		return fmt.Errorf("%w: %q is not a valid npm version", entities.ErrMalformedVersion, npmVersion)
	}

	pkgMgr := it.detector.DetectPackageManager(opts.AppPath)
	spec := packageAddCommand(pkgMgr, opts.AppPath, "@rails/actiontext@"+npmVersion, "trix")

	if opts.Pretend {
		logger.Infof("[richtext] [DRY RUN] Would run %s %s", spec.Name, strings.Join(spec.Args, " "))
		return nil
	}

	logger.Info("[richtext] Installing JavaScript dependencies")
	return runChecked(ctx, it.runner, spec)
}

func (it *RichTextInstallCommand) appendImports(opts RichTextOptions) error {
	if !it.project.Exists(opts.AppPath, applicationJSPath) {
		logger.Warnf("[richtext] %s not found, add the trix and @rails/actiontext imports manually", applicationJSPath)
		return nil
	}

	if opts.Pretend {
		logger.Infof("[richtext] [DRY RUN] Would append imports to %s", applicationJSPath)
		return nil
	}

	if err := it.project.AppendFile(opts.AppPath, applicationJSPath, richTextImports); err != nil {
		return fmt.Errorf("failed to update %s: %w", applicationJSPath, err)
	}
	logger.Infof("[richtext] append  %s", applicationJSPath)
	return nil
}

func (it *RichTextInstallCommand) pinImportmap(opts RichTextOptions) error {
	content, err := it.project.ReadFile(opts.AppPath, importmapPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importmapPath, err)
	}
	if strings.Contains(content, `pin "trix"`) {
		logger.Infof("[richtext] identical  %s", importmapPath)
		return nil
	}

	if opts.Pretend {
		logger.Infof("[richtext] [DRY RUN] Would pin trix and @rails/actiontext in %s", importmapPath)
		return nil
	}

	if appendErr := it.project.AppendFile(opts.AppPath, importmapPath, richTextPins); appendErr != nil {
		return fmt.Errorf("failed to update %s: %w", importmapPath, appendErr)
	}
	logger.Infof("[richtext] append  %s", importmapPath)
	return nil
}

func (it *RichTextInstallCommand) installMigrations(ctx context.Context, opts RichTextOptions) error {
	spec := entities.CommandSpec{
		Name: "bin/rails",
		Args: []string{"railties:install:migrations", "FROM=active_storage,action_text"},
		Dir:  opts.AppPath,
	}

	if opts.Pretend {
		logger.Infof("[richtext] [DRY RUN] Would run %s %s", spec.Name, strings.Join(spec.Args, " "))
		return nil
	}
	return runChecked(ctx, it.runner, spec)
}
