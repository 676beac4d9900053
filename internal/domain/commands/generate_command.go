package commands

import (
	"context"
	"fmt"
	"path"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

const gemfilePath = "Gemfile"

// keepDirectories get an empty .keep file so they survive in version control.
//
//nolint:gochecknoglobals // fixed skeleton layout
var keepDirectories = []string{
	"app/assets/images",
	"lib/tasks",
	"log",
	"tmp",
}

// Generate is the interface for the application generator (`new`).
type Generate interface {
	Execute(ctx context.Context, cfg *entities.Configuration, opts GenerateOptions) error
}

// GenerateOptions holds runtime options for generating an application.
type GenerateOptions struct {
	AppPath string
	ManifestOptions
}

// GenerateCommand scaffolds a new application: it writes the manifest and
// skeleton files, initializes git, and runs the follow-up installers. The
// installers run sequentially, once each, and the first failure stops the run.
type GenerateCommand struct {
	templates repositories.TemplateRepository
	project   repositories.ProjectRepository
	runner    repositories.CommandRunner
	detector  repositories.BundlerDetector
	richText  RichText
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	templates repositories.TemplateRepository,
	project repositories.ProjectRepository,
	runner repositories.CommandRunner,
	detector repositories.BundlerDetector,
	richText RichText,
) *GenerateCommand {
	return &GenerateCommand{
		templates: templates,
		project:   project,
		runner:    runner,
		detector:  detector,
		richText:  richText,
	}
}

// Execute generates the application at opts.AppPath.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	cfg *entities.Configuration,
	opts GenerateOptions,
) error {
	if opts.AppPath == "" {
		return &entities.InvalidConfigurationError{Key: "app_path", Reason: "must not be empty"}
	}
	pretend := cfg.Options().Pretend

	manifest, tmpl, err := assembleManifest(ctx, it.templates, cfg, opts.ManifestOptions)
	if err != nil {
		return err
	}
	logger.Infof("[new] Generating %s (%d gems, framework %s)", opts.AppPath, len(manifest), cfg.SourceMode())

	if writeErr := it.writeFiles(cfg, opts, manifest, tmpl); writeErr != nil {
		return writeErr
	}

	if cfg.InitializesGit() {
		if gitErr := it.project.InitRepository(opts.AppPath); gitErr != nil {
			return fmt.Errorf("failed to initialize git repository: %w", gitErr)
		}
		logger.Infof("[new] Initialized git repository in %s", opts.AppPath)
	}

	if cfg.BundleInstall() {
		if bundleErr := it.bundleInstall(ctx, opts.AppPath); bundleErr != nil {
			return bundleErr
		}
	} else if pretend {
		logger.Info("[new] [DRY RUN] Would run bundle install")
	}

	if cfg.WebpackInstall() {
		if jsErr := it.webpackInstall(ctx, cfg, opts); jsErr != nil {
			return jsErr
		}
	}

	if !cfg.SkipRichText() && !cfg.Options().SkipBundle {
		return it.richText.Execute(ctx, RichTextOptions{
			AppPath:          opts.AppPath,
			FrameworkVersion: opts.FrameworkVersion.String(),
			Mode:             cfg.SourceMode(),
			Pretend:          pretend,
		})
	}
	return nil
}

func (it *GenerateCommand) writeFiles(
	cfg *entities.Configuration,
	opts GenerateOptions,
	manifest []entities.DependencyEntry,
	tmpl *entities.ApplicationTemplate,
) error {
	root := opts.AppPath
	files := []entities.TemplateFile{
		{Path: gemfilePath, Content: entities.RenderGemfile(manifest)},
		{
			Path:    entities.ApplicationConfigPath,
			Content: entities.RenderApplicationConfig(cfg, root, opts.FrameworkVersion),
		},
		{Path: entities.BootConfigPath, Content: entities.RenderBootConfig(cfg)},
	}
	if tmpl != nil {
		files = append(files, tmpl.Files...)
	}
	if cfg.CreatesKeeps() {
		for _, dir := range keepDirectories {
			files = append(files, entities.TemplateFile{Path: path.Join(dir, ".keep")})
		}
	}

	for _, file := range files {
		if cfg.Options().Pretend {
			logger.Infof("[new] [DRY RUN] Would create %s", file.Path)
			continue
		}
		if err := it.project.WriteFile(root, file.Path, file.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
		logger.Infof("[new] create  %s", file.Path)
	}
	return nil
}

func (it *GenerateCommand) bundleInstall(ctx context.Context, root string) error {
	if err := runChecked(ctx, it.runner, entities.CommandSpec{
		Name: "bundle", Args: []string{"install"}, Dir: root,
	}); err != nil {
		return err
	}
	return runChecked(ctx, it.runner, entities.CommandSpec{
		Name: "bundle", Args: []string{"binstubs", "bundler"}, Dir: root,
	})
}

func (it *GenerateCommand) webpackInstall(
	ctx context.Context,
	cfg *entities.Configuration,
	opts GenerateOptions,
) error {
	npmVersion := entities.NpmVersion(opts.FrameworkVersion.String(), cfg.SourceMode())
	pkgMgr := it.detector.DetectPackageManager(opts.AppPath)
	spec := packageAddCommand(pkgMgr, opts.AppPath, "@rails/webpacker@"+npmVersion)

	if cfg.Options().Pretend {
		logger.Infof("[new] [DRY RUN] Would run %s %s", spec.Name, strings.Join(spec.Args, " "))
		return nil
	}
	return runChecked(ctx, it.runner, spec)
}
