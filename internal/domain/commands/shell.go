package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

const (
	pkgMgrPnpm = "pnpm"
	pkgMgrYarn = "yarn"
	pkgMgrNpm  = "npm"
)

// runChecked runs spec once and turns a non-zero exit into a CommandError.
func runChecked(ctx context.Context, runner repositories.CommandRunner, spec entities.CommandSpec) error {
	logger.Infof("run  %s %s", spec.Name, strings.Join(spec.Args, " "))

	result, err := runner.Run(ctx, spec)
	if err != nil {
		return fmt.Errorf("failed to run %s: %w", spec.Name, err)
	}
	if result.ExitCode != 0 {
		return &entities.CommandError{
			Name:     spec.Name,
			Args:     spec.Args,
			ExitCode: result.ExitCode,
			Stderr:   result.Stderr,
		}
	}

	logger.Debugf("%s output:\n%s", spec.Name, result.Stdout)
	return nil
}

// packageAddCommand builds the "add packages" invocation for a JS package manager.
func packageAddCommand(pkgMgr, dir string, packages ...string) entities.CommandSpec {
	switch pkgMgr {
	case pkgMgrPnpm, pkgMgrYarn:
		return entities.CommandSpec{Name: pkgMgr, Args: append([]string{"add"}, packages...), Dir: dir}
	default:
		return entities.CommandSpec{Name: pkgMgrNpm, Args: append([]string{"install"}, packages...), Dir: dir}
	}
}
