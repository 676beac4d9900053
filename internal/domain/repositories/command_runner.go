package repositories

import (
	"context"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// CommandRunner runs external tools such as `bundle` or `yarn`.
// A non-zero exit is reported through CommandResult.ExitCode; the error is
// reserved for processes that could not run at all.
type CommandRunner interface {
	Run(ctx context.Context, spec entities.CommandSpec) (entities.CommandResult, error)
}
