//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// SpyCommandRunner implements repositories.CommandRunner as a configurable spy.
// Results and Errs are keyed by command name; unknown commands succeed.
type SpyCommandRunner struct {
	Results map[string]entities.CommandResult
	Errs    map[string]error

	// spy: every command that was run, in order
	Calls []entities.CommandSpec
}

var _ repositories.CommandRunner = (*SpyCommandRunner)(nil)

func (r *SpyCommandRunner) Run(_ context.Context, spec entities.CommandSpec) (entities.CommandResult, error) {
	r.Calls = append(r.Calls, spec)
	if err := r.Errs[spec.Name]; err != nil {
		return entities.CommandResult{}, err
	}
	return r.Results[spec.Name], nil
}

// CommandLines returns each recorded call as "name arg1 arg2".
func (r *SpyCommandRunner) CommandLines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, call := range r.Calls {
		lines = append(lines, strings.Join(append([]string{call.Name}, call.Args...), " "))
	}
	return lines
}
