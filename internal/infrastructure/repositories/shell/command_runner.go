package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// CommandRunner runs external tools with os/exec.
type CommandRunner struct{}

var _ repositories.CommandRunner = (*CommandRunner)(nil)

// NewCommandRunner creates a new CommandRunner.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{}
}

// Run executes the command and captures stdout/stderr. A process that exits
// non-zero yields a result with ExitCode set and a nil error.
func (r *CommandRunner) Run(ctx context.Context, spec entities.CommandSpec) (entities.CommandResult, error) {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	if len(spec.Env) > 0 {
		cmd.Env = cmd.Environ()
		for k, v := range spec.Env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}

	logger.Debugf("exec %s %v (dir=%q)", spec.Name, spec.Args, spec.Dir)
	err := cmd.Run()

	result := entities.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}

	return result, nil
}
