package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfiguration is returned for unrecognized or mistyped flag values.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrTemplateLoad is returned when an application template cannot be read or parsed.
	ErrTemplateLoad = errors.New("failed to load application template")

	// ErrMalformedVersion is the panic payload of MustParseVersion.
	ErrMalformedVersion = errors.New("malformed version")

	// ErrCommandFailed is returned when an external tool exits with a non-zero status.
	ErrCommandFailed = errors.New("external command failed")
)

// InvalidConfigurationError names the offending configuration key.
type InvalidConfigurationError struct {
	Key    string
	Reason string
}

func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("%s: %q %s", ErrInvalidConfiguration, e.Key, e.Reason)
}

func (e *InvalidConfigurationError) Unwrap() error { return ErrInvalidConfiguration }

// TemplateLoadError keeps the path or URL of the template that failed.
type TemplateLoadError struct {
	Location string
	Err      error
}

func (e *TemplateLoadError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrTemplateLoad, e.Location, e.Err)
}

// Unwrap allows matching both the sentinel and the underlying cause.
func (e *TemplateLoadError) Unwrap() []error { return []error{ErrTemplateLoad, e.Err} }

// CommandError describes a failed shell-out.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: `%s %s` exited with code %d",
		ErrCommandFailed, e.Name, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error { return ErrCommandFailed }
