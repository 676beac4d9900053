//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/scaffolder/internal/domain/commands"
	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// StubManifestCommand is a stub implementation of commands.Manifest.
type StubManifestCommand struct {
	Output     []byte
	ExecuteErr error
	LastConfig *entities.Configuration
	LastOpts   commands.ManifestOptions
}

var _ commands.Manifest = (*StubManifestCommand)(nil)

func (s *StubManifestCommand) Execute(
	_ context.Context,
	cfg *entities.Configuration,
	opts commands.ManifestOptions,
) ([]byte, error) {
	s.LastConfig = cfg
	s.LastOpts = opts
	return s.Output, s.ExecuteErr
}
