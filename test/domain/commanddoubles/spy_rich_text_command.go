//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/scaffolder/internal/domain/commands"
)

// SpyRichTextCommand is a spy implementation of commands.RichText.
type SpyRichTextCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.RichTextOptions
}

var _ commands.RichText = (*SpyRichTextCommand)(nil)

func (s *SpyRichTextCommand) Execute(_ context.Context, opts commands.RichTextOptions) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
