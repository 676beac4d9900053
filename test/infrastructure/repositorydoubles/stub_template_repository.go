//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
	"github.com/rios0rios0/scaffolder/internal/domain/repositories"
)

// StubTemplateRepository implements repositories.TemplateRepository with a canned template.
type StubTemplateRepository struct {
	Template *entities.ApplicationTemplate
	LoadErr  error

	// spy: locations requested
	Locations []string
}

var _ repositories.TemplateRepository = (*StubTemplateRepository)(nil)

func (s *StubTemplateRepository) Load(_ context.Context, location string) (*entities.ApplicationTemplate, error) {
	s.Locations = append(s.Locations, location)
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Template == nil {
		return &entities.ApplicationTemplate{Location: location}, nil
	}
	return s.Template, nil
}
