package repositories

import (
	"context"

	"github.com/rios0rios0/scaffolder/internal/domain/entities"
)

// TemplateRepository loads application templates from a path or URL.
// Failures are returned as *entities.TemplateLoadError.
type TemplateRepository interface {
	Load(ctx context.Context, location string) (*entities.ApplicationTemplate, error)
}
