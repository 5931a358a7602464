package usecases

import (
	"context"

	"smartincident/internal/infrastructure/cascade"
)

// CascadeDeleter removes an entity and all its descendants atomically.
type CascadeDeleter interface {
	Delete(ctx context.Context, kind cascade.Kind, id uint) error
}
